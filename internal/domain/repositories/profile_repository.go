package repositories

import (
	"context"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
)

// ProfileRepository define a interface para persistência de perfis
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	FindByID(ctx context.Context, id string) (*entities.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entities.Profile, error)
	List(ctx context.Context) ([]*entities.Profile, error)
	// Update substitui os campos de contato/tipo/status. Retorna false quando
	// nenhuma linha foi afetada. O hash de senha não é tocado por este método.
	Update(ctx context.Context, profile *entities.Profile) (bool, error)
	// UpdateSenhaHash troca somente o hash de senha do perfil.
	UpdateSenhaHash(ctx context.Context, id, senhaHash string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountByUserType(ctx context.Context, userType entities.TipoUsuario) (int64, error)
}

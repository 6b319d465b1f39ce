package repositories

import (
	"context"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
)

// CategoriaRepository define a interface para leitura de categorias
type CategoriaRepository interface {
	List(ctx context.Context) ([]*entities.Categoria, error)
	FindByID(ctx context.Context, id string) (*entities.Categoria, error)
}

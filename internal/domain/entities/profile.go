package entities

import (
	"errors"
	"time"

	"github.com/Esamwell/mthubv2/internal/domain/valueobjects"
)

// TipoUsuario define o papel de um perfil no sistema
type TipoUsuario string

const (
	TipoAdmin   TipoUsuario = "admin"
	TipoCliente TipoUsuario = "cliente"
)

// IsValid verifica se o tipo pertence ao conjunto permitido
func (t TipoUsuario) IsValid() bool {
	return t == TipoAdmin || t == TipoCliente
}

// Profile representa um usuário do sistema (admin ou cliente)
type Profile struct {
	ID        string
	Nome      string
	Email     valueobjects.Email
	Empresa   string
	Telefone  string
	SenhaHash string
	UserType  TipoUsuario
	// Status é texto livre (ex.: "ativo"/"inativo"), sem vocabulário fixo
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin verifica se o perfil tem acesso administrativo
func (p *Profile) IsAdmin() bool {
	return p.UserType == TipoAdmin
}

// Validate valida regras de negócio da entidade Profile
func (p *Profile) Validate() error {
	if p.Email.String() == "" {
		return errors.New("email is required")
	}
	if p.Nome == "" {
		return errors.New("nome is required")
	}
	if len(p.Nome) < 2 {
		return errors.New("nome must be at least 2 characters")
	}
	if !p.UserType.IsValid() {
		return errors.New("invalid user_type")
	}
	return nil
}

package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
	"github.com/Esamwell/mthubv2/internal/domain/errors"
	"github.com/Esamwell/mthubv2/internal/domain/ports"
	"github.com/Esamwell/mthubv2/internal/domain/repositories"
	"github.com/Esamwell/mthubv2/internal/domain/valueobjects"
)

// bcryptCost segue o custo usado pela aplicação original
const bcryptCost = 10

// ProfileService contém a lógica de negócio para perfis de usuário
type ProfileService struct {
	profileRepo repositories.ProfileRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewProfileService cria um novo ProfileService
func NewProfileService(
	profileRepo repositories.ProfileRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		uow:         uow,
		logger:      logger,
	}
}

// RegisterInput representa os dados de cadastro de um usuário
type RegisterInput struct {
	Nome     string
	Email    string
	Senha    string
	Empresa  string
	Telefone string
	UserType string
}

// Register cadastra um novo perfil. O pré-check de email é apenas uma
// otimização; a constraint de unicidade do banco decide corridas entre
// check e insert, e a violação é devolvida como ErrEmailAlreadyExists.
func (s *ProfileService) Register(ctx context.Context, input RegisterInput) (*entities.Profile, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	existing, err := s.profileRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcryptCost)
	if err != nil {
		return nil, err
	}

	userType := entities.TipoUsuario(input.UserType)
	if userType == "" {
		userType = entities.TipoCliente
	}

	profile := &entities.Profile{
		ID:        uuid.NewString(),
		Nome:      input.Nome,
		Email:     email,
		Empresa:   input.Empresa,
		Telefone:  input.Telefone,
		SenhaHash: string(hash),
		UserType:  userType,
		Status:    "ativo",
	}
	if err := profile.Validate(); err != nil {
		return nil, errors.ErrCamposObrigatorios
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profile registered", "id", profile.ID, "email", email.String())
	return profile, nil
}

// Authenticate verifica as credenciais e retorna o perfil.
// Usuário desconhecido e senha incorreta são erros distintos.
func (s *ProfileService) Authenticate(ctx context.Context, emailAddr, senha string) (*entities.Profile, error) {
	profile, err := s.profileRepo.FindByEmail(ctx, emailAddr)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.ErrUsuarioNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.SenhaHash), []byte(senha)) != nil {
		return nil, errors.ErrSenhaIncorreta
	}

	return profile, nil
}

// ChangePassword troca a senha após conferir a senha atual.
// Escrita que não afeta nenhuma linha é tratada como usuário inexistente.
func (s *ProfileService) ChangePassword(ctx context.Context, userID, senhaAtual, novaSenha string) error {
	return s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		profile, err := s.profileRepo.FindByID(txCtx, userID)
		if err != nil {
			return err
		}
		if profile == nil {
			return errors.ErrUsuarioNotFound
		}

		if bcrypt.CompareHashAndPassword([]byte(profile.SenhaHash), []byte(senhaAtual)) != nil {
			return errors.ErrSenhaAtualIncorreta
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(novaSenha), bcryptCost)
		if err != nil {
			return err
		}

		updated, err := s.profileRepo.UpdateSenhaHash(txCtx, userID, string(hash))
		if err != nil {
			return err
		}
		if !updated {
			return errors.ErrUsuarioNotFound
		}

		s.logger.Info("password changed", "user_id", userID)
		return nil
	})
}

// Get busca um perfil por ID
func (s *ProfileService) Get(ctx context.Context, id string) (*entities.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.ErrUsuarioNotFound
	}
	return profile, nil
}

// List retorna todos os perfis
func (s *ProfileService) List(ctx context.Context) ([]*entities.Profile, error) {
	return s.profileRepo.List(ctx)
}

// UpdateInput representa os dados de edição de um perfil (substituição completa)
type UpdateInput struct {
	Nome     string
	Email    string
	Empresa  string
	Telefone string
	Status   string
	UserType string
}

// Update substitui os campos de contato/tipo/status de um perfil
func (s *ProfileService) Update(ctx context.Context, id string, input UpdateInput) (*entities.Profile, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	userType := entities.TipoUsuario(input.UserType)
	if !userType.IsValid() {
		return nil, errors.ErrCamposObrigatorios
	}

	profile := &entities.Profile{
		ID:       id,
		Nome:     input.Nome,
		Email:    email,
		Empresa:  input.Empresa,
		Telefone: input.Telefone,
		Status:   input.Status,
		UserType: userType,
	}

	updated, err := s.profileRepo.Update(ctx, profile)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, errors.ErrUsuarioNotFound
	}

	return s.Get(ctx, id)
}

// Delete remove fisicamente o perfil
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	removed, err := s.profileRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errors.ErrUsuarioNotFound
	}
	s.logger.Info("profile deleted", "id", id)
	return nil
}

// CountClientes conta perfis com user_type=cliente (dashboard)
func (s *ProfileService) CountClientes(ctx context.Context) (int64, error) {
	return s.profileRepo.CountByUserType(ctx, entities.TipoCliente)
}

package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
	domainerrors "github.com/Esamwell/mthubv2/internal/domain/errors"
	"github.com/Esamwell/mthubv2/internal/domain/repositories"
	"github.com/Esamwell/mthubv2/internal/domain/valueobjects"
)

// ProfileRepository implementa repositories.ProfileRepository
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository cria um novo ProfileRepository
func NewProfileRepository(db *gorm.DB) repositories.ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	model := r.toModel(profile)
	now := time.Now().UTC().Unix()
	model.CreatedAt = now
	model.UpdatedAt = now

	db := dbFrom(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		// A constraint de unicidade do email é a fonte de verdade: o
		// pré-check do serviço pode perder a corrida entre check e insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrEmailAlreadyExists
		}
		return err
	}

	profile.CreatedAt = time.Unix(model.CreatedAt, 0).UTC()
	profile.UpdatedAt = time.Unix(model.UpdatedAt, 0).UTC()
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*entities.Profile, error) {
	var model ProfileModel

	db := dbFrom(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	var model ProfileModel

	db := dbFrom(ctx, r.db)
	if err := db.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *ProfileRepository) List(ctx context.Context) ([]*entities.Profile, error) {
	var models []*ProfileModel

	db := dbFrom(ctx, r.db)
	if err := db.Order("nome ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *ProfileRepository) Update(ctx context.Context, profile *entities.Profile) (bool, error) {
	now := time.Now().UTC().Unix()

	values := map[string]any{
		"nome":       profile.Nome,
		"email":      profile.Email.String(),
		"empresa":    profile.Empresa,
		"telefone":   profile.Telefone,
		"status":     profile.Status,
		"user_type":  string(profile.UserType),
		"updated_at": now,
	}

	db := dbFrom(ctx, r.db)
	res := db.Model(&ProfileModel{}).Where("id = ?", profile.ID).Updates(values)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return false, domainerrors.ErrEmailAlreadyExists
		}
		return false, res.Error
	}
	profile.UpdatedAt = time.Unix(now, 0).UTC()
	return res.RowsAffected > 0, nil
}

func (r *ProfileRepository) UpdateSenhaHash(ctx context.Context, id, senhaHash string) (bool, error) {
	db := dbFrom(ctx, r.db)
	res := db.Model(&ProfileModel{}).Where("id = ?", id).Updates(map[string]any{
		"senha_hash": senhaHash,
		"updated_at": time.Now().UTC().Unix(),
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id string) (bool, error) {
	db := dbFrom(ctx, r.db)
	res := db.Where("id = ?", id).Delete(&ProfileModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ProfileRepository) CountByUserType(ctx context.Context, userType entities.TipoUsuario) (int64, error) {
	var count int64

	db := dbFrom(ctx, r.db)
	err := db.Model(&ProfileModel{}).Where("user_type = ?", string(userType)).Count(&count).Error
	return count, err
}

// Conversores
func (r *ProfileRepository) toModel(profile *entities.Profile) *ProfileModel {
	return &ProfileModel{
		ID:        profile.ID,
		Nome:      profile.Nome,
		Email:     profile.Email.String(),
		Empresa:   profile.Empresa,
		Telefone:  profile.Telefone,
		SenhaHash: profile.SenhaHash,
		UserType:  string(profile.UserType),
		Status:    profile.Status,
	}
}

func (r *ProfileRepository) toEntity(model *ProfileModel) (*entities.Profile, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.Profile{
		ID:        model.ID,
		Nome:      model.Nome,
		Email:     email,
		Empresa:   model.Empresa,
		Telefone:  model.Telefone,
		SenhaHash: model.SenhaHash,
		UserType:  entities.TipoUsuario(model.UserType),
		Status:    model.Status,
		CreatedAt: time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt: time.Unix(model.UpdatedAt, 0).UTC(),
	}, nil
}

func (r *ProfileRepository) toEntities(models []*ProfileModel) ([]*entities.Profile, error) {
	result := make([]*entities.Profile, 0, len(models))
	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	return result, nil
}

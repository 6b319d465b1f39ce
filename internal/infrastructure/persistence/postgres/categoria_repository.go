package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
	"github.com/Esamwell/mthubv2/internal/domain/repositories"
)

// CategoriaRepository implementa repositories.CategoriaRepository
type CategoriaRepository struct {
	db *gorm.DB
}

// NewCategoriaRepository cria um novo CategoriaRepository
func NewCategoriaRepository(db *gorm.DB) repositories.CategoriaRepository {
	return &CategoriaRepository{db: db}
}

func (r *CategoriaRepository) List(ctx context.Context) ([]*entities.Categoria, error) {
	var models []*CategoriaModel

	db := dbFrom(ctx, r.db)
	if err := db.Order("nome ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Categoria, 0, len(models))
	for _, model := range models {
		result = append(result, &entities.Categoria{ID: model.ID, Nome: model.Nome})
	}
	return result, nil
}

func (r *CategoriaRepository) FindByID(ctx context.Context, id string) (*entities.Categoria, error) {
	var model CategoriaModel

	db := dbFrom(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.Categoria{ID: model.ID, Nome: model.Nome}, nil
}

package services

import (
	"context"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
	"github.com/Esamwell/mthubv2/internal/domain/repositories"
)

// CategoriaService expõe o catálogo de categorias de solicitação
type CategoriaService struct {
	categoriaRepo repositories.CategoriaRepository
}

// NewCategoriaService cria um novo CategoriaService
func NewCategoriaService(categoriaRepo repositories.CategoriaRepository) *CategoriaService {
	return &CategoriaService{categoriaRepo: categoriaRepo}
}

// List retorna todas as categorias ordenadas por nome
func (s *CategoriaService) List(ctx context.Context) ([]*entities.Categoria, error) {
	return s.categoriaRepo.List(ctx)
}

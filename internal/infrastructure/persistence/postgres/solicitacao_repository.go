package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
	domainerrors "github.com/Esamwell/mthubv2/internal/domain/errors"
	"github.com/Esamwell/mthubv2/internal/domain/repositories"
)

// SolicitacaoRepository implementa repositories.SolicitacaoRepository
type SolicitacaoRepository struct {
	db *gorm.DB
}

// NewSolicitacaoRepository cria um novo SolicitacaoRepository
func NewSolicitacaoRepository(db *gorm.DB) repositories.SolicitacaoRepository {
	return &SolicitacaoRepository{db: db}
}

func (r *SolicitacaoRepository) Create(ctx context.Context, solicitacao *entities.Solicitacao) error {
	model := r.toModel(solicitacao)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}
	now := time.Now().UTC().Unix()
	model.CreatedAt = now
	model.UpdatedAt = now

	db := dbFrom(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domainerrors.ErrReferenciaInvalida
		}
		return err
	}

	solicitacao.ID = model.ID
	solicitacao.CreatedAt = time.Unix(model.CreatedAt, 0).UTC()
	solicitacao.UpdatedAt = time.Unix(model.UpdatedAt, 0).UTC()
	return nil
}

func (r *SolicitacaoRepository) FindByID(ctx context.Context, id string) (*entities.Solicitacao, error) {
	var model SolicitacaoModel

	db := dbFrom(ctx, r.db)
	err := db.Preload("Categoria").Preload("Cliente").Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *SolicitacaoRepository) List(ctx context.Context) ([]*entities.Solicitacao, error) {
	var models []*SolicitacaoModel

	db := dbFrom(ctx, r.db)
	if err := db.Preload("Categoria").Preload("Cliente").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *SolicitacaoRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Solicitacao, error) {
	var models []*SolicitacaoModel

	if limit < 1 {
		limit = 5
	}

	db := dbFrom(ctx, r.db)
	err := db.Preload("Categoria").Preload("Cliente").
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *SolicitacaoRepository) ListByPrazoRange(ctx context.Context, start, end time.Time) ([]*entities.Solicitacao, error) {
	var models []*SolicitacaoModel

	db := dbFrom(ctx, r.db)
	err := db.Preload("Categoria").Preload("Cliente").
		Where("data_prazo >= ? AND data_prazo <= ?", start.UTC().Unix(), end.UTC().Unix()).
		Order("data_prazo ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *SolicitacaoRepository) Update(ctx context.Context, solicitacao *entities.Solicitacao) (bool, error) {
	now := time.Now().UTC().Unix()

	values := map[string]any{
		"titulo":       solicitacao.Titulo,
		"categoria_id": solicitacao.CategoriaID,
		"cliente_id":   solicitacao.ClienteID,
		"prioridade":   string(solicitacao.Prioridade),
		"status":       string(solicitacao.Status),
		"data_prazo":   unixOrNil(solicitacao.DataPrazo),
		"descricao":    solicitacao.Descricao,
		"updated_at":   now,
	}
	// data_conclusao nula significa "não tocar": o carimbo nunca é limpo
	// automaticamente ao sair de "concluida".
	if solicitacao.DataConclusao != nil {
		values["data_conclusao"] = solicitacao.DataConclusao.UTC().Unix()
	}

	db := dbFrom(ctx, r.db)
	res := db.Model(&SolicitacaoModel{}).Where("id = ?", solicitacao.ID).Updates(values)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return false, domainerrors.ErrReferenciaInvalida
		}
		return false, res.Error
	}
	solicitacao.UpdatedAt = time.Unix(now, 0).UTC()
	return res.RowsAffected > 0, nil
}

func (r *SolicitacaoRepository) Delete(ctx context.Context, id string) (bool, error) {
	db := dbFrom(ctx, r.db)
	res := db.Where("id = ?", id).Delete(&SolicitacaoModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SolicitacaoRepository) CountByStatus(ctx context.Context, status entities.StatusSolicitacao) (int64, error) {
	var count int64

	db := dbFrom(ctx, r.db)
	err := db.Model(&SolicitacaoModel{}).Where("status = ?", string(status)).Count(&count).Error
	return count, err
}

// Conversores
func (r *SolicitacaoRepository) toModel(s *entities.Solicitacao) *SolicitacaoModel {
	return &SolicitacaoModel{
		ID:            s.ID,
		Titulo:        s.Titulo,
		CategoriaID:   s.CategoriaID,
		ClienteID:     s.ClienteID,
		Prioridade:    string(s.Prioridade),
		Status:        string(s.Status),
		DataPrazo:     unixOrNil(s.DataPrazo),
		DataConclusao: unixOrNil(s.DataConclusao),
		Descricao:     s.Descricao,
	}
}

func (r *SolicitacaoRepository) toEntity(model *SolicitacaoModel) *entities.Solicitacao {
	s := &entities.Solicitacao{
		ID:            model.ID,
		Titulo:        model.Titulo,
		CategoriaID:   model.CategoriaID,
		ClienteID:     model.ClienteID,
		Prioridade:    entities.Prioridade(model.Prioridade),
		Status:        entities.StatusSolicitacao(model.Status),
		DataPrazo:     timeOrNil(model.DataPrazo),
		DataConclusao: timeOrNil(model.DataConclusao),
		Descricao:     model.Descricao,
		CreatedAt:     time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt:     time.Unix(model.UpdatedAt, 0).UTC(),
	}
	if model.Categoria != nil {
		s.CategoriaNome = model.Categoria.Nome
	}
	if model.Cliente != nil {
		s.ClienteNome = model.Cliente.Nome
	}
	return s
}

func (r *SolicitacaoRepository) toEntities(models []*SolicitacaoModel) []*entities.Solicitacao {
	result := make([]*entities.Solicitacao, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}

func unixOrNil(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ts := t.UTC().Unix()
	return &ts
}

func timeOrNil(ts *int64) *time.Time {
	if ts == nil {
		return nil
	}
	t := time.Unix(*ts, 0).UTC()
	return &t
}

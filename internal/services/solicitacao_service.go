package services

import (
	"context"
	"time"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
	"github.com/Esamwell/mthubv2/internal/domain/errors"
	"github.com/Esamwell/mthubv2/internal/domain/ports"
	"github.com/Esamwell/mthubv2/internal/domain/repositories"
)

// Tipos de evento publicados para o hub de WebSocket
const (
	EventoSolicitacaoCriada     = "solicitacao_criada"
	EventoSolicitacaoAtualizada = "solicitacao_atualizada"
	EventoSolicitacaoExcluida   = "solicitacao_excluida"
)

// SolicitacaoEvent é o payload enviado aos dashboards conectados
type SolicitacaoEvent struct {
	Tipo   string `json:"tipo"`
	ID     string `json:"id"`
	Titulo string `json:"titulo,omitempty"`
	Status string `json:"status,omitempty"`
}

// SolicitacaoService contém a lógica de negócio para solicitações
type SolicitacaoService struct {
	solicitacaoRepo repositories.SolicitacaoRepository
	events          ports.EventPublisher
	logger          ports.Logger
	now             func() time.Time
}

// NewSolicitacaoService cria um novo SolicitacaoService.
// events pode ser nil quando não há hub conectado (testes, jobs).
func NewSolicitacaoService(
	solicitacaoRepo repositories.SolicitacaoRepository,
	events ports.EventPublisher,
	logger ports.Logger,
) *SolicitacaoService {
	return &SolicitacaoService{
		solicitacaoRepo: solicitacaoRepo,
		events:          events,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// SolicitacaoInput representa os dados de criação/atualização de uma
// solicitação. A atualização é uma substituição completa: todos os campos
// devem ser reenviados pelo chamador, mesmo os inalterados.
type SolicitacaoInput struct {
	Titulo      string
	CategoriaID string
	ClienteID   string
	Prioridade  string
	Status      string
	// DataEntrega chega como string do formulário ("2025-07-01" ou RFC 3339);
	// vazia vira null, nunca string vazia no banco.
	DataEntrega string
	Descricao   string
}

// Create cria uma nova solicitação com defaults pendente/media
func (s *SolicitacaoService) Create(ctx context.Context, input SolicitacaoInput) (*entities.Solicitacao, error) {
	prazo, err := parseDataEntrega(input.DataEntrega)
	if err != nil {
		return nil, err
	}

	solicitacao := &entities.Solicitacao{
		Titulo:      input.Titulo,
		CategoriaID: input.CategoriaID,
		ClienteID:   input.ClienteID,
		Prioridade:  entities.Prioridade(input.Prioridade),
		Status:      entities.StatusSolicitacao(input.Status),
		DataPrazo:   prazo,
		Descricao:   input.Descricao,
	}
	solicitacao.ApplyDefaults()

	if err := s.validate(solicitacao); err != nil {
		return nil, err
	}

	if err := s.solicitacaoRepo.Create(ctx, solicitacao); err != nil {
		return nil, err
	}

	s.logger.Info("solicitacao created", "id", solicitacao.ID, "titulo", solicitacao.Titulo)
	s.publish(SolicitacaoEvent{
		Tipo:   EventoSolicitacaoCriada,
		ID:     solicitacao.ID,
		Titulo: solicitacao.Titulo,
		Status: string(solicitacao.Status),
	})

	// Releitura para devolver a linha com nomes de cliente/categoria
	created, err := s.solicitacaoRepo.FindByID(ctx, solicitacao.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return solicitacao, nil
	}
	return created, nil
}

// Update substitui os campos mutáveis. Se o status informado for
// "concluida", data_conclusao é carimbada com o instante da escrita;
// qualquer outro status deixa o carimbo como está.
func (s *SolicitacaoService) Update(ctx context.Context, id string, input SolicitacaoInput) (*entities.Solicitacao, error) {
	prazo, err := parseDataEntrega(input.DataEntrega)
	if err != nil {
		return nil, err
	}

	solicitacao := &entities.Solicitacao{
		ID:          id,
		Titulo:      input.Titulo,
		CategoriaID: input.CategoriaID,
		ClienteID:   input.ClienteID,
		Prioridade:  entities.Prioridade(input.Prioridade),
		Status:      entities.StatusSolicitacao(input.Status),
		DataPrazo:   prazo,
		Descricao:   input.Descricao,
	}

	if err := s.validate(solicitacao); err != nil {
		return nil, err
	}

	if solicitacao.Status == entities.StatusConcluida {
		solicitacao.Concluir(s.now())
	}

	updated, err := s.solicitacaoRepo.Update(ctx, solicitacao)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, errors.ErrSolicitacaoNotFound
	}

	s.publish(SolicitacaoEvent{
		Tipo:   EventoSolicitacaoAtualizada,
		ID:     id,
		Titulo: solicitacao.Titulo,
		Status: string(solicitacao.Status),
	})

	return s.Get(ctx, id)
}

// Get busca uma solicitação por ID, com nomes de cliente/categoria
func (s *SolicitacaoService) Get(ctx context.Context, id string) (*entities.Solicitacao, error) {
	solicitacao, err := s.solicitacaoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if solicitacao == nil {
		return nil, errors.ErrSolicitacaoNotFound
	}
	return solicitacao, nil
}

// List retorna todas as solicitações (lista vazia quando não há nenhuma)
func (s *SolicitacaoService) List(ctx context.Context) ([]*entities.Solicitacao, error) {
	return s.solicitacaoRepo.List(ctx)
}

// ListRecent retorna as 5 solicitações mais recentes
func (s *SolicitacaoService) ListRecent(ctx context.Context) ([]*entities.Solicitacao, error) {
	return s.solicitacaoRepo.ListRecent(ctx, 5)
}

// Calendario retorna as solicitações com prazo dentro do mês informado,
// ordenadas por data_prazo crescente. Mês e ano são obrigatórios.
func (s *SolicitacaoService) Calendario(ctx context.Context, month, year int) ([]*entities.Solicitacao, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, errors.ErrMesAnoObrigatorios
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Dia zero do mês seguinte normaliza para o último dia deste mês
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 0, time.UTC)

	return s.solicitacaoRepo.ListByPrazoRange(ctx, start, end)
}

// Delete remove fisicamente a solicitação
func (s *SolicitacaoService) Delete(ctx context.Context, id string) error {
	removed, err := s.solicitacaoRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errors.ErrSolicitacaoNotFound
	}

	s.logger.Info("solicitacao deleted", "id", id)
	s.publish(SolicitacaoEvent{Tipo: EventoSolicitacaoExcluida, ID: id})
	return nil
}

// CountByStatus conta solicitações por status (status desconhecido é rejeitado)
func (s *SolicitacaoService) CountByStatus(ctx context.Context, status string) (int64, error) {
	st := entities.StatusSolicitacao(status)
	if !st.IsValid() {
		return 0, errors.ErrStatusInvalido
	}
	return s.solicitacaoRepo.CountByStatus(ctx, st)
}

func (s *SolicitacaoService) validate(solicitacao *entities.Solicitacao) error {
	if err := solicitacao.Validate(); err != nil {
		switch err {
		case entities.ErrStatusInvalido:
			return errors.ErrStatusInvalido
		case entities.ErrPrioridadeInvalida:
			return errors.ErrPrioridadeInvalida
		default:
			return errors.ErrCamposObrigatorios
		}
	}
	return nil
}

func (s *SolicitacaoService) publish(event SolicitacaoEvent) {
	if s.events != nil {
		s.events.Publish(event)
	}
}

// parseDataEntrega aceita data simples ou RFC 3339; vazio vira nil
func parseDataEntrega(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	return nil, errors.ErrDataInvalida
}

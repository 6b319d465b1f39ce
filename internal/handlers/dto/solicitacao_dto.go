package dto

import (
	"time"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
	"github.com/Esamwell/mthubv2/internal/services"
)

// SolicitacaoRequest representa o corpo de criação/atualização de uma
// solicitação. A atualização é uma substituição completa dos campos
// mutáveis; o cliente reenvia tudo, mesmo o que não mudou.
type SolicitacaoRequest struct {
	Titulo      string `json:"titulo" binding:"required"`
	CategoriaID string `json:"categoria_id" binding:"required"`
	ClienteID   string `json:"cliente_id" binding:"required"`
	Prioridade  string `json:"prioridade" binding:"omitempty,oneof=baixa media alta urgente"`
	Status      string `json:"status" binding:"omitempty,oneof=pendente em_andamento concluida cancelada"`
	DataEntrega string `json:"dataEntrega"`
	Descricao   string `json:"descricao"`
	// Method permite o override POST + _method=PUT usado pelo frontend legado
	Method string `json:"_method"`
}

// ToSolicitacaoInput converte a requisição para o input do serviço
func ToSolicitacaoInput(req SolicitacaoRequest) services.SolicitacaoInput {
	return services.SolicitacaoInput{
		Titulo:      req.Titulo,
		CategoriaID: req.CategoriaID,
		ClienteID:   req.ClienteID,
		Prioridade:  req.Prioridade,
		Status:      req.Status,
		DataEntrega: req.DataEntrega,
		Descricao:   req.Descricao,
	}
}

// NomeRef embute apenas o nome de um registro referenciado, no mesmo
// formato dos joins rasos da API original
type NomeRef struct {
	Nome string `json:"nome"`
}

// SolicitacaoResponse representa a resposta de uma solicitação
type SolicitacaoResponse struct {
	ID            string     `json:"id"`
	Titulo        string     `json:"titulo"`
	CategoriaID   string     `json:"categoria_id"`
	Categoria     *NomeRef   `json:"categoria,omitempty"`
	ClienteID     string     `json:"cliente_id"`
	Cliente       *NomeRef   `json:"cliente,omitempty"`
	Prioridade    string     `json:"prioridade"`
	Status        string     `json:"status"`
	DataPrazo     *string    `json:"data_prazo"`
	DataConclusao *time.Time `json:"data_conclusao"`
	Descricao     string     `json:"descricao"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ToSolicitacaoResponse converte uma entidade Solicitacao para SolicitacaoResponse
func ToSolicitacaoResponse(s *entities.Solicitacao) SolicitacaoResponse {
	resp := SolicitacaoResponse{
		ID:            s.ID,
		Titulo:        s.Titulo,
		CategoriaID:   s.CategoriaID,
		ClienteID:     s.ClienteID,
		Prioridade:    string(s.Prioridade),
		Status:        string(s.Status),
		DataConclusao: s.DataConclusao,
		Descricao:     s.Descricao,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if s.DataPrazo != nil {
		prazo := s.DataPrazo.Format("2006-01-02")
		resp.DataPrazo = &prazo
	}
	if s.CategoriaNome != "" {
		resp.Categoria = &NomeRef{Nome: s.CategoriaNome}
	}
	if s.ClienteNome != "" {
		resp.Cliente = &NomeRef{Nome: s.ClienteNome}
	}
	return resp
}

// ToSolicitacaoResponses converte uma lista de entidades Solicitacao
func ToSolicitacaoResponses(solicitacoes []*entities.Solicitacao) []SolicitacaoResponse {
	responses := make([]SolicitacaoResponse, len(solicitacoes))
	for i, s := range solicitacoes {
		responses[i] = ToSolicitacaoResponse(s)
	}
	return responses
}

// CountResponse é a resposta dos endpoints de contagem do dashboard
type CountResponse struct {
	Count int64 `json:"count"`
}

// MessageResponse é a resposta de operações sem corpo de dados
type MessageResponse struct {
	Message string `json:"message"`
}

package entities

import (
	"errors"
	"time"
)

var (
	ErrStatusInvalido     = errors.New("invalid status")
	ErrPrioridadeInvalida = errors.New("invalid prioridade")
)

// StatusSolicitacao é o vocabulário fechado de status de uma solicitação
type StatusSolicitacao string

const (
	StatusPendente    StatusSolicitacao = "pendente"
	StatusEmAndamento StatusSolicitacao = "em_andamento"
	StatusConcluida   StatusSolicitacao = "concluida"
	StatusCancelada   StatusSolicitacao = "cancelada"
)

// IsValid verifica se o status pertence ao conjunto permitido
func (s StatusSolicitacao) IsValid() bool {
	switch s {
	case StatusPendente, StatusEmAndamento, StatusConcluida, StatusCancelada:
		return true
	}
	return false
}

// Prioridade representa a urgência de uma solicitação
type Prioridade string

const (
	PrioridadeBaixa   Prioridade = "baixa"
	PrioridadeMedia   Prioridade = "media"
	PrioridadeAlta    Prioridade = "alta"
	PrioridadeUrgente Prioridade = "urgente"
)

// IsValid verifica se a prioridade pertence ao conjunto permitido
func (p Prioridade) IsValid() bool {
	switch p {
	case PrioridadeBaixa, PrioridadeMedia, PrioridadeAlta, PrioridadeUrgente:
		return true
	}
	return false
}

// Solicitacao representa uma unidade de trabalho rastreada para um cliente
type Solicitacao struct {
	ID            string
	Titulo        string
	CategoriaID   string
	CategoriaNome string
	ClienteID     string
	ClienteNome   string
	Prioridade    Prioridade
	Status        StatusSolicitacao
	DataPrazo     *time.Time
	DataConclusao *time.Time
	Descricao     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ApplyDefaults preenche status e prioridade quando o chamador não informa
func (s *Solicitacao) ApplyDefaults() {
	if s.Status == "" {
		s.Status = StatusPendente
	}
	if s.Prioridade == "" {
		s.Prioridade = PrioridadeMedia
	}
}

// Concluir marca a solicitação como concluída e carimba data_conclusao.
// O carimbo é unidirecional: sair de "concluida" não o limpa.
func (s *Solicitacao) Concluir(now time.Time) {
	s.Status = StatusConcluida
	s.DataConclusao = &now
}

// Validate valida regras de negócio da entidade Solicitacao
func (s *Solicitacao) Validate() error {
	if s.Titulo == "" {
		return errors.New("titulo is required")
	}
	if s.CategoriaID == "" {
		return errors.New("categoria_id is required")
	}
	if s.ClienteID == "" {
		return errors.New("cliente_id is required")
	}
	if !s.Status.IsValid() {
		return ErrStatusInvalido
	}
	if !s.Prioridade.IsValid() {
		return ErrPrioridadeInvalida
	}
	return nil
}

package dto

import (
	"github.com/Esamwell/mthubv2/internal/domain/entities"
	"github.com/Esamwell/mthubv2/internal/services"
)

// ItemOrcamentoRequest é um serviço selecionado no orçamento
type ItemOrcamentoRequest struct {
	Titulo    string  `json:"titulo" binding:"required"`
	Descricao string  `json:"descricao"`
	Preco     float64 `json:"preco" binding:"required,gt=0"`
	Unidade   string  `json:"unidade"`
}

// OrcamentoRequest representa a requisição de geração de orçamento em PDF
type OrcamentoRequest struct {
	ClienteNome     string                 `json:"cliente_nome"`
	ClienteEmail    string                 `json:"cliente_email" binding:"omitempty,email"`
	ClienteTelefone string                 `json:"cliente_telefone"`
	Itens           []ItemOrcamentoRequest `json:"itens" binding:"required,min=1,dive"`
	Desconto        float64                `json:"desconto" binding:"gte=0"`
	Observacoes     string                 `json:"observacoes"`
}

// ToOrcamentoInput converte a requisição para o input do serviço
func (r *OrcamentoRequest) ToOrcamentoInput() services.OrcamentoInput {
	itens := make([]services.ItemOrcamento, len(r.Itens))
	for i, item := range r.Itens {
		itens[i] = services.ItemOrcamento{
			Titulo:    item.Titulo,
			Descricao: item.Descricao,
			Preco:     item.Preco,
			Unidade:   item.Unidade,
		}
	}
	return services.OrcamentoInput{
		ClienteNome:        r.ClienteNome,
		ClienteEmail:       r.ClienteEmail,
		ClienteTelefone:    r.ClienteTelefone,
		Itens:              itens,
		DescontoPercentual: r.Desconto,
		Observacoes:        r.Observacoes,
	}
}

// CategoriaResponse representa uma categoria de solicitação
type CategoriaResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

// ToCategoriaResponses converte uma lista de entidades Categoria
func ToCategoriaResponses(categorias []*entities.Categoria) []CategoriaResponse {
	responses := make([]CategoriaResponse, len(categorias))
	for i, categoria := range categorias {
		responses[i] = CategoriaResponse{ID: categoria.ID, Nome: categoria.Nome}
	}
	return responses
}

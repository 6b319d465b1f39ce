package services

import (
	"bytes"
	"errors"
	"testing"

	domainerrors "github.com/Esamwell/mthubv2/internal/domain/errors"
)

func orcamentoInput() OrcamentoInput {
	return OrcamentoInput{
		ClienteNome: "Maria Silva",
		Itens: []ItemOrcamento{
			{Titulo: "Vídeo Institucional", Preco: 2500, Unidade: "projeto"},
			{Titulo: "Gestão de Redes Sociais", Preco: 1800, Unidade: "mês"},
		},
	}
}

func TestOrcamentoService_Catalogo(t *testing.T) {
	service := NewOrcamentoService(noopLogger{})

	catalogo := service.Catalogo()
	if len(catalogo) != 12 {
		t.Fatalf("esperava 12 serviços no catálogo, obteve %d", len(catalogo))
	}

	for _, servico := range catalogo {
		if servico.ID == "" || servico.Titulo == "" || servico.Preco <= 0 {
			t.Errorf("serviço incompleto no catálogo: %+v", servico)
		}
	}
}

func TestOrcamentoService_CalcularTotais(t *testing.T) {
	service := NewOrcamentoService(noopLogger{})

	t.Run("sem desconto", func(t *testing.T) {
		totais := service.CalcularTotais(orcamentoInput())

		if totais.Subtotal != 4300 {
			t.Errorf("esperava subtotal 4300, obteve %.2f", totais.Subtotal)
		}
		if totais.Desconto != 0 {
			t.Errorf("esperava desconto 0, obteve %.2f", totais.Desconto)
		}
		if totais.Total != 4300 {
			t.Errorf("esperava total 4300, obteve %.2f", totais.Total)
		}
	})

	t.Run("desconto percentual", func(t *testing.T) {
		input := orcamentoInput()
		input.DescontoPercentual = 10

		totais := service.CalcularTotais(input)

		if totais.Desconto != 430 {
			t.Errorf("esperava desconto 430, obteve %.2f", totais.Desconto)
		}
		if totais.Total != 3870 {
			t.Errorf("esperava total 3870, obteve %.2f", totais.Total)
		}
	})

	t.Run("desconto acima de 100%% trunca em zero", func(t *testing.T) {
		input := orcamentoInput()
		input.DescontoPercentual = 150

		totais := service.CalcularTotais(input)

		if totais.Total != 0 {
			t.Errorf("esperava total 0, obteve %.2f", totais.Total)
		}
	})
}

func TestOrcamentoService_GerarPDF(t *testing.T) {
	service := NewOrcamentoService(noopLogger{})

	t.Run("gera um documento PDF", func(t *testing.T) {
		pdf, err := service.GerarPDF(orcamentoInput())
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if !bytes.HasPrefix(pdf, []byte("%PDF")) {
			t.Error("bytes gerados não começam com o cabeçalho %PDF")
		}
	})

	t.Run("rejeita orçamento sem itens", func(t *testing.T) {
		input := orcamentoInput()
		input.Itens = nil

		_, err := service.GerarPDF(input)
		if !errors.Is(err, domainerrors.ErrOrcamentoSemServicos) {
			t.Errorf("esperava ErrOrcamentoSemServicos, obteve %v", err)
		}
	})
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "R$ 0,00"},
		{1800, "R$ 1.800,00"},
		{2500.5, "R$ 2.500,50"},
		{1234567.89, "R$ 1.234.567,89"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := formatBRL(tt.value); got != tt.expected {
				t.Errorf("formatBRL(%.2f): esperava '%s', obteve '%s'", tt.value, tt.expected, got)
			}
		})
	}
}

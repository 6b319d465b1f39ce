package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Esamwell/mthubv2/internal/domain/errors"
	"github.com/Esamwell/mthubv2/internal/domain/ports"
)

// ServicoCatalogo é um item do catálogo de serviços oferecidos
type ServicoCatalogo struct {
	ID        string  `json:"id"`
	Titulo    string  `json:"titulo"`
	Descricao string  `json:"descricao"`
	Preco     float64 `json:"preco"`
	Unidade   string  `json:"unidade"`
	Categoria string  `json:"categoria"`
}

// ItemOrcamento é um serviço selecionado para o orçamento
type ItemOrcamento struct {
	Titulo    string
	Descricao string
	Preco     float64
	Unidade   string
}

// OrcamentoInput representa os dados para gerar um orçamento em PDF
type OrcamentoInput struct {
	ClienteNome     string
	ClienteEmail    string
	ClienteTelefone string
	Itens           []ItemOrcamento
	// DescontoPercentual é sempre percentual (0–100); acima de 100 o total
	// é truncado em zero, nunca negativo.
	DescontoPercentual float64
	Observacoes        string
}

// TotaisOrcamento é o resumo financeiro calculado
type TotaisOrcamento struct {
	Subtotal float64
	Desconto float64
	Total    float64
}

// OrcamentoService monta orçamentos e gera o PDF de proposta
type OrcamentoService struct {
	logger ports.Logger
	now    func() time.Time
}

// NewOrcamentoService cria um novo OrcamentoService
func NewOrcamentoService(logger ports.Logger) *OrcamentoService {
	return &OrcamentoService{
		logger: logger,
		now:    func() time.Time { return time.Now() },
	}
}

// catálogo fixo de serviços, espelhando a tabela de preços da agência
var catalogoServicos = []ServicoCatalogo{
	{ID: "1", Titulo: "Vídeo Institucional", Descricao: "Vídeo corporativo profissional com roteiro, filmagem e edição", Preco: 2500, Unidade: "/vídeo", Categoria: "Audiovisual"},
	{ID: "2", Titulo: "Vídeo de Produto", Descricao: "Vídeo showcasing produto com foco comercial", Preco: 1800, Unidade: "/vídeo", Categoria: "Audiovisual"},
	{ID: "3", Titulo: "Vídeo para Redes Sociais", Descricao: "Vídeos curtos otimizados para Instagram, TikTok e Facebook", Preco: 800, Unidade: "/vídeo", Categoria: "Audiovisual"},
	{ID: "4", Titulo: "Pacote de Stories", Descricao: "Conjunto de 10 stories personalizados", Preco: 800, Unidade: "/pacote", Categoria: "Audiovisual"},
	{ID: "5", Titulo: "Criação de Logo", Descricao: "Logo profissional com manual de marca", Preco: 1200, Unidade: "/projeto", Categoria: "Design Gráfico"},
	{ID: "6", Titulo: "Material Gráfico", Descricao: "Cartões, folders, banners e materiais impressos", Preco: 400, Unidade: "/peça", Categoria: "Design Gráfico"},
	{ID: "7", Titulo: "Identidade Visual Completa", Descricao: "Logo, paleta de cores, tipografia e manual de marca", Preco: 3500, Unidade: "/projeto", Categoria: "Design Gráfico"},
	{ID: "8", Titulo: "Gestão de Redes Sociais", Descricao: "Gestão completa de redes sociais com posts diários", Preco: 2000, Unidade: "/mês", Categoria: "Social Media"},
	{ID: "9", Titulo: "Posts para Feed", Descricao: "Posts criativos para Instagram e Facebook", Preco: 80, Unidade: "/post", Categoria: "Social Media"},
	{ID: "10", Titulo: "Campanha de Anúncios", Descricao: "Criação e gestão de campanhas pagas", Preco: 1500, Unidade: "/campanha", Categoria: "Social Media"},
	{ID: "11", Titulo: "Consultoria em Marketing", Descricao: "Consultoria estratégica personalizada", Preco: 300, Unidade: "/hora", Categoria: "Estratégia"},
	{ID: "12", Titulo: "Planejamento Estratégico", Descricao: "Planejamento de marketing completo", Preco: 2500, Unidade: "/projeto", Categoria: "Estratégia"},
}

// Catalogo retorna o catálogo de serviços
func (s *OrcamentoService) Catalogo() []ServicoCatalogo {
	return catalogoServicos
}

// CalcularTotais calcula subtotal, desconto e total (total nunca negativo)
func (s *OrcamentoService) CalcularTotais(input OrcamentoInput) TotaisOrcamento {
	var subtotal float64
	for _, item := range input.Itens {
		subtotal += item.Preco
	}

	desconto := subtotal * (input.DescontoPercentual / 100)
	total := subtotal - desconto
	if total < 0 {
		total = 0
	}

	return TotaisOrcamento{Subtotal: subtotal, Desconto: desconto, Total: total}
}

// Paleta da marca: amarelo e preto
var (
	corAmarela = props.Color{Red: 255, Green: 193, Blue: 7}
	corPreta   = props.Color{Red: 0, Green: 0, Blue: 0}
	corCinza   = props.Color{Red: 102, Green: 102, Blue: 102}
)

// GerarPDF desenha o orçamento em A4 e retorna os bytes do documento
func (s *OrcamentoService) GerarPDF(input OrcamentoInput) ([]byte, error) {
	if len(input.Itens) == 0 {
		return nil, errors.ErrOrcamentoSemServicos
	}

	totais := s.CalcularTotais(input)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(10).
		Build()

	m := maroto.New(cfg)

	// Cabeçalho em fundo amarelo
	m.AddRow(16, text.NewCol(12, "MT ENTERPRISE", props.Text{
		Size: 24, Style: fontstyle.Bold, Align: align.Center, Color: &corPreta, Top: 3,
	})).WithStyle(&props.Cell{BackgroundColor: &corAmarela})
	m.AddRow(8, text.NewCol(12, "Soluções criativas em marketing e publicidade", props.Text{
		Size: 11, Align: align.Center, Color: &corPreta,
	})).WithStyle(&props.Cell{BackgroundColor: &corAmarela})

	m.AddRow(14, text.NewCol(12, "ORÇAMENTO", props.Text{
		Size: 18, Style: fontstyle.Bold, Align: align.Center, Top: 5,
	}))

	// Bloco do cliente
	m.AddRows(
		s.campoCliente("Cliente:", orDefault(input.ClienteNome, "Cliente Demo")),
		s.campoCliente("E-mail:", orDefault(input.ClienteEmail, "cliente@exemplo.com")),
		s.campoCliente("Telefone:", orDefault(input.ClienteTelefone, "-")),
		s.campoCliente("Data:", s.now().Format("02/01/2006")),
	)

	m.AddRow(4, line.NewCol(12, props.Line{Color: &corCinza}))

	// Tabela de serviços
	m.AddRow(8,
		text.NewCol(6, "SERVIÇO", props.Text{Size: 9, Style: fontstyle.Bold, Top: 2, Left: 2}),
		text.NewCol(1, "QTD", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Center, Top: 2}),
		text.NewCol(2, "VALOR UNIT.", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Top: 2}),
		text.NewCol(3, "TOTAL", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Top: 2}),
	).WithStyle(&props.Cell{BackgroundColor: &corAmarela})

	for _, item := range input.Itens {
		m.AddRows(s.linhaItem(item)...)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &corCinza}))

	// Resumo financeiro
	m.AddRow(6,
		col.New(7),
		text.NewCol(2, "Subtotal:", props.Text{Size: 10}),
		text.NewCol(3, formatBRL(totais.Subtotal), props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(6,
		col.New(7),
		text.NewCol(2, "Desconto:", props.Text{Size: 10}),
		text.NewCol(3, "- "+formatBRL(totais.Desconto), props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(7),
		text.NewCol(2, "TOTAL:", props.Text{Size: 13, Style: fontstyle.Bold, Top: 2}),
		text.NewCol(3, formatBRL(totais.Total), props.Text{Size: 13, Style: fontstyle.Bold, Align: align.Right, Top: 2}),
	)

	if input.Observacoes != "" {
		m.AddRow(6, text.NewCol(12, "Observações:", props.Text{Size: 9, Style: fontstyle.Bold, Top: 2}))
		m.AddRow(10, text.NewCol(12, input.Observacoes, props.Text{Size: 9, Color: &corCinza}))
	}

	m.AddRow(8, text.NewCol(12, "Orçamento válido por 15 dias. MT Enterprise — mtenterprise.com.br", props.Text{
		Size: 8, Align: align.Center, Color: &corCinza, Top: 3,
	}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	s.logger.Info("orcamento pdf generated",
		"itens", len(input.Itens),
		"total", totais.Total,
	)

	return doc.GetBytes(), nil
}

func (s *OrcamentoService) campoCliente(label, value string) core.Row {
	return row.New(6).Add(
		text.NewCol(2, label, props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(10, value, props.Text{Size: 10}),
	)
}

func (s *OrcamentoService) linhaItem(item ItemOrcamento) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			text.NewCol(6, item.Titulo, props.Text{Size: 9, Left: 2}),
			text.NewCol(1, "1", props.Text{Size: 9, Align: align.Center}),
			text.NewCol(2, formatBRL(item.Preco), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(3, formatBRL(item.Preco), props.Text{Size: 9, Align: align.Right}),
		),
	}
	if item.Descricao != "" {
		rows = append(rows, row.New(4).Add(
			text.NewCol(12, item.Descricao, props.Text{Size: 7, Left: 2, Color: &corCinza}),
		))
	}
	return rows
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// formatBRL formata um valor como moeda pt-BR ("R$ 1.234,56")
func formatBRL(value float64) string {
	neg := value < 0
	if neg {
		value = -value
	}

	cents := int64(value*100 + 0.5)
	intPart := cents / 100
	fracPart := cents % 100

	digits := fmt.Sprintf("%d", intPart)
	var b strings.Builder
	pre := len(digits) % 3
	if pre > 0 {
		b.WriteString(digits[:pre])
		if len(digits) > pre {
			b.WriteString(".")
		}
	}
	for i := pre; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteString(".")
		}
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), fracPart)
}

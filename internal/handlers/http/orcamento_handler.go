package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Esamwell/mthubv2/internal/domain/ports"
	"github.com/Esamwell/mthubv2/internal/handlers/dto"
	"github.com/Esamwell/mthubv2/internal/services"
)

// OrcamentoHandler lida com o gerador de orçamentos
type OrcamentoHandler struct {
	orcamentoService *services.OrcamentoService
	logger           ports.Logger
}

// NewOrcamentoHandler cria um novo OrcamentoHandler
func NewOrcamentoHandler(orcamentoService *services.OrcamentoService, logger ports.Logger) *OrcamentoHandler {
	return &OrcamentoHandler{
		orcamentoService: orcamentoService,
		logger:           logger,
	}
}

// Servicos lista o catálogo de serviços disponíveis para orçamento
// @Summary Catálogo de serviços
// @Tags orcamento
// @Produce json
// @Success 200 {array} services.ServicoCatalogo
// @Router /orcamento/servicos [get]
func (h *OrcamentoHandler) Servicos(c *gin.Context) {
	c.JSON(http.StatusOK, h.orcamentoService.Catalogo())
}

// GerarPDF gera a proposta de orçamento em PDF
// @Summary Gera orçamento em PDF
// @Tags orcamento
// @Accept json
// @Produce application/pdf
// @Param orcamento body dto.OrcamentoRequest true "Orçamento"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Router /orcamento/pdf [post]
func (h *OrcamentoHandler) GerarPDF(c *gin.Context) {
	var req dto.OrcamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblemI18n(c, err))
		return
	}

	pdf, err := h.orcamentoService.GerarPDF(req.ToOrcamentoInput())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	filename := fmt.Sprintf("orcamento-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Esamwell/mthubv2/internal/domain/ports"
	"github.com/Esamwell/mthubv2/internal/handlers/dto"
	"github.com/Esamwell/mthubv2/internal/services"
)

// SolicitacaoHandler lida com requisições HTTP de solicitações
type SolicitacaoHandler struct {
	solicitacaoService *services.SolicitacaoService
	logger             ports.Logger
}

// NewSolicitacaoHandler cria um novo SolicitacaoHandler
func NewSolicitacaoHandler(solicitacaoService *services.SolicitacaoService, logger ports.Logger) *SolicitacaoHandler {
	return &SolicitacaoHandler{
		solicitacaoService: solicitacaoService,
		logger:             logger,
	}
}

// List lista todas as solicitações
// @Summary Lista solicitações
// @Tags solicitacoes
// @Produce json
// @Success 200 {array} dto.SolicitacaoResponse
// @Router /solicitacoes [get]
func (h *SolicitacaoHandler) List(c *gin.Context) {
	solicitacoes, err := h.solicitacaoService.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSolicitacaoResponses(solicitacoes))
}

// ListRecent lista as 5 solicitações mais recentes
// @Summary Solicitações recentes
// @Tags solicitacoes
// @Produce json
// @Success 200 {array} dto.SolicitacaoResponse
// @Router /solicitacoes/recentes [get]
func (h *SolicitacaoHandler) ListRecent(c *gin.Context) {
	solicitacoes, err := h.solicitacaoService.ListRecent(c.Request.Context())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSolicitacaoResponses(solicitacoes))
}

// Calendario lista solicitações com prazo dentro do mês informado
// @Summary Solicitações do calendário
// @Tags solicitacoes
// @Produce json
// @Param month query int true "Mês (1-12)"
// @Param year query int true "Ano"
// @Success 200 {array} dto.SolicitacaoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /solicitacoes-calendario [get]
func (h *SolicitacaoHandler) Calendario(c *gin.Context) {
	monthStr := c.Query("month")
	yearStr := c.Query("year")
	if monthStr == "" || yearStr == "" {
		c.JSON(http.StatusBadRequest, dto.BadRequestProblemI18n(c, "error.mes_ano_obrigatorios"))
		return
	}

	month, errM := strconv.Atoi(monthStr)
	year, errY := strconv.Atoi(yearStr)
	if errM != nil || errY != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestProblemI18n(c, "error.mes_ano_obrigatorios"))
		return
	}

	solicitacoes, err := h.solicitacaoService.Calendario(c.Request.Context(), month, year)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSolicitacaoResponses(solicitacoes))
}

// Get busca uma solicitação por ID
// @Summary Busca solicitação
// @Tags solicitacoes
// @Produce json
// @Param id path string true "ID da solicitação"
// @Success 200 {object} dto.SolicitacaoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /solicitacoes/{id} [get]
func (h *SolicitacaoHandler) Get(c *gin.Context) {
	solicitacao, err := h.solicitacaoService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSolicitacaoResponse(solicitacao))
}

// Create cria uma nova solicitação
// @Summary Cria solicitação
// @Tags solicitacoes
// @Accept json
// @Produce json
// @Param solicitacao body dto.SolicitacaoRequest true "Solicitação"
// @Success 201 {object} dto.SolicitacaoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /solicitacoes [post]
func (h *SolicitacaoHandler) Create(c *gin.Context) {
	var req dto.SolicitacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblemI18n(c, err))
		return
	}

	solicitacao, err := h.solicitacaoService.Create(c.Request.Context(), dto.ToSolicitacaoInput(req))
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSolicitacaoResponse(solicitacao))
}

// Update substitui os campos mutáveis de uma solicitação.
// Aceita PUT direto ou POST com _method=PUT no corpo (frontend legado).
// @Summary Atualiza solicitação
// @Tags solicitacoes
// @Accept json
// @Produce json
// @Param id path string true "ID da solicitação"
// @Param solicitacao body dto.SolicitacaoRequest true "Solicitação"
// @Success 200 {object} dto.SolicitacaoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /solicitacoes/{id} [put]
func (h *SolicitacaoHandler) Update(c *gin.Context) {
	var req dto.SolicitacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblemI18n(c, err))
		return
	}

	if c.Request.Method == http.MethodPost && req.Method != "PUT" {
		c.JSON(http.StatusMethodNotAllowed, dto.MethodNotAllowedProblemI18n(c))
		return
	}

	solicitacao, err := h.solicitacaoService.Update(c.Request.Context(), c.Param("id"), dto.ToSolicitacaoInput(req))
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSolicitacaoResponse(solicitacao))
}

// Delete exclui fisicamente uma solicitação
// @Summary Exclui solicitação
// @Tags solicitacoes
// @Produce json
// @Param id path string true "ID da solicitação"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /solicitacoes/{id} [delete]
func (h *SolicitacaoHandler) Delete(c *gin.Context) {
	if err := h.solicitacaoService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "msg.solicitacao_excluida")})
}

// CountByStatus conta solicitações por status
// @Summary Contagem de solicitações por status
// @Tags dashboard
// @Produce json
// @Param status path string true "Status" Enums(pendente, em_andamento, concluida, cancelada)
// @Success 200 {object} dto.CountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /counts/solicitacoes/{status} [get]
func (h *SolicitacaoHandler) CountByStatus(c *gin.Context) {
	count, err := h.solicitacaoService.CountByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

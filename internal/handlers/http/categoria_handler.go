package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Esamwell/mthubv2/internal/domain/ports"
	"github.com/Esamwell/mthubv2/internal/handlers/dto"
	"github.com/Esamwell/mthubv2/internal/services"
)

// CategoriaHandler lida com o catálogo de categorias
type CategoriaHandler struct {
	categoriaService *services.CategoriaService
	logger           ports.Logger
}

// NewCategoriaHandler cria um novo CategoriaHandler
func NewCategoriaHandler(categoriaService *services.CategoriaService, logger ports.Logger) *CategoriaHandler {
	return &CategoriaHandler{
		categoriaService: categoriaService,
		logger:           logger,
	}
}

// List lista as categorias de solicitação
// @Summary Lista categorias
// @Tags categorias
// @Produce json
// @Success 200 {array} dto.CategoriaResponse
// @Router /categorias [get]
func (h *CategoriaHandler) List(c *gin.Context) {
	categorias, err := h.categoriaService.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoriaResponses(categorias))
}

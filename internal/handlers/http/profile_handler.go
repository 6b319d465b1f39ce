package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Esamwell/mthubv2/internal/domain/ports"
	"github.com/Esamwell/mthubv2/internal/handlers/dto"
	"github.com/Esamwell/mthubv2/internal/services"
)

// ProfileHandler lida com a administração de perfis de usuário
type ProfileHandler struct {
	profileService *services.ProfileService
	logger         ports.Logger
}

// NewProfileHandler cria um novo ProfileHandler
func NewProfileHandler(profileService *services.ProfileService, logger ports.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// List lista todos os usuários
// @Summary Lista usuários
// @Tags usuarios
// @Produce json
// @Success 200 {object} dto.UsuariosEnvelope
// @Router /usuarios [get]
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileService.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.UsuariosEnvelope{Usuarios: dto.ToProfileResponses(profiles)})
}

// Get busca um usuário por ID
// @Summary Busca usuário
// @Tags usuarios
// @Produce json
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.UserEnvelope
// @Failure 404 {object} dto.ErrorResponse
// @Router /usuarios/{id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserEnvelope{User: dto.ToProfileResponse(profile)})
}

// Update substitui os dados de um usuário
// @Summary Edita usuário
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path string true "ID do usuário"
// @Param user body dto.UpdateProfileRequest true "Usuário"
// @Success 200 {object} dto.UserEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /usuarios/{id} [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblemI18n(c, err))
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), c.Param("id"), services.UpdateInput{
		Nome:     req.Nome,
		Email:    req.Email,
		Empresa:  req.Empresa,
		Telefone: req.Telefone,
		Status:   req.Status,
		UserType: req.UserType,
	})
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserEnvelope{User: dto.ToProfileResponse(profile)})
}

// Delete exclui fisicamente um usuário
// @Summary Exclui usuário
// @Tags usuarios
// @Produce json
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /usuarios/{id} [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.profileService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// CountClientes conta os perfis do tipo cliente
// @Summary Contagem de clientes
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Router /counts/clientes [get]
func (h *ProfileHandler) CountClientes(c *gin.Context) {
	count, err := h.profileService.CountClientes(c.Request.Context())
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

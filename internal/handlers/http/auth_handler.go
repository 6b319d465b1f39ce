package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Esamwell/mthubv2/internal/domain/ports"
	"github.com/Esamwell/mthubv2/internal/handlers/dto"
	"github.com/Esamwell/mthubv2/internal/services"
)

// AuthHandler lida com login, cadastro e troca de senha
type AuthHandler struct {
	profileService *services.ProfileService
	tokenService   *services.TokenService
	logger         ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(
	profileService *services.ProfileService,
	tokenService *services.TokenService,
	logger ports.Logger,
) *AuthHandler {
	return &AuthHandler{
		profileService: profileService,
		tokenService:   tokenService,
		logger:         logger,
	}
}

// Login autentica um usuário por email e senha
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /login-cliente [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblemI18n(c, err))
		return
	}

	profile, err := h.profileService.Authenticate(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	token, err := h.tokenService.Generate(profile)
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		User:  dto.ToProfileResponse(profile),
		Token: token,
	})
}

// Register cadastra um novo usuário
// @Summary Cadastra usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Usuário"
// @Success 201 {object} dto.UserEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /cadastrar-usuario [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblemI18n(c, err))
		return
	}

	profile, err := h.profileService.Register(c.Request.Context(), services.RegisterInput{
		Nome:     req.Nome,
		Email:    req.Email,
		Senha:    req.Senha,
		Empresa:  req.Empresa,
		Telefone: req.Telefone,
		UserType: req.UserType,
	})
	if err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UserEnvelope{User: dto.ToProfileResponse(profile)})
}

// ChangePassword troca a senha do usuário após conferir a atual
// @Summary Altera senha
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.ChangePasswordRequest true "Troca de senha"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /alterar-senha [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationProblemI18n(c, err))
		return
	}

	if err := h.profileService.ChangePassword(c.Request.Context(), req.UserID, req.SenhaAtual, req.NovaSenha); err != nil {
		respondDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "msg.senha_alterada")})
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Esamwell/mthubv2/internal/handlers/dto"
	"github.com/Esamwell/mthubv2/internal/services"
)

const (
	// UserIDContextKey é a chave do ID do usuário autenticado no contexto do Gin
	UserIDContextKey = "user_id"
	// UserTypeContextKey é a chave do tipo do usuário autenticado
	UserTypeContextKey = "user_type"
)

// AuthMiddleware valida o token de sessão das requisições
type AuthMiddleware struct {
	tokens *services.TokenService
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokens *services.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth exige um Bearer token válido e coloca as claims no contexto
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response := dto.UnauthorizedProblemI18n(c, "error.unauthorized.detail")
			c.AbortWithStatusJSON(http.StatusUnauthorized, response)
			return
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			response := dto.UnauthorizedProblemI18n(c, "error.unauthorized.detail")
			c.AbortWithStatusJSON(http.StatusUnauthorized, response)
			return
		}

		c.Set(UserIDContextKey, claims.Subject)
		c.Set(UserTypeContextKey, claims.UserType)
		c.Next()
	}
}

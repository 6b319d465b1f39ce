package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/Esamwell/mthubv2/internal/infrastructure/i18n"
)

// Chaves de contexto definidas em handlers/middleware (i18n.go); os valores
// são replicados aqui para evitar ciclo de importação com middleware/auth.go.
const (
	languageContextKey    = "language"
	i18nServiceContextKey = "i18n_service"
)

// T traduz uma chave no idioma da requisição.
// Uso: dto.T(c, "msg.senha_alterada") ou com parâmetros
// dto.T(c, "welcome", map[string]interface{}{"Name": "João"}).
// Sem serviço de i18n no contexto, a própria chave é devolvida.
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	value, exists := c.Get(i18nServiceContextKey)
	if !exists {
		return key
	}
	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}
	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma detectado para a requisição
func GetLanguage(c *gin.Context) string {
	if lang, ok := c.Get(languageContextKey); ok {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return "pt-BR"
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Esamwell/mthubv2/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave do idioma detectado no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave do serviço de i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware detecta o idioma de cada requisição e disponibiliza o
// serviço de tradução para handlers e DTOs.
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{i18nService: i18nService}
}

// DetectLanguage resolve o idioma da requisição e o coloca no contexto.
// Prioridade: ?lang= explícito, depois Accept-Language, depois o padrão.
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LanguageContextKey, m.resolveLanguage(c))
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Next()
	}
}

func (m *I18nMiddleware) resolveLanguage(c *gin.Context) string {
	if queryLang := c.Query("lang"); queryLang != "" && m.i18nService.IsLanguageSupported(queryLang) {
		return queryLang
	}

	if lang := m.parseAcceptLanguage(c.GetHeader("Accept-Language")); lang != "" {
		return lang
	}

	return m.i18nService.GetDefaultLanguage()
}

// parseAcceptLanguage percorre o header em ordem de preferência e
// retorna o primeiro idioma suportado, aceitando a variação sem região
// (pt-BR → pt) quando a exata não existe.
// Exemplo: "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7" → "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, lang := range strings.Split(acceptLang, ",") {
		lang = strings.TrimSpace(lang)
		// descarta o peso (;q=0.9)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}

		if m.i18nService.IsLanguageSupported(lang) {
			return lang
		}

		if base, _, found := strings.Cut(lang, "-"); found && m.i18nService.IsLanguageSupported(base) {
			return base
		}
	}

	return ""
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	"github.com/Esamwell/mthubv2/internal/handlers/dto"
	"github.com/Esamwell/mthubv2/internal/handlers/middleware"
	"github.com/Esamwell/mthubv2/internal/handlers/ws"
	"github.com/Esamwell/mthubv2/internal/infrastructure/config"
	"github.com/Esamwell/mthubv2/internal/infrastructure/i18n"
)

// RouterDeps agrupa as dependências necessárias para montar as rotas
type RouterDeps struct {
	Config      *config.Config
	I18nService *i18n.Service
	Auth        *middleware.AuthMiddleware
	Solicitacao *SolicitacaoHandler
	Profile     *ProfileHandler
	Login       *AuthHandler
	Categoria   *CategoriaHandler
	Orcamento   *OrcamentoHandler
	Hub         *ws.Hub
}

// NewRouter monta o roteador gin com middlewares e todas as rotas da API
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", deps.Config.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(deps.I18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(deps.Config.CORS.AllowedOrigins))

	// Método não suportado em uma rota existente vira um problema 405
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.MethodNotAllowedProblemI18n(c))
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NotFoundProblemI18n(c, "error.rota_nao_encontrada"))
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    deps.Config.Env,
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	api := router.Group("/api")

	// Rotas públicas
	api.POST("/login-cliente", deps.Login.Login)
	api.POST("/cadastrar-usuario", deps.Login.Register)

	// Rotas autenticadas
	protected := api.Group("")
	protected.Use(deps.Auth.RequireAuth())
	{
		solicitacoes := protected.Group("/solicitacoes")
		{
			solicitacoes.GET("", deps.Solicitacao.List)
			solicitacoes.POST("", deps.Solicitacao.Create)
			solicitacoes.GET("/recentes", deps.Solicitacao.ListRecent)
			solicitacoes.GET("/:id", deps.Solicitacao.Get)
			solicitacoes.PUT("/:id", deps.Solicitacao.Update)
			// frontend legado envia POST com _method=PUT no corpo
			solicitacoes.POST("/:id", deps.Solicitacao.Update)
			solicitacoes.DELETE("/:id", deps.Solicitacao.Delete)
		}

		protected.GET("/solicitacoes-calendario", deps.Solicitacao.Calendario)
		protected.GET("/counts/clientes", deps.Profile.CountClientes)
		protected.GET("/counts/solicitacoes/:status", deps.Solicitacao.CountByStatus)
		protected.GET("/categorias", deps.Categoria.List)

		protected.POST("/alterar-senha", deps.Login.ChangePassword)

		usuarios := protected.Group("/usuarios")
		{
			usuarios.GET("", deps.Profile.List)
			usuarios.GET("/:id", deps.Profile.Get)
			usuarios.PUT("/:id", deps.Profile.Update)
			usuarios.DELETE("/:id", deps.Profile.Delete)
		}

		orcamento := protected.Group("/orcamento")
		{
			orcamento.GET("/servicos", deps.Orcamento.Servicos)
			orcamento.POST("/pdf", deps.Orcamento.GerarPDF)
		}

		protected.GET("/ws", deps.Hub.Serve)
	}

	return router
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/Esamwell/mthubv2/docs"
	httphandlers "github.com/Esamwell/mthubv2/internal/handlers/http"
	"github.com/Esamwell/mthubv2/internal/handlers/middleware"
	"github.com/Esamwell/mthubv2/internal/handlers/ws"
	"github.com/Esamwell/mthubv2/internal/infrastructure/config"
	"github.com/Esamwell/mthubv2/internal/infrastructure/i18n"
	"github.com/Esamwell/mthubv2/internal/infrastructure/logging"
	"github.com/Esamwell/mthubv2/internal/infrastructure/persistence/postgres"
	"github.com/Esamwell/mthubv2/internal/services"
)

// @title MTHub API
// @version 1.0
// @description API de gestão de solicitações, usuários e orçamentos do MTHub.
// @BasePath /api
func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting mthub backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Migrar schema e semear categorias
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	solicitacaoRepo := postgres.NewSolicitacaoRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	categoriaRepo := postgres.NewCategoriaRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Hub de eventos em tempo real
	hub := ws.NewHub(logger)
	go hub.Run()

	// Inicializar services
	solicitacaoService := services.NewSolicitacaoService(solicitacaoRepo, hub, logger)
	profileService := services.NewProfileService(profileRepo, uow, logger)
	categoriaService := services.NewCategoriaService(categoriaRepo)
	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	orcamentoService := services.NewOrcamentoService(logger)

	// Inicializar handlers
	router := httphandlers.NewRouter(httphandlers.RouterDeps{
		Config:      cfg,
		I18nService: i18nService,
		Auth:        middleware.NewAuthMiddleware(tokenService),
		Solicitacao: httphandlers.NewSolicitacaoHandler(solicitacaoService, logger),
		Profile:     httphandlers.NewProfileHandler(profileService, logger),
		Login:       httphandlers.NewAuthHandler(profileService, tokenService, logger),
		Categoria:   httphandlers.NewCategoriaHandler(categoriaService, logger),
		Orcamento:   httphandlers.NewOrcamentoHandler(orcamentoService, logger),
		Hub:         hub,
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

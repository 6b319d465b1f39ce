package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Esamwell/mthubv2/internal/domain/ports"
	"github.com/Esamwell/mthubv2/internal/infrastructure/config"
)

// NewDatabaseConnection cria uma nova conexão com o PostgreSQL
func NewDatabaseConnection(cfg *config.DatabaseConfig, log ports.Logger) (*gorm.DB, error) {
	// GORM config
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Violações de constraint viram gorm.ErrDuplicatedKey /
		// gorm.ErrForeignKeyViolated, mapeadas para a taxonomia de domínio.
		TranslateError: true,
		PrepareStmt:    false,
	}

	// Conectar
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configurar connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MinConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxIdleTime) * time.Second)

	// Ping para verificar conexão
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected successfully",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DBName,
	)

	return db, nil
}

// Migrate cria/atualiza o schema e garante o catálogo de categorias
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&ProfileModel{},
		&CategoriaModel{},
		&SolicitacaoModel{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return seedCategorias(db)
}

var categoriasPadrao = []string{
	"Audiovisual",
	"Design Gráfico",
	"Social Media",
	"Estratégia",
}

func seedCategorias(db *gorm.DB) error {
	for _, nome := range categoriasPadrao {
		var existing CategoriaModel
		err := db.Where("nome = ?", nome).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		cat := CategoriaModel{ID: uuid.NewString(), Nome: nome}
		if err := db.Create(&cat).Error; err != nil {
			return err
		}
	}
	return nil
}

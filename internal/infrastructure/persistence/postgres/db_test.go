package postgres

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB abre um banco SQLite em memória isolado por teste, com o
// mesmo schema e a mesma tradução de erros da conexão PostgreSQL real.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s-%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// seedProfile insere um perfil direto no banco e retorna o id
func seedProfile(t *testing.T, db *gorm.DB, nome, email string) string {
	t.Helper()

	model := ProfileModel{
		ID:        uuid.NewString(),
		Nome:      nome,
		Email:     email,
		SenhaHash: "$2a$10$hash-de-teste",
		UserType:  "cliente",
		Status:    "ativo",
		CreatedAt: time.Now().UTC().Unix(),
		UpdatedAt: time.Now().UTC().Unix(),
	}
	if err := db.Create(&model).Error; err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	return model.ID
}

// firstCategoriaID retorna o id de uma categoria semeada pela migração
func firstCategoriaID(t *testing.T, db *gorm.DB) string {
	t.Helper()

	var categoria CategoriaModel
	if err := db.Order("nome ASC").First(&categoria).Error; err != nil {
		t.Fatalf("failed to load seeded categoria: %v", err)
	}
	return categoria.ID
}

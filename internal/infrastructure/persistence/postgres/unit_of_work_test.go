package postgres

import (
	"context"
	"errors"
	"testing"
)

func TestUnitOfWork_WithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commit persiste as escritas", func(t *testing.T) {
		db := setupTestDB(t)
		uow := NewUnitOfWork(db)
		repo := NewProfileRepository(db)

		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			return repo.Create(txCtx, novoProfile(t, "Maria Silva", "maria@example.com"))
		})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		found, err := repo.FindByEmail(ctx, "maria@example.com")
		if err != nil {
			t.Fatalf("falha ao buscar: %v", err)
		}
		if found == nil {
			t.Error("escrita transacionada não foi persistida")
		}
	})

	t.Run("erro na função desfaz as escritas", func(t *testing.T) {
		db := setupTestDB(t)
		uow := NewUnitOfWork(db)
		repo := NewProfileRepository(db)

		sentinel := errors.New("falha proposital")
		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := repo.Create(txCtx, novoProfile(t, "Maria Silva", "maria@example.com")); err != nil {
				return err
			}
			return sentinel
		})
		if !errors.Is(err, sentinel) {
			t.Fatalf("esperava o erro propagado, obteve %v", err)
		}

		found, err := repo.FindByEmail(ctx, "maria@example.com")
		if err != nil {
			t.Fatalf("falha ao buscar: %v", err)
		}
		if found != nil {
			t.Error("escrita deveria ter sido desfeita pelo rollback")
		}
	})
}

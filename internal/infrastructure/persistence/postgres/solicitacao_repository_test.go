package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
)

func novaSolicitacao(clienteID, categoriaID string) *entities.Solicitacao {
	return &entities.Solicitacao{
		Titulo:      "Vídeo institucional",
		CategoriaID: categoriaID,
		ClienteID:   clienteID,
		Prioridade:  entities.PrioridadeMedia,
		Status:      entities.StatusPendente,
	}
}

func TestSolicitacaoRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSolicitacaoRepository(db)
	ctx := context.Background()

	clienteID := seedProfile(t, db, "Maria Silva", "maria@example.com")
	categoriaID := firstCategoriaID(t, db)

	s := novaSolicitacao(clienteID, categoriaID)
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("falha ao criar: %v", err)
	}
	if s.ID == "" {
		t.Fatal("esperava ID gerado na criação")
	}

	t.Run("leitura resolve nomes de cliente e categoria", func(t *testing.T) {
		found, err := repo.FindByID(ctx, s.ID)
		if err != nil {
			t.Fatalf("falha ao buscar: %v", err)
		}
		if found == nil {
			t.Fatal("solicitação não encontrada")
		}

		if found.ClienteNome != "Maria Silva" {
			t.Errorf("esperava cliente 'Maria Silva', obteve '%s'", found.ClienteNome)
		}
		if found.CategoriaNome == "" {
			t.Error("esperava nome de categoria resolvido")
		}
	})

	t.Run("id inexistente retorna nil sem erro", func(t *testing.T) {
		found, err := repo.FindByID(ctx, "nao-existe")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if found != nil {
			t.Error("esperava nil para id inexistente")
		}
	})
}

func TestSolicitacaoRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSolicitacaoRepository(db)
	ctx := context.Background()

	clienteID := seedProfile(t, db, "Maria Silva", "maria@example.com")
	categoriaID := firstCategoriaID(t, db)

	s := novaSolicitacao(clienteID, categoriaID)
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("falha ao criar: %v", err)
	}

	t.Run("substitui campos e reporta linha afetada", func(t *testing.T) {
		s.Titulo = "Vídeo revisado"
		s.Status = entities.StatusEmAndamento

		updated, err := repo.Update(ctx, s)
		if err != nil {
			t.Fatalf("falha ao atualizar: %v", err)
		}
		if !updated {
			t.Fatal("esperava linha afetada")
		}

		found, err := repo.FindByID(ctx, s.ID)
		if err != nil {
			t.Fatalf("falha ao buscar: %v", err)
		}
		if found.Titulo != "Vídeo revisado" || found.Status != entities.StatusEmAndamento {
			t.Errorf("atualização não persistiu: %+v", found)
		}
	})

	t.Run("data_conclusao nula não limpa o carimbo", func(t *testing.T) {
		carimbo := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
		s.Status = entities.StatusConcluida
		s.DataConclusao = &carimbo
		if _, err := repo.Update(ctx, s); err != nil {
			t.Fatalf("falha ao concluir: %v", err)
		}

		s.Status = entities.StatusEmAndamento
		s.DataConclusao = nil
		if _, err := repo.Update(ctx, s); err != nil {
			t.Fatalf("falha ao reabrir: %v", err)
		}

		found, err := repo.FindByID(ctx, s.ID)
		if err != nil {
			t.Fatalf("falha ao buscar: %v", err)
		}
		if found.DataConclusao == nil || !found.DataConclusao.Equal(carimbo) {
			t.Errorf("carimbo de conclusão foi perdido: %v", found.DataConclusao)
		}
	})

	t.Run("id inexistente reporta zero linhas", func(t *testing.T) {
		ghost := novaSolicitacao(clienteID, categoriaID)
		ghost.ID = "nao-existe"

		updated, err := repo.Update(ctx, ghost)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if updated {
			t.Error("esperava zero linhas afetadas")
		}
	})
}

func TestSolicitacaoRepository_ListByPrazoRange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSolicitacaoRepository(db)
	ctx := context.Background()

	clienteID := seedProfile(t, db, "Maria Silva", "maria@example.com")
	categoriaID := firstCategoriaID(t, db)

	criaComPrazo := func(titulo string, prazo time.Time) {
		s := novaSolicitacao(clienteID, categoriaID)
		s.Titulo = titulo
		s.DataPrazo = &prazo
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("falha ao criar '%s': %v", titulo, err)
		}
	}

	criaComPrazo("fim de julho", time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC))
	criaComPrazo("início de julho", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	criaComPrazo("agosto", time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC))
	if err := repo.Create(ctx, novaSolicitacao(clienteID, categoriaID)); err != nil {
		t.Fatalf("falha ao criar sem prazo: %v", err)
	}

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 23, 59, 59, 0, time.UTC)

	result, err := repo.ListByPrazoRange(ctx, start, end)
	if err != nil {
		t.Fatalf("falha ao listar por prazo: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("esperava 2 solicitações, obteve %d", len(result))
	}
	if result[0].Titulo != "início de julho" || result[1].Titulo != "fim de julho" {
		t.Errorf("ordem por prazo incorreta: %s, %s", result[0].Titulo, result[1].Titulo)
	}
}

func TestSolicitacaoRepository_DeleteAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSolicitacaoRepository(db)
	ctx := context.Background()

	clienteID := seedProfile(t, db, "Maria Silva", "maria@example.com")
	categoriaID := firstCategoriaID(t, db)

	s := novaSolicitacao(clienteID, categoriaID)
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("falha ao criar: %v", err)
	}

	andamento := novaSolicitacao(clienteID, categoriaID)
	andamento.Status = entities.StatusEmAndamento
	if err := repo.Create(ctx, andamento); err != nil {
		t.Fatalf("falha ao criar: %v", err)
	}

	t.Run("conta por status", func(t *testing.T) {
		count, err := repo.CountByStatus(ctx, entities.StatusPendente)
		if err != nil {
			t.Fatalf("falha ao contar: %v", err)
		}
		if count != 1 {
			t.Errorf("esperava 1 pendente, obteve %d", count)
		}
	})

	t.Run("remove e reporta linha afetada", func(t *testing.T) {
		removed, err := repo.Delete(ctx, s.ID)
		if err != nil {
			t.Fatalf("falha ao remover: %v", err)
		}
		if !removed {
			t.Fatal("esperava linha removida")
		}

		removed, err = repo.Delete(ctx, s.ID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if removed {
			t.Error("segunda remoção deveria reportar zero linhas")
		}
	})
}

func TestSolicitacaoRepository_ListRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSolicitacaoRepository(db)
	ctx := context.Background()

	clienteID := seedProfile(t, db, "Maria Silva", "maria@example.com")
	categoriaID := firstCategoriaID(t, db)

	for i := 0; i < 7; i++ {
		if err := repo.Create(ctx, novaSolicitacao(clienteID, categoriaID)); err != nil {
			t.Fatalf("falha ao criar: %v", err)
		}
	}

	result, err := repo.ListRecent(ctx, 5)
	if err != nil {
		t.Fatalf("falha ao listar recentes: %v", err)
	}
	if len(result) != 5 {
		t.Errorf("esperava 5 solicitações, obteve %d", len(result))
	}
}

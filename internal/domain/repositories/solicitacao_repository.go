package repositories

import (
	"context"
	"time"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
)

// SolicitacaoRepository define a interface para persistência de solicitações.
// Todas as leituras retornam a solicitação com os nomes de cliente e
// categoria já resolvidos (join raso, para exibição).
type SolicitacaoRepository interface {
	Create(ctx context.Context, solicitacao *entities.Solicitacao) error
	FindByID(ctx context.Context, id string) (*entities.Solicitacao, error)
	List(ctx context.Context) ([]*entities.Solicitacao, error)
	// ListRecent retorna as n solicitações mais recentes, por created_at decrescente.
	ListRecent(ctx context.Context, limit int) ([]*entities.Solicitacao, error)
	// ListByPrazoRange retorna solicitações com data_prazo em [start, end],
	// ordenadas por data_prazo crescente.
	ListByPrazoRange(ctx context.Context, start, end time.Time) ([]*entities.Solicitacao, error)
	// Update substitui os campos mutáveis. Retorna false quando nenhuma linha
	// foi afetada (id inexistente). DataConclusao nula deixa a coluna intacta.
	Update(ctx context.Context, solicitacao *entities.Solicitacao) (bool, error)
	// Delete remove fisicamente a linha. Retorna false quando já não existia.
	Delete(ctx context.Context, id string) (bool, error)
	CountByStatus(ctx context.Context, status entities.StatusSolicitacao) (int64, error)
}

package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Esamwell/mthubv2/internal/domain/entities"
	"github.com/Esamwell/mthubv2/internal/domain/ports"
)

// noopLogger descarta tudo; os testes asseguram comportamento, não logs
type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}
func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (noopLogger) With(args ...any) ports.Logger { return noopLogger{} }

// fakeUnitOfWork executa a função diretamente, sem transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(ctx context.Context) error                   { return nil }
func (fakeUnitOfWork) Rollback(ctx context.Context) error                 { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// capturingPublisher acumula os eventos publicados
type capturingPublisher struct {
	events []any
}

func (p *capturingPublisher) Publish(event any) {
	p.events = append(p.events, event)
}

// fakeSolicitacaoRepo guarda solicitações em memória
type fakeSolicitacaoRepo struct {
	items map[string]*entities.Solicitacao
	err   error
}

func newFakeSolicitacaoRepo() *fakeSolicitacaoRepo {
	return &fakeSolicitacaoRepo{items: make(map[string]*entities.Solicitacao)}
}

func (r *fakeSolicitacaoRepo) Create(ctx context.Context, s *entities.Solicitacao) error {
	if r.err != nil {
		return r.err
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	clone := *s
	r.items[s.ID] = &clone
	return nil
}

func (r *fakeSolicitacaoRepo) FindByID(ctx context.Context, id string) (*entities.Solicitacao, error) {
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *fakeSolicitacaoRepo) List(ctx context.Context) ([]*entities.Solicitacao, error) {
	if r.err != nil {
		return nil, r.err
	}
	result := make([]*entities.Solicitacao, 0, len(r.items))
	for _, s := range r.items {
		clone := *s
		result = append(result, &clone)
	}
	return result, nil
}

func (r *fakeSolicitacaoRepo) ListRecent(ctx context.Context, limit int) ([]*entities.Solicitacao, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeSolicitacaoRepo) ListByPrazoRange(ctx context.Context, start, end time.Time) ([]*entities.Solicitacao, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []*entities.Solicitacao
	for _, s := range r.items {
		if s.DataPrazo == nil || s.DataPrazo.Before(start) || s.DataPrazo.After(end) {
			continue
		}
		clone := *s
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DataPrazo.Before(*result[j].DataPrazo) })
	return result, nil
}

func (r *fakeSolicitacaoRepo) Update(ctx context.Context, s *entities.Solicitacao) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	stored, ok := r.items[s.ID]
	if !ok {
		return false, nil
	}
	stored.Titulo = s.Titulo
	stored.CategoriaID = s.CategoriaID
	stored.ClienteID = s.ClienteID
	stored.Prioridade = s.Prioridade
	stored.Status = s.Status
	stored.DataPrazo = s.DataPrazo
	stored.Descricao = s.Descricao
	if s.DataConclusao != nil {
		stored.DataConclusao = s.DataConclusao
	}
	stored.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *fakeSolicitacaoRepo) Delete(ctx context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *fakeSolicitacaoRepo) CountByStatus(ctx context.Context, status entities.StatusSolicitacao) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var count int64
	for _, s := range r.items {
		if s.Status == status {
			count++
		}
	}
	return count, nil
}

// fakeProfileRepo guarda perfis em memória, indexados por id e email
type fakeProfileRepo struct {
	items map[string]*entities.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{items: make(map[string]*entities.Profile)}
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *entities.Profile) error {
	clone := *p
	r.items[p.ID] = &clone
	return nil
}

func (r *fakeProfileRepo) FindByID(ctx context.Context, id string) (*entities.Profile, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProfileRepo) FindByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	for _, p := range r.items {
		if p.Email.String() == email {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) List(ctx context.Context) ([]*entities.Profile, error) {
	result := make([]*entities.Profile, 0, len(r.items))
	for _, p := range r.items {
		clone := *p
		result = append(result, &clone)
	}
	return result, nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, p *entities.Profile) (bool, error) {
	stored, ok := r.items[p.ID]
	if !ok {
		return false, nil
	}
	stored.Nome = p.Nome
	stored.Email = p.Email
	stored.Empresa = p.Empresa
	stored.Telefone = p.Telefone
	stored.Status = p.Status
	stored.UserType = p.UserType
	return true, nil
}

func (r *fakeProfileRepo) UpdateSenhaHash(ctx context.Context, id, hash string) (bool, error) {
	stored, ok := r.items[id]
	if !ok {
		return false, nil
	}
	stored.SenhaHash = hash
	return true, nil
}

func (r *fakeProfileRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *fakeProfileRepo) CountByUserType(ctx context.Context, userType entities.TipoUsuario) (int64, error) {
	var count int64
	for _, p := range r.items {
		if p.UserType == userType {
			count++
		}
	}
	return count, nil
}

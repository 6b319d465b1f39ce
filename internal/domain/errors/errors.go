package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrSolicitacaoNotFound  = errors.New("error.solicitacao_not_found")
	ErrUsuarioNotFound      = errors.New("error.usuario_not_found")
	ErrCategoriaNotFound    = errors.New("error.categoria_not_found")
	ErrEmailAlreadyExists   = errors.New("error.email_already_exists")
	ErrSenhaIncorreta       = errors.New("error.senha_incorreta")
	ErrSenhaAtualIncorreta  = errors.New("error.senha_atual_incorreta")
	ErrUnauthorized         = errors.New("error.unauthorized")
	ErrReferenciaInvalida   = errors.New("error.referencia_invalida")
	ErrMesAnoObrigatorios   = errors.New("error.mes_ano_obrigatorios")
	ErrDataInvalida         = errors.New("error.data_invalida")
	ErrCamposObrigatorios   = errors.New("error.campos_obrigatorios")
	ErrStatusInvalido       = errors.New("error.status_invalido")
	ErrPrioridadeInvalida   = errors.New("error.prioridade_invalida")
	ErrOrcamentoSemServicos = errors.New("error.orcamento_sem_servicos")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation       = "/problems/validation-error"
	ProblemTypeNotFound         = "/problems/not-found"
	ProblemTypeConflict         = "/problems/conflict"
	ProblemTypeUnauthorized     = "/problems/unauthorized"
	ProblemTypeMethodNotAllowed = "/problems/method-not-allowed"
	ProblemTypeInternal         = "/problems/internal-error"
	ProblemTypeBadRequest       = "/problems/bad-request"
)

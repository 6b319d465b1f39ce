package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Esamwell/mthubv2/internal/domain/errors"
	"github.com/Esamwell/mthubv2/internal/domain/ports"
	"github.com/Esamwell/mthubv2/internal/handlers/dto"
)

// respondDomainError traduz um erro de domínio para a taxonomia HTTP.
// Erros de storage não mapeados nunca vazam: viram um problema 500
// genérico e o detalhe fica apenas no log.
func respondDomainError(c *gin.Context, logger ports.Logger, err error) {
	switch {
	case errs.Is(err, errors.ErrSolicitacaoNotFound),
		errs.Is(err, errors.ErrUsuarioNotFound),
		errs.Is(err, errors.ErrCategoriaNotFound):
		c.JSON(http.StatusNotFound, dto.NotFoundProblemI18n(c, err.Error()))

	case errs.Is(err, errors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.ConflictProblemI18n(c, err.Error()))

	case errs.Is(err, errors.ErrSenhaIncorreta),
		errs.Is(err, errors.ErrSenhaAtualIncorreta),
		errs.Is(err, errors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedProblemI18n(c, err.Error()))

	case errs.Is(err, errors.ErrStatusInvalido),
		errs.Is(err, errors.ErrPrioridadeInvalida),
		errs.Is(err, errors.ErrDataInvalida),
		errs.Is(err, errors.ErrMesAnoObrigatorios),
		errs.Is(err, errors.ErrCamposObrigatorios),
		errs.Is(err, errors.ErrInvalidEmail),
		errs.Is(err, errors.ErrReferenciaInvalida),
		errs.Is(err, errors.ErrOrcamentoSemServicos):
		c.JSON(http.StatusBadRequest, dto.BadRequestProblemI18n(c, err.Error()))

	default:
		logger.Error("unexpected error", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalProblemI18n(c))
	}
}

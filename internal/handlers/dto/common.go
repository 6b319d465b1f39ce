package dto

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	domainerrors "github.com/Esamwell/mthubv2/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs),
// estendido com a lista de erros de validação por campo
type ErrorResponse struct {
	problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
	Param   string `json:"param,omitempty"`
}

// NewProblemI18n cria uma resposta de erro RFC 7807 com título e
// detalhe traduzidos pelo serviço de i18n do contexto
func NewProblemI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return ErrorResponse{
		DefaultProblem: problems.DefaultProblem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
	}
}

// ValidationProblemI18n cria uma resposta 400 com os erros de binding
func ValidationProblemI18n(c *gin.Context, err error) ErrorResponse {
	response := NewProblemI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		400,
	)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			response.Errors = append(response.Errors, ValidationError{
				Field:   fe.Field(),
				Message: fe.Tag(),
				Tag:     fe.Tag(),
				Param:   fe.Param(),
			})
		}
	}
	return response
}

// NotFoundProblemI18n cria uma resposta 404
func NotFoundProblemI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewProblemI18n(c, domainerrors.ProblemTypeNotFound, "error.not_found.title", detailKey, 404)
}

// BadRequestProblemI18n cria uma resposta 400
func BadRequestProblemI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewProblemI18n(c, domainerrors.ProblemTypeBadRequest, "error.bad_request.title", detailKey, 400)
}

// ConflictProblemI18n cria uma resposta 409
func ConflictProblemI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewProblemI18n(c, domainerrors.ProblemTypeConflict, "error.conflict.title", detailKey, 409)
}

// UnauthorizedProblemI18n cria uma resposta 401
func UnauthorizedProblemI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewProblemI18n(c, domainerrors.ProblemTypeUnauthorized, "error.unauthorized.title", detailKey, 401)
}

// MethodNotAllowedProblemI18n cria uma resposta 405
func MethodNotAllowedProblemI18n(c *gin.Context) ErrorResponse {
	return NewProblemI18n(c, domainerrors.ProblemTypeMethodNotAllowed, "error.method_not_allowed.title", "error.method_not_allowed.detail", 405)
}

// InternalProblemI18n cria uma resposta 500
func InternalProblemI18n(c *gin.Context) ErrorResponse {
	return NewProblemI18n(c, domainerrors.ProblemTypeInternal, "error.internal.title", "error.internal.detail", 500)
}

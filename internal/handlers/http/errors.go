package http

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/handlers/dto"
)

// statusFor classifica um erro de domínio em status HTTP e tipo de problema
func statusFor(err error) (int, string, string) {
	switch {
	case stderrors.Is(err, errors.ErrAuthenticationRequired),
		stderrors.Is(err, errors.ErrInvalidCredentials):
		return http.StatusUnauthorized, errors.ProblemTypeUnauthorized, "error.unauthorized.title"

	case stderrors.Is(err, errors.ErrAdminRequired),
		stderrors.Is(err, errors.ErrForbidden):
		return http.StatusForbidden, errors.ProblemTypeForbidden, "error.forbidden.title"

	case stderrors.Is(err, errors.ErrProfileNotFound),
		stderrors.Is(err, errors.ErrBrandNotFound),
		stderrors.Is(err, errors.ErrTagNotFound),
		stderrors.Is(err, errors.ErrItemNotFound):
		return http.StatusNotFound, errors.ProblemTypeNotFound, "error.not_found.title"

	case stderrors.Is(err, errors.ErrEmailAlreadyExists),
		stderrors.Is(err, errors.ErrUsernameAlreadyExists),
		stderrors.Is(err, errors.ErrBrandAlreadyExists),
		stderrors.Is(err, errors.ErrItemAlreadyExists):
		return http.StatusConflict, errors.ProblemTypeConflict, "error.conflict.title"

	case errors.IsValidation(err):
		return http.StatusBadRequest, errors.ProblemTypeValidation, "error.validation.title"

	case stderrors.Is(err, errors.ErrInvalidResetToken),
		stderrors.Is(err, errors.ErrUnknownOAuthProvider),
		stderrors.Is(err, errors.ErrOAuthExchangeFailed):
		return http.StatusBadRequest, errors.ProblemTypeBadRequest, "error.validation.title"

	case stderrors.Is(err, errors.ErrRateLimited):
		return http.StatusTooManyRequests, errors.ProblemTypeRateLimited, "error.rate_limited.title"
	}

	return http.StatusInternalServerError, errors.ProblemTypeInternal, "error.internal.title"
}

// errorMessage traduz o erro; falhas internas viram a mensagem genérica
func errorMessage(c *gin.Context, err error) string {
	var exists *errors.BrandExistsError
	if stderrors.As(err, &exists) {
		return dto.T(c, errors.MessageID(err), exists.Params())
	}
	return dto.T(c, errors.MessageID(err))
}

// respondError escreve um problema RFC 7807 para endpoints de recurso
func respondError(c *gin.Context, logger ports.Logger, err error) {
	status, problemType, titleKey := statusFor(err)

	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err.Error(),
		)
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	dto.WriteProblem(c, dto.NewErrorResponse(c, problemType, dto.T(c, titleKey), status, errorMessage(c, err)))
}

// respondActionError escreve {success: false, error} para endpoints de ação
func respondActionError(c *gin.Context, logger ports.Logger, err error) {
	status, _, _ := statusFor(err)

	if status == http.StatusInternalServerError {
		logger.Error("action failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err.Error(),
		)
	}

	c.JSON(status, dto.ActionResult{Success: false, Error: errorMessage(c, err)})
}

// respondBindingError escreve o problema de validação com os campos inválidos
func respondBindingError(c *gin.Context, err error) {
	dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(c, err)))
}

// respondActionBindingError é a versão de ação de respondBindingError
func respondActionBindingError(c *gin.Context, err error) {
	msg := dto.T(c, "error.validation.detail")
	if fields := dto.BindingErrors(c, err); len(fields) > 0 {
		msg = fields[0].Message
	}
	c.JSON(http.StatusBadRequest, dto.ActionResult{Success: false, Error: msg})
}

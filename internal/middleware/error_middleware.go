package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindsethq/mindset-backend/internal/app/models/dto"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
	"github.com/mindsethq/mindset-backend/internal/pkg/logger"
)

// HandleAPIError translates application errors into the standard error
// envelope. Unknown errors are logged and answered with a generic 500
// so internals never leak to clients.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.Message(err, "Resource not found")))

	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, apperrors.Message(err, "Resource already exists")))

	case errors.Is(err, apperrors.ErrRestrictedDelete):
		respondError(c, http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeResourceInUse, apperrors.Message(err, "Resource is still referenced and cannot be deleted")))

	case errors.Is(err, apperrors.ErrReferenceNotFound):
		respondError(c, http.StatusUnprocessableEntity,
			withFieldOf(err, dto.NewErrorDetail(dto.ErrorCodeInvalidReference, apperrors.Message(err, "Referenced resource does not exist"))))

	case errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, http.StatusUnprocessableEntity,
			withFieldOf(err, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, apperrors.Message(err, "Validation failed"))))

	case errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, apperrors.Message(err, "Bad request")))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"))

	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"))

	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized,
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"))

	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error in request")
		respondError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

func respondError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}

// withFieldOf copies the offending field name out of a CustomError
func withFieldOf(err error, detail *dto.ErrorDetail) *dto.ErrorDetail {
	var ce *apperrors.CustomError
	if errors.As(err, &ce) && ce.Field != "" {
		detail = detail.WithField(ce.Field)
	}
	return detail
}

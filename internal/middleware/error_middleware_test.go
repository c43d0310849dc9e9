package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

func serveError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		HandleAPIError(c, err)
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return rec
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", apperrors.NewResourceNotFoundError("course not found"), http.StatusNotFound, "RES_001"},
		{"conflict", apperrors.NewConflictError("email already exists"), http.StatusConflict, "RES_002"},
		{"restricted delete", apperrors.NewRestrictedDeleteError("status is still referenced"), http.StatusConflict, "RES_003"},
		{"dangling reference", apperrors.NewReferenceError("venue does not exist"), http.StatusUnprocessableEntity, "VAL_002"},
		{"validation", apperrors.NewValidationError("title cannot be empty"), http.StatusUnprocessableEntity, "VAL_001"},
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest, "VAL_001"},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "AUTH_001"},
		{"unknown error", errors.New("pq: connection reset"), http.StatusInternalServerError, "SRV_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveError(tt.err)
			require.Equal(t, tt.status, rec.Code)
			require.Contains(t, rec.Body.String(), tt.code)
		})
	}
}

func TestHandleAPIError_FieldPropagated(t *testing.T) {
	rec := serveError(apperrors.NewFieldValidationError("capacity must be greater than zero", "capacity"))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), `"field":"capacity"`)
}

// Internal failure details never reach the response body.
func TestHandleAPIError_InternalsHidden(t *testing.T) {
	rec := serveError(errors.New("dial tcp 10.0.0.5:5432 refused"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "10.0.0.5")
	require.Contains(t, rec.Body.String(), "Internal server error")
}

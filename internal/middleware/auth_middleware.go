package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/models/dto"
	"github.com/mindsethq/mindset-backend/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextAdminID    = "adminID"
	ContextAdminEmail = "adminEmail"
)

// AdminLookup resolves admin accounts for token validation
type AdminLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
}

// AuthMiddleware guards the admin surface with bearer token auth
type AuthMiddleware struct {
	jwtService *auth.JWTService
	admins     AdminLookup
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, admins AdminLookup) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		admins:     admins,
	}
}

// RequireAdmin validates the bearer token and checks that the admin
// account behind it still exists and is active. A token outliving its
// account or a deactivation is rejected.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Invalid authorization header")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrorCodeExpiredToken
				message = "Token expired"
			}
			abortUnauthorized(c, code, message)
			return
		}

		admin, err := m.admins.GetByID(c.Request.Context(), claims.AdminID)
		if err != nil || !admin.IsActive {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Account is not available")
			return
		}

		c.Set(ContextAdminID, admin.ID)
		c.Set(ContextAdminEmail, admin.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

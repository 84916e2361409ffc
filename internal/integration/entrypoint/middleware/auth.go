// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/contacomigo/backend/internal/application/usecase/auth"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
	"github.com/contacomigo/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// SessionIDKey is the context key for the authenticated session id.
	SessionIDKey ContextKey = "session_id"
	// UserEmailKey is the context key for the authenticated user's email.
	UserEmailKey ContextKey = "user_email"
)

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	authorizeUseCase *auth.AuthorizeUseCase
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(authorizeUseCase *auth.AuthorizeUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authorizeUseCase: authorizeUseCase,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication
// against the active session.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required", domainerror.ErrCodeMissingToken)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Invalid authorization header format", domainerror.ErrCodeInvalidToken)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			abortUnauthorized(c, "Token is required", domainerror.ErrCodeMissingToken)
			return
		}

		output, err := m.authorizeUseCase.Execute(c.Request.Context(), auth.AuthorizeInput{AccessToken: token})
		if err != nil {
			var authErr *domainerror.AuthError
			if errors.As(err, &authErr) {
				abortUnauthorized(c, authErr.Message, authErr.Code)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Failed to validate session",
			})
			return
		}

		c.Set(string(SessionIDKey), output.SessionID)
		c.Set(string(UserEmailKey), output.Email)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string, code domainerror.AuthErrorCode) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

// GetSessionIDFromContext extracts the session id from the Gin context.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	id, exists := c.Get(string(SessionIDKey))
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok
}

// GetUserEmailFromContext extracts the user email from the Gin context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(UserEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}

package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contacomigo/backend/internal/application/usecase/profile"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
	"github.com/contacomigo/backend/internal/integration/entrypoint/dto"
)

// RequireProfile rejects requests until the profile setup was completed.
// It must run after Authenticate.
func RequireProfile(getProfileUseCase *profile.GetProfileUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := getProfileUseCase.Execute(c.Request.Context())
		if err == nil {
			c.Next()
			return
		}

		var prfErr *domainerror.ProfileError
		if errors.As(err, &prfErr) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Error: prfErr.Message,
				Code:  string(prfErr.Code),
			})
			return
		}

		slog.Error("Failed to check profile", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

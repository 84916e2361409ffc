package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/contacomigo/backend/internal/application/usecase/profile"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
	"github.com/contacomigo/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles profile setup and the avatar catalog.
type ProfileController struct {
	setupUseCase       *profile.SetupProfileUseCase
	getUseCase         *profile.GetProfileUseCase
	listAvatarsUseCase *profile.ListAvatarsUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	setupUseCase *profile.SetupProfileUseCase,
	getUseCase *profile.GetProfileUseCase,
	listAvatarsUseCase *profile.ListAvatarsUseCase,
) *ProfileController {
	return &ProfileController{
		setupUseCase:       setupUseCase,
		getUseCase:         getUseCase,
		listAvatarsUseCase: listAvatarsUseCase,
	}
}

// Setup handles POST /profile/setup requests.
func (c *ProfileController) Setup(ctx *gin.Context) {
	var req dto.SetupProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		code := string(domainerror.ErrCodeMissingFields)
		message := "Invalid request body"

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "Handle" && fe.Tag() == "handle" {
					code = string(domainerror.ErrCodeInvalidHandle)
					message = "handle must be 3 to 20 letters, numbers or underscores"
				}
			}
		}
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message, Code: code})
		return
	}

	output, err := c.setupUseCase.Execute(ctx.Request.Context(), profile.SetupProfileInput{
		Handle:   req.Handle,
		AvatarID: req.AvatarID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output))
}

// Get handles GET /profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output))
}

// ListAvatars handles GET /avatars requests.
func (c *ProfileController) ListAvatars(ctx *gin.Context) {
	output, err := c.listAvatarsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAvatarListResponse(output))
}

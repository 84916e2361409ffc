package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contacomigo/backend/internal/application/usecase/progress"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
	"github.com/contacomigo/backend/internal/integration/entrypoint/dto"
)

// ProgressController handles the /me endpoints.
type ProgressController struct {
	overviewUseCase   *progress.GetOverviewUseCase
	updateNameUseCase *progress.UpdateNameUseCase
}

// NewProgressController creates a new progress controller instance.
func NewProgressController(
	overviewUseCase *progress.GetOverviewUseCase,
	updateNameUseCase *progress.UpdateNameUseCase,
) *ProgressController {
	return &ProgressController{
		overviewUseCase:   overviewUseCase,
		updateNameUseCase: updateNameUseCase,
	}
}

// Get handles GET /me requests.
func (c *ProgressController) Get(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// UpdateName handles PATCH /me requests.
func (c *ProgressController) UpdateName(ctx *gin.Context) {
	var req dto.UpdateNameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidName),
		})
		return
	}

	output, err := c.updateNameUseCase.Execute(ctx.Request.Context(), progress.UpdateNameInput{Name: req.Name})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

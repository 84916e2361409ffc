package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contacomigo/backend/internal/application/usecase/mission"
	"github.com/contacomigo/backend/internal/integration/entrypoint/dto"
)

// MissionController handles mission endpoints.
type MissionController struct {
	listUseCase       *mission.ListMissionsUseCase
	completeUseCase   *mission.CompleteMissionUseCase
	resetDailyUseCase *mission.ResetDailyMissionsUseCase
}

// NewMissionController creates a new mission controller instance.
func NewMissionController(
	listUseCase *mission.ListMissionsUseCase,
	completeUseCase *mission.CompleteMissionUseCase,
	resetDailyUseCase *mission.ResetDailyMissionsUseCase,
) *MissionController {
	return &MissionController{
		listUseCase:       listUseCase,
		completeUseCase:   completeUseCase,
		resetDailyUseCase: resetDailyUseCase,
	}
}

// List handles GET /missions requests.
func (c *MissionController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMissionListResponse(output))
}

// Complete handles POST /missions/:id/complete requests.
// Locked, completed and unknown missions answer 200 with changed false.
func (c *MissionController) Complete(ctx *gin.Context) {
	output, err := c.completeUseCase.Execute(ctx.Request.Context(), mission.CompleteMissionInput{
		MissionID: ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompleteMissionResponse(output))
}

// ResetDaily handles POST /missions/reset-daily requests.
func (c *MissionController) ResetDaily(ctx *gin.Context) {
	output, err := c.resetDailyUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChangedResponse{Changed: output.Changed})
}

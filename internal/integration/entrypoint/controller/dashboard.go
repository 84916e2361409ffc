package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contacomigo/backend/internal/application/usecase/dashboard"
	"github.com/contacomigo/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetSummaryUseCase
	tipUseCase     *dashboard.GetTipUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(summaryUseCase *dashboard.GetSummaryUseCase, tipUseCase *dashboard.GetTipUseCase) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
		tipUseCase:     tipUseCase,
	}
}

// Summary handles GET /dashboard requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// Tip handles GET /dashboard/tip requests. It always answers with a tip.
func (c *DashboardController) Tip(ctx *gin.Context) {
	output, err := c.tipUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTipResponse(output))
}

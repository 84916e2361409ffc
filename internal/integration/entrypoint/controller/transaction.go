package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contacomigo/backend/internal/application/usecase/transaction"
	"github.com/contacomigo/backend/internal/domain/entity"
	domainerror "github.com/contacomigo/backend/internal/domain/error"
	"github.com/contacomigo/backend/internal/domain/valueobject"
	"github.com/contacomigo/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests.
// Query parameters: type (expense|income), limit.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{}

	if typeStr := ctx.Query("type"); typeStr != "" {
		t := entity.TransactionType(typeStr)
		if !t.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid type. Use 'expense' or 'income'",
				Code:  string(domainerror.ErrCodeInvalidTransactionType),
			})
			return
		}
		input.Type = t
	}

	if limitStr := ctx.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid limit",
				Code:  string(domainerror.ErrCodeMissingTransactionFields),
			})
			return
		}
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	var date valueobject.CalendarDay
	if req.Date != "" {
		d, err := valueobject.ParseCalendarDay(req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		date = d
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		Type:        entity.TransactionType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreateTransactionResponse(output))
}

// Delete handles DELETE /transactions/:id requests. Unknown ids are a no-op.
func (c *TransactionController) Delete(ctx *gin.Context) {
	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteTransactionResponse{
		Changed: output.Deleted,
		User:    dto.ToUserResponse(output.User),
	})
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/puffpay/puffpay-backend/internal/core/ports/services"
	"github.com/puffpay/puffpay-backend/internal/dto"
	"github.com/puffpay/puffpay-backend/internal/middleware"
)

// transactionHandler handles HTTP requests related to the activity feed.
type transactionHandler struct {
	activityService portssvc.ActivitySvcFacade
}

// registerTransactionRoutes registers routes related to the activity feed.
func registerTransactionRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := &transactionHandler{activityService: activityService}

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
	}
}

// listTransactions godoc
// @Summary List activity feed entries
// @Description Retrieves the wallet activity feed, newest first
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.activityService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

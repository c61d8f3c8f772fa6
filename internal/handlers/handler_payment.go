package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/puffpay/puffpay-backend/internal/core/ports/services"
	"github.com/puffpay/puffpay-backend/internal/dto"
	"github.com/puffpay/puffpay-backend/internal/middleware"
)

// paymentHandler handles HTTP requests related to the payment ledger.
type paymentHandler struct {
	activityService portssvc.ActivitySvcFacade
}

// registerPaymentRoutes registers routes related to payment records.
func registerPaymentRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := &paymentHandler{activityService: activityService}

	payments := rg.Group("/payments")
	{
		payments.GET("", h.listPayments)
	}
}

// listPayments godoc
// @Summary List payment records
// @Description Retrieves the append-only ledger of settled invoices, newest first
// @Tags payments
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	payments, err := h.activityService.ListPayments(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/puffpay/puffpay-backend/internal/apperrors"
	portssvc "github.com/puffpay/puffpay-backend/internal/core/ports/services"
	"github.com/puffpay/puffpay-backend/internal/dto"
	"github.com/puffpay/puffpay-backend/internal/middleware"
)

// walletHandler handles HTTP requests for the wallet screen: balance reads
// and outbound transfers.
type walletHandler struct {
	settlementService portssvc.SettlementSvcFacade
	balanceService    portssvc.BalanceSvcFacade
}

// registerWalletRoutes registers routes related to the wallet.
func registerWalletRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade, balanceService portssvc.BalanceSvcFacade) {
	h := &walletHandler{settlementService: settlementService, balanceService: balanceService}

	wallet := rg.Group("/wallet")
	{
		wallet.GET("/balance", h.getBalance)
		wallet.POST("/balance/refresh", h.refreshBalance)
		wallet.POST("/send", h.sendPayment)
		wallet.POST("/withdraw", h.withdraw)
		wallet.POST("/deposits", h.recordDeposit)
	}
}

// getBalance godoc
// @Summary Get the cached wallet balance
// @Description Returns the cached balance view. Never blocks on the ledger; a stale flag marks values from a failed poll.
// @Tags wallet
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/balance [get]
func (h *walletHandler) getBalance(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToBalanceResponse(h.balanceService.Snapshot()))
}

// refreshBalance godoc
// @Summary Force a balance refresh
// @Description Polls the ledger immediately instead of waiting for the next interval. Concurrent refreshes collapse into one poll.
// @Tags wallet
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/balance/refresh [post]
func (h *walletHandler) refreshBalance(c *gin.Context) {
	snap, err := h.balanceService.Refresh(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Balance refresh failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Ledger unavailable", "balance": dto.ToBalanceResponse(snap)})
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(snap))
}

// sendPayment godoc
// @Summary Send a token transfer
// @Description Submits a transfer to the ledger. Only one transfer may be outstanding at a time.
// @Tags wallet
// @Accept json
// @Produce json
// @Param payment body dto.SendPaymentRequest true "Transfer details"
// @Success 200 {object} dto.SendPaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/send [post]
func (h *walletHandler) sendPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SendPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txHash, err := h.settlementService.SendPayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrPrecision):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrAlreadyInProgress):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A transfer is already in progress"})
		default:
			logger.Error("Transfer failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Transfer failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SendPaymentResponse{TxHash: txHash})
}

// withdraw godoc
// @Summary Withdraw funds
// @Description Sends funds to an external address and records the expense in the activity feed
// @Tags wallet
// @Accept json
// @Produce json
// @Param withdrawal body dto.WithdrawRequest true "Withdrawal details"
// @Success 200 {object} dto.WithdrawResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/withdraw [post]
func (h *walletHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, txHash, err := h.settlementService.Withdraw(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrPrecision):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrAlreadyInProgress):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "A transfer is already in progress"})
		default:
			logger.Error("Withdrawal failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Withdrawal failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.WithdrawResponse{Transaction: dto.ToTransactionResponse(txn), TxHash: txHash})
}

// recordDeposit godoc
// @Summary Record an incoming deposit
// @Description Appends an income entry to the activity feed for funds received outside the app
// @Tags wallet
// @Accept json
// @Produce json
// @Param deposit body dto.RecordDepositRequest true "Deposit details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallet/deposits [post]
func (h *walletHandler) recordDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.settlementService.RecordDeposit(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to record deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record deposit"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

package services

import (
	"context"

	"github.com/puffpay/puffpay-backend/internal/dto"
)

// ReportingSvcFacade aggregates the dashboard stat cards.
type ReportingSvcFacade interface {
	// Summary computes outstanding, collected, client count and the cached
	// wallet balance in one call.
	Summary(ctx context.Context) (*dto.DashboardSummary, error)
}

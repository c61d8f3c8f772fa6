package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/puffpay/puffpay-backend/internal/core/domain"
	portsrepo "github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
	portssvc "github.com/puffpay/puffpay-backend/internal/core/ports/services"
	"github.com/puffpay/puffpay-backend/internal/dto"
	"github.com/shopspring/decimal"
)

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client management service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	now := time.Now()
	client := domain.Client{
		ClientID:  uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		TotalPaid: decimal.Zero,
		AvatarURL: req.AvatarURL,
		Color:     req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "failed to save client", slog.String("client_name", req.Name))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	s.LogInfo(ctx, "client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

func (s *clientService) ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, error) {
	return s.clientRepo.ListClients(ctx, params.Limit, params.Offset)
}

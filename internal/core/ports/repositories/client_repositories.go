package repositories

import (
	"context"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a specific client by its unique identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves a paginated list of clients, newest first.
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)

	// CountClients returns the number of clients on record.
	CountClients(ctx context.Context) (int, error)
}

// ClientWriter defines write operations for client data.
// TotalPaid is never written through this interface; it is incremented only
// by the settlement write.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client's contact details.
	UpdateClient(ctx context.Context, client domain.Client) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}

package memstore

import (
	"context"
	"fmt"

	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
)

// ClientRepository implements repositories.ClientRepositoryFacade over the
// shared store.
type ClientRepository struct {
	store *Store
}

// NewClientRepository creates a new client repository view.
func NewClientRepository(store *Store) *ClientRepository {
	return &ClientRepository{store: store}
}

var _ repositories.ClientRepositoryFacade = (*ClientRepository)(nil)

func (r *ClientRepository) FindClientByID(_ context.Context, clientID string) (*domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	client, ok := r.store.clients[clientID]
	if !ok {
		return nil, fmt.Errorf("client %s: %w", clientID, apperrors.ErrNotFound)
	}
	return &client, nil
}

func (r *ClientRepository) ListClients(_ context.Context, limit int, offset int) ([]domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := pageReversed(r.store.clientOrder, limit, offset)
	out := make([]domain.Client, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.store.clients[id])
	}
	return out, nil
}

func (r *ClientRepository) CountClients(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.clients), nil
}

func (r *ClientRepository) SaveClient(_ context.Context, client domain.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.clients[client.ClientID]; exists {
		return fmt.Errorf("client %s: %w", client.ClientID, apperrors.ErrDuplicate)
	}
	r.store.clients[client.ClientID] = client
	r.store.clientOrder = append(r.store.clientOrder, client.ClientID)
	return nil
}

// UpdateClient replaces contact details but preserves the stored TotalPaid,
// which only the settlement write may change.
func (r *ClientRepository) UpdateClient(_ context.Context, client domain.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, exists := r.store.clients[client.ClientID]
	if !exists {
		return fmt.Errorf("client %s: %w", client.ClientID, apperrors.ErrNotFound)
	}
	client.TotalPaid = current.TotalPaid
	r.store.clients[client.ClientID] = client
	return nil
}

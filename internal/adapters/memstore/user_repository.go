package memstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
)

// UserRepository implements repositories.UserRepositoryFacade over the
// shared store.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a new user repository view.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

var _ repositories.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return &user, nil
}

func (r *UserRepository) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	userID, ok := r.store.userByEmail[normalizeEmail(email)]
	if !ok {
		return nil, fmt.Errorf("user with email %s: %w", email, apperrors.ErrNotFound)
	}
	user := r.store.users[userID]
	return &user, nil
}

func (r *UserRepository) SaveUser(_ context.Context, user domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := normalizeEmail(user.Email)
	if _, exists := r.store.userByEmail[key]; exists {
		return fmt.Errorf("user with email %s: %w", user.Email, apperrors.ErrDuplicate)
	}
	if _, exists := r.store.users[user.UserID]; exists {
		return fmt.Errorf("user %s: %w", user.UserID, apperrors.ErrDuplicate)
	}
	r.store.users[user.UserID] = user
	r.store.userByEmail[key] = user.UserID
	return nil
}

func (r *UserRepository) UpdateUser(_ context.Context, user domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, exists := r.store.users[user.UserID]
	if !exists {
		return fmt.Errorf("user %s: %w", user.UserID, apperrors.ErrNotFound)
	}
	newKey := normalizeEmail(user.Email)
	oldKey := normalizeEmail(current.Email)
	if newKey != oldKey {
		if _, taken := r.store.userByEmail[newKey]; taken {
			return fmt.Errorf("user with email %s: %w", user.Email, apperrors.ErrDuplicate)
		}
		delete(r.store.userByEmail, oldKey)
		r.store.userByEmail[newKey] = user.UserID
	}
	r.store.users[user.UserID] = user
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

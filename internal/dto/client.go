package dto

import (
	"time"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClientRequest defines the data needed to add a new client.
type CreateClientRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	AvatarURL string `json:"avatarUrl"` // Optional
	Color     string `json:"color"`     // Optional display color tag
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID  string          `json:"clientID"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	TotalPaid decimal.Decimal `json:"totalPaid"`
	AvatarURL string          `json:"avatarUrl"`
	Color     string          `json:"color"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListClientsResponse wraps the list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  c.ClientID,
		Name:      c.Name,
		Email:     c.Email,
		TotalPaid: c.TotalPaid,
		AvatarURL: c.AvatarURL,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
	}
}

// ToListClientsResponse converts a slice of domain.Client to ListClientsResponse.
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = ToClientResponse(&c)
	}
	return ListClientsResponse{Clients: res}
}

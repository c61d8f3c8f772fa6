package domain

import "github.com/shopspring/decimal"

// Client represents a customer that invoices are issued to.
type Client struct {
	ClientID  string          `json:"clientID"` // Primary Key (e.g., UUID)
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	TotalPaid decimal.Decimal `json:"totalPaid"` // Monotonically non-decreasing; incremented only on settlement
	AvatarURL string          `json:"avatarUrl"` // Nullable
	Color     string          `json:"color"`     // Display color tag
	AuditFields
}

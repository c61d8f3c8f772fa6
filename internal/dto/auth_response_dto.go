package dto

// LoginResponse carries the issued access token and the user profile.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"` // "Bearer"
	ExpiresIn   int64        `json:"expiresIn"` // Seconds until expiry
	User        UserResponse `json:"user"`
}

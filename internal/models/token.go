package models

// TokenResponse is the payload returned by login.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
}

// TokenInfo is returned by the token verification endpoint.
type TokenInfo struct {
	Valid     bool   `json:"valid"`
	ExpiresAt string `json:"expires_at,omitempty"`
	UserEmail string `json:"user_email"`
	UserID    string `json:"user_id"`
}

package models

// TokenResponse is returned on successful registration or login.
type TokenResponse struct {
	Token string `json:"token"`
}

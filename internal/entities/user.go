package entities

import "time"

// User represents a registered account.
type User struct {
	ID           string    `json:"id"` // UUID
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose the hash
	Avatar       string    `json:"avatar"` // Gravatar URL derived from the email
	CreatedAt    time.Time `json:"created_at"`
}

package store

import "time"

// Session represents an authenticated user session held in memory.
// Sessions exist so tokens can be revoked server-side before expiry.
type Session struct {
	ID        string    `json:"id"` // JWT ID (jti)
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

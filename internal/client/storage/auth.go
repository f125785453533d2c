// Package storage defines the client-side persistence interfaces and the
// data they store.
package storage

import "context"

// AuthData is the persisted session: the token pair plus the identity it
// belongs to. ExpiresAt is the access-token expiry as a Unix timestamp.
type AuthData struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// AuthStorage defines the interface for persisting the local session.
type AuthStorage interface {
	// SaveAuth stores the session, replacing any previous one.
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the stored session.
	// Returns ErrAuthNotFound when no session is stored.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes the stored session (logout). Deleting an
	// absent session is not an error.
	DeleteAuth(ctx context.Context) error
}

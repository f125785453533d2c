package storage

import (
	"context"

	"github.com/hopmate/hopmate/internal/models"
)

// TokenStorage defines the interface for the refresh-token ledger.
// Rows are append-only in normal operation: redemption flips is_used but
// nothing here deletes, so the ledger doubles as an audit trail.
type TokenStorage interface {
	// SaveRefreshToken stores a new ledger row.
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error

	// GetRefreshToken retrieves a ledger row by exact token value and
	// owning user. Returns ErrTokenNotFound if no row matches.
	GetRefreshToken(ctx context.Context, token, userID string) (*models.RefreshToken, error)

	// RedeemRefreshToken marks the row used in a single conditional
	// update: it succeeds only if the row exists and is neither used nor
	// revoked, so two concurrent redemptions of the same token cannot
	// both win. Returns ErrTokenNotFound if no row matches the token and
	// user, ErrTokenUsedOrRevoked if the row was already consumed.
	RedeemRefreshToken(ctx context.Context, token, userID string) error

	// GetUserTokens retrieves all ledger rows for a user, newest first.
	GetUserTokens(ctx context.Context, userID string) ([]*models.RefreshToken, error)
}

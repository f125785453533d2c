package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hopmate/hopmate/internal/models"
	"github.com/hopmate/hopmate/internal/server/storage"
)

// SaveRefreshToken stores a new ledger row.
func (s *Storage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (id, user_id, token, expires_at, is_used, is_revoked, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		token.ID,
		token.UserID,
		token.Token,
		token.ExpiresAt,
		token.IsUsed,
		token.IsRevoked,
		token.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}

	return nil
}

// GetRefreshToken retrieves a ledger row by exact token value and owning user.
func (s *Storage) GetRefreshToken(ctx context.Context, token, userID string) (*models.RefreshToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, is_used, is_revoked, created_at
		FROM refresh_tokens
		WHERE token = ? AND user_id = ?
	`

	refreshToken := &models.RefreshToken{}

	err := s.db.QueryRowContext(ctx, query, token, userID).Scan(
		&refreshToken.ID,
		&refreshToken.UserID,
		&refreshToken.Token,
		&refreshToken.ExpiresAt,
		&refreshToken.IsUsed,
		&refreshToken.IsRevoked,
		&refreshToken.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return refreshToken, nil
}

// RedeemRefreshToken marks the row used with a single conditional update.
// The WHERE clause is the compare-and-set: of two concurrent redemptions of
// the same token, exactly one affects a row.
func (s *Storage) RedeemRefreshToken(ctx context.Context, token, userID string) error {
	query := `
		UPDATE refresh_tokens
		SET is_used = 1
		WHERE token = ? AND user_id = ? AND is_used = 0 AND is_revoked = 0
	`

	result, err := s.db.ExecContext(ctx, query, token, userID)
	if err != nil {
		return fmt.Errorf("failed to redeem refresh token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		// Distinguish a missing row from a consumed one
		if _, err := s.GetRefreshToken(ctx, token, userID); errors.Is(err, storage.ErrTokenNotFound) {
			return storage.ErrTokenNotFound
		}
		return storage.ErrTokenUsedOrRevoked
	}

	return nil
}

// GetUserTokens retrieves all ledger rows for a user, newest first.
func (s *Storage) GetUserTokens(ctx context.Context, userID string) ([]*models.RefreshToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, is_used, is_revoked, created_at
		FROM refresh_tokens
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user tokens: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tokens []*models.RefreshToken

	for rows.Next() {
		token := &models.RefreshToken{}
		if err := rows.Scan(
			&token.ID,
			&token.UserID,
			&token.Token,
			&token.ExpiresAt,
			&token.IsUsed,
			&token.IsRevoked,
			&token.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan token: %w", err)
		}
		tokens = append(tokens, token)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tokens, nil
}

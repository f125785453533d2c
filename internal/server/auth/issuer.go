package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hopmate/hopmate/internal/models"
	"github.com/hopmate/hopmate/internal/server/jwt"
	"github.com/hopmate/hopmate/internal/server/storage"
	"github.com/hopmate/hopmate/pkg/api"
)

// User-facing failure messages. Login failures are deliberately
// undifferentiated so the API does not reveal whether an email exists.
const (
	MsgUserAlreadyExists    = "User already exists"
	MsgInvalidCredentials   = "Invalid credentials"
	MsgInvalidToken         = "Invalid token"
	MsgUserNotFound         = "User not found"
	MsgInvalidRefreshToken  = "Invalid refresh token"
	MsgRefreshTokenExpired  = "Refresh token expired"
	MsgTokenUsedOrRevoked   = "Refresh token is used or revoked"
	MsgLinkedProfilesFailed = "Failed to create passenger/driver records"
)

// TokenIssuer mints access/refresh token pairs and rotates them against
// the refresh-token ledger.
type TokenIssuer struct {
	cfg    jwt.Config
	users  storage.UserStorage
	tokens storage.TokenStorage
}

// NewTokenIssuer creates a new TokenIssuer.
func NewTokenIssuer(cfg jwt.Config, users storage.UserStorage, tokens storage.TokenStorage) *TokenIssuer {
	return &TokenIssuer{
		cfg:    cfg,
		users:  users,
		tokens: tokens,
	}
}

// failure builds the uniform unsuccessful AuthResponse.
func failure(message string) *api.AuthResponse {
	return &api.AuthResponse{
		Success: false,
		Message: message,
		Roles:   []string{},
	}
}

// Issue mints a token pair for the user and appends one ledger row.
// The access token carries the user's current role memberships.
func (i *TokenIssuer) Issue(ctx context.Context, user *models.User) (*api.AuthResponse, error) {
	roles, err := i.users.GetUserRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []string{}
	}

	accessToken, expiresAt, err := jwt.NewAccessToken(i.cfg, user.ID, user.Email, roles)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiresAt, err := jwt.NewRefreshToken(i.cfg)
	if err != nil {
		return nil, err
	}

	row := &models.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: refreshExpiresAt,
		CreatedAt: time.Now(),
	}
	if err := i.tokens.SaveRefreshToken(ctx, row); err != nil {
		return nil, err
	}

	return &api.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Expiration:   expiresAt,
		Success:      true,
		Roles:        roles,
		UserID:       user.ID,
	}, nil
}

// Refresh validates the expired access token and redeems the refresh token
// for a fresh pair. All taxonomy failures come back as an unsuccessful
// AuthResponse; the error return is for infrastructure faults only.
//
// Redemption is a compare-and-set at the storage layer, so a concurrently
// replayed refresh token is consumed exactly once. Sibling tokens of the
// same user stay valid (session per device).
func (i *TokenIssuer) Refresh(ctx context.Context, accessToken, refreshToken string) (*api.AuthResponse, error) {
	claims, err := jwt.ParseExpiredToken(i.cfg, accessToken)
	if err != nil {
		return failure(MsgInvalidToken), nil
	}

	user, err := i.users.GetUserByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return failure(MsgUserNotFound), nil
		}
		return nil, err
	}

	stored, err := i.tokens.GetRefreshToken(ctx, refreshToken, user.ID)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return failure(MsgInvalidRefreshToken), nil
		}
		return nil, err
	}

	if time.Now().After(stored.ExpiresAt) {
		return failure(MsgRefreshTokenExpired), nil
	}
	if stored.IsUsed || stored.IsRevoked {
		return failure(MsgTokenUsedOrRevoked), nil
	}

	if err := i.tokens.RedeemRefreshToken(ctx, refreshToken, user.ID); err != nil {
		// Lost a concurrent redemption race between the read above and
		// the conditional update
		if errors.Is(err, storage.ErrTokenUsedOrRevoked) || errors.Is(err, storage.ErrTokenNotFound) {
			return failure(MsgTokenUsedOrRevoked), nil
		}
		return nil, err
	}

	return i.Issue(ctx, user)
}

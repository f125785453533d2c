// Package session manages the client-side session lifecycle: persisting
// the token pair after login, restoring it on startup, rotating it via
// the refresh endpoint and dropping it on logout.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hopmate/hopmate/internal/client/storage"
	"github.com/hopmate/hopmate/pkg/api"
)

// ServerAPI is the part of the API client the session manager uses.
type ServerAPI interface {
	RefreshToken(ctx context.Context, req api.RefreshTokenRequest) (*api.AuthResponse, error)
	GetUser(ctx context.Context) (*api.UserResponse, error)
	SetAuthToken(token string)
}

// Manager owns the local session state.
type Manager struct {
	logger *slog.Logger
	client ServerAPI
	store  storage.AuthStorage

	current *storage.AuthData
	profile *api.UserResponse
}

// NewManager creates a session manager.
func NewManager(logger *slog.Logger, client ServerAPI, store storage.AuthStorage) *Manager {
	return &Manager{
		logger: logger,
		client: client,
		store:  store,
	}
}

// Authenticated reports whether a session is active.
func (m *Manager) Authenticated() bool {
	return m.current != nil
}

// Expired reports whether the stored access token is past its expiry.
// An expired session is still refreshable.
func (m *Manager) Expired() bool {
	if m.current == nil || m.current.ExpiresAt == 0 {
		return false
	}
	return time.Now().Unix() >= m.current.ExpiresAt
}

// Current returns the active session data, or nil.
func (m *Manager) Current() *storage.AuthData {
	return m.current
}

// Profile returns the cached profile of the authenticated user, or nil
// when the profile fetch was not possible.
func (m *Manager) Profile() *api.UserResponse {
	return m.profile
}

// HandleAuthResponse persists a successful login or registration answer
// and activates the session. The profile is fetched best-effort: the
// session stays valid even when that fetch fails.
func (m *Manager) HandleAuthResponse(ctx context.Context, resp *api.AuthResponse, email string) error {
	if !resp.Success {
		return fmt.Errorf("auth response is not successful: %s", resp.Message)
	}

	auth := &storage.AuthData{
		UserID:       resp.UserID,
		Email:        email,
		AccessToken:  resp.Token,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    resp.Expiration.Unix(),
	}

	if err := m.store.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	m.current = auth
	m.client.SetAuthToken(auth.AccessToken)

	profile, err := m.client.GetUser(ctx)
	if err != nil {
		m.logger.WarnContext(ctx, "profile fetch after login failed", slog.Any("error", err))
		m.profile = nil
		return nil
	}
	m.profile = profile

	return nil
}

// Restore loads the persisted session on startup. A stored session whose
// profile can no longer be fetched is considered stale and is dropped.
func (m *Manager) Restore(ctx context.Context) error {
	auth, err := m.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	m.current = auth
	m.client.SetAuthToken(auth.AccessToken)

	profile, err := m.client.GetUser(ctx)
	if err != nil {
		m.logger.WarnContext(ctx, "stored session is stale, logging out", slog.Any("error", err))
		return m.Logout(ctx)
	}
	m.profile = profile

	return nil
}

// Refresh exchanges the stored token pair for a fresh one. A rejected
// refresh drops the local session.
func (m *Manager) Refresh(ctx context.Context) error {
	if m.current == nil {
		return fmt.Errorf("no active session")
	}

	resp, err := m.client.RefreshToken(ctx, api.RefreshTokenRequest{
		Token:        m.current.AccessToken,
		RefreshToken: m.current.RefreshToken,
	})
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	if !resp.Success {
		m.logger.WarnContext(ctx, "refresh rejected, logging out", slog.String("message", resp.Message))
		if err := m.Logout(ctx); err != nil {
			return err
		}
		return fmt.Errorf("refresh rejected: %s", resp.Message)
	}

	auth := &storage.AuthData{
		UserID:       resp.UserID,
		Email:        m.current.Email,
		AccessToken:  resp.Token,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    resp.Expiration.Unix(),
	}

	if err := m.store.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to persist rotated session: %w", err)
	}

	m.current = auth
	m.client.SetAuthToken(auth.AccessToken)

	return nil
}

// Logout drops the local session. The server is not called: refresh
// tokens expire on their own and access tokens are short-lived.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	m.current = nil
	m.profile = nil
	m.client.SetAuthToken("")

	return nil
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopmate/hopmate/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// mockSessionService returns canned responses for the auth endpoints
type mockSessionService struct {
	registerResp *api.AuthResponse
	loginResp    *api.AuthResponse
	refreshResp  *api.AuthResponse
	err          error
}

func (m *mockSessionService) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	return m.registerResp, m.err
}

func (m *mockSessionService) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	return m.loginResp, m.err
}

func (m *mockSessionService) Refresh(ctx context.Context, req api.RefreshTokenRequest) (*api.AuthResponse, error) {
	return m.refreshResp, m.err
}

func successResponse() *api.AuthResponse {
	return &api.AuthResponse{
		Token:        "access-token",
		RefreshToken: "refresh-token",
		Expiration:   time.Now().Add(15 * time.Minute),
		Success:      true,
		Roles:        []string{"User"},
		UserID:       "user-1",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeAuthResponse(t *testing.T, w *httptest.ResponseRecorder) api.AuthResponse {
	t.Helper()

	var resp api.AuthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestRegister_Success(t *testing.T) {
	h := NewAuthHandler(setupTestLogger(), &mockSessionService{registerResp: successResponse()})

	w := postJSON(t, h.Register, "/api/auth/register", api.RegisterRequest{
		Email:       "rider@example.com",
		Password:    "Sup3r$ecret",
		FullName:    "Ada Lovelace",
		DateOfBirth: "1990-04-01",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeAuthResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "access-token", resp.Token)
	assert.Equal(t, "user-1", resp.UserID)
}

func TestRegister_ServiceRejection(t *testing.T) {
	h := NewAuthHandler(setupTestLogger(), &mockSessionService{
		registerResp: &api.AuthResponse{Success: false, Message: "User already exists", Roles: []string{}},
	})

	w := postJSON(t, h.Register, "/api/auth/register", api.RegisterRequest{
		Email:       "rider@example.com",
		Password:    "Sup3r$ecret",
		FullName:    "Ada Lovelace",
		DateOfBirth: "1990-04-01",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeAuthResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "User already exists", resp.Message)
}

func TestRegister_InvalidBody(t *testing.T) {
	h := NewAuthHandler(setupTestLogger(), &mockSessionService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	h.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeAuthResponse(t, w).Success)
}

func TestRegister_BadEmail(t *testing.T) {
	h := NewAuthHandler(setupTestLogger(), &mockSessionService{})

	w := postJSON(t, h.Register, "/api/auth/register", api.RegisterRequest{
		Email:    "not-an-email",
		Password: "Sup3r$ecret",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Success(t *testing.T) {
	h := NewAuthHandler(setupTestLogger(), &mockSessionService{loginResp: successResponse()})

	w := postJSON(t, h.Login, "/api/auth/login", api.LoginRequest{
		Email:    "rider@example.com",
		Password: "Sup3r$ecret",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeAuthResponse(t, w).Success)
}

func TestLogin_MissingPassword(t *testing.T) {
	h := NewAuthHandler(setupTestLogger(), &mockSessionService{})

	w := postJSON(t, h.Login, "/api/auth/login", api.LoginRequest{
		Email: "rider@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_InternalError(t *testing.T) {
	h := NewAuthHandler(setupTestLogger(), &mockSessionService{err: assert.AnError})

	w := postJSON(t, h.Login, "/api/auth/login", api.LoginRequest{
		Email:    "rider@example.com",
		Password: "Sup3r$ecret",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRefreshToken_Success(t *testing.T) {
	h := NewAuthHandler(setupTestLogger(), &mockSessionService{refreshResp: successResponse()})

	w := postJSON(t, h.RefreshToken, "/api/auth/refresh-token", api.RefreshTokenRequest{
		Token:        "expired-access",
		RefreshToken: "refresh-token",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeAuthResponse(t, w).Success)
}

func TestRefreshToken_MissingFields(t *testing.T) {
	h := NewAuthHandler(setupTestLogger(), &mockSessionService{})

	tests := []struct {
		name string
		req  api.RefreshTokenRequest
	}{
		{"no access token", api.RefreshTokenRequest{RefreshToken: "refresh-token"}},
		{"no refresh token", api.RefreshTokenRequest{Token: "expired-access"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, h.RefreshToken, "/api/auth/refresh-token", tt.req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, decodeAuthResponse(t, w).Success)
		})
	}
}

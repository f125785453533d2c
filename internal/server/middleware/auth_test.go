package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopmate/hopmate/internal/server/handlers"
	"github.com/hopmate/hopmate/internal/server/jwt"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func testJWTConfig() jwt.Config {
	return jwt.Config{
		Secret:          []byte("test-secret-key"),
		Issuer:          "hopmate-test",
		Audience:        "hopmate-client",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}
}

// contextHandler checks the values the middleware put into the context
func contextHandler(t *testing.T, wantUserID, wantEmail string, wantRoles []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := handlers.UserIDFromContext(r.Context())
		require.True(t, ok, "user id should be in context")
		assert.Equal(t, wantUserID, userID)

		email, ok := handlers.EmailFromContext(r.Context())
		require.True(t, ok, "email should be in context")
		assert.Equal(t, wantEmail, email)

		roles, ok := handlers.RolesFromContext(r.Context())
		require.True(t, ok, "roles should be in context")
		assert.Equal(t, wantRoles, roles)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func TestAuth_Success(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := jwt.NewAccessToken(cfg, "user123", "rider@example.com", []string{"User"})
	require.NoError(t, err)

	wrapped := Auth(setupTestLogger(), cfg)(
		contextHandler(t, "user123", "rider@example.com", []string{"User"}))

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestAuth_MissingHeader(t *testing.T) {
	wrapped := Auth(setupTestLogger(), testJWTConfig())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_BadHeaderFormat(t *testing.T) {
	wrapped := Auth(setupTestLogger(), testJWTConfig())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

	for _, header := range []string{"Basic abc", "Bearer", "just-a-token"} {
		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		req.Header.Set("Authorization", header)

		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenTTL = -time.Minute

	token, _, err := jwt.NewAccessToken(cfg, "user123", "rider@example.com", []string{"User"})
	require.NoError(t, err)

	wrapped := Auth(setupTestLogger(), cfg)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	otherCfg := testJWTConfig()
	otherCfg.Secret = []byte("another-secret")

	token, _, err := jwt.NewAccessToken(otherCfg, "user123", "rider@example.com", []string{"User"})
	require.NoError(t, err)

	wrapped := Auth(setupTestLogger(), testJWTConfig())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopmate/hopmate/pkg/api"
)

func authServer(t *testing.T, status int, resp api.AuthResponse) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestLogin_Success(t *testing.T) {
	want := api.AuthResponse{
		Token:        "access-token",
		RefreshToken: "refresh-token",
		Expiration:   time.Now().Add(15 * time.Minute).UTC().Truncate(time.Second),
		Success:      true,
		Roles:        []string{"User"},
		UserID:       "user-1",
	}

	server := authServer(t, http.StatusOK, want)
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.Login(context.Background(), api.LoginRequest{
		Email:    "rider@example.com",
		Password: "Sup3r$ecret",
	})
	require.NoError(t, err)

	assert.True(t, got.Success)
	assert.Equal(t, want.Token, got.Token)
	assert.Equal(t, want.UserID, got.UserID)
}

func TestLogin_Rejected(t *testing.T) {
	server := authServer(t, http.StatusBadRequest, api.AuthResponse{
		Success: false,
		Message: "Invalid credentials",
		Roles:   []string{},
	})
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.Login(context.Background(), api.LoginRequest{
		Email:    "rider@example.com",
		Password: "wrong",
	})
	require.NoError(t, err, "a 400 rejection is an answer, not a transport error")

	assert.False(t, got.Success)
	assert.Equal(t, "Invalid credentials", got.Message)
}

func TestLogin_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), api.LoginRequest{
		Email:    "rider@example.com",
		Password: "Sup3r$ecret",
	})
	assert.Error(t, err)
}

func TestRefreshToken_SendsBothTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.RefreshTokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "expired-access", req.Token)
		assert.Equal(t, "refresh-token", req.RefreshToken)

		_ = json.NewEncoder(w).Encode(api.AuthResponse{Success: true, Roles: []string{}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	got, err := client.RefreshToken(context.Background(), api.RefreshTokenRequest{
		Token:        "expired-access",
		RefreshToken: "refresh-token",
	})
	require.NoError(t, err)
	assert.True(t, got.Success)
}

func TestGetUser_SendsBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(api.UserResponse{ID: "user-1", Email: "rider@example.com"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetAuthToken("access-token")

	got, err := client.GetUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID)
}

func TestGetUser_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetUser(context.Background())
	assert.Error(t, err)
}

func TestVehicles_CRUD(t *testing.T) {
	var deleted string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/vehicles":
			var req api.VehicleRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(api.VehicleResponse{ID: "v1", Plate: req.Plate})
		case r.Method == http.MethodGet && r.URL.Path == "/api/vehicles":
			_ = json.NewEncoder(w).Encode([]api.VehicleResponse{{ID: "v1"}})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/vehicles/v1":
			deleted = "v1"
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetAuthToken("access-token")
	ctx := context.Background()

	created, err := client.CreateVehicle(ctx, api.VehicleRequest{
		ColorID: 1, Plate: "AB-123-CD", Brand: "Renault", Model: "Clio", Seats: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "v1", created.ID)

	vehicles, err := client.ListVehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 1)

	require.NoError(t, client.DeleteVehicle(ctx, "v1"))
	assert.Equal(t, "v1", deleted)
}

func TestListColors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/colors", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]api.ColorResponse{{ID: 1, Name: "Black"}, {ID: 2, Name: "White"}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	colors, err := client.ListColors(context.Background())
	require.NoError(t, err)
	assert.Len(t, colors, 2)
}

// Package api implements the HTTP client for the hopmate server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hopmate/hopmate/pkg/api"
)

// Client represents the HTTP client for the server API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authToken  string
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAuthToken sets the bearer token attached to subsequent requests.
func (c *Client) SetAuthToken(token string) {
	c.authToken = token
}

// Register creates a new account. A rejection is reported in the response
// body, not as an error: the server answers 400 with the same shape.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doAuthRequest(ctx, "/api/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doAuthRequest(ctx, "/api/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// RefreshToken exchanges the expired access token and the refresh token
// for a fresh pair.
func (c *Client) RefreshToken(ctx context.Context, req api.RefreshTokenRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doAuthRequest(ctx, "/api/auth/refresh-token", req, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// GetUser fetches the authenticated user's profile.
func (c *Client) GetUser(ctx context.Context) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/user", nil, &resp); err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile updates the authenticated user's profile.
func (c *Client) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) error {
	if err := c.doRequest(ctx, http.MethodPut, "/api/user/profile", req, nil); err != nil {
		return fmt.Errorf("update profile request failed: %w", err)
	}
	return nil
}

// ListColors fetches the vehicle color palette.
func (c *Client) ListColors(ctx context.Context) ([]api.ColorResponse, error) {
	var resp []api.ColorResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/colors", nil, &resp); err != nil {
		return nil, fmt.Errorf("list colors request failed: %w", err)
	}
	return resp, nil
}

// ListVehicles fetches the authenticated user's vehicles.
func (c *Client) ListVehicles(ctx context.Context) ([]api.VehicleResponse, error) {
	var resp []api.VehicleResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/vehicles", nil, &resp); err != nil {
		return nil, fmt.Errorf("list vehicles request failed: %w", err)
	}
	return resp, nil
}

// CreateVehicle registers a new vehicle.
func (c *Client) CreateVehicle(ctx context.Context, req api.VehicleRequest) (*api.VehicleResponse, error) {
	var resp api.VehicleResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/vehicles", req, &resp); err != nil {
		return nil, fmt.Errorf("create vehicle request failed: %w", err)
	}
	return &resp, nil
}

// UpdateVehicle updates a vehicle.
func (c *Client) UpdateVehicle(ctx context.Context, id string, req api.VehicleRequest) error {
	if err := c.doRequest(ctx, http.MethodPut, "/api/vehicles/"+id, req, nil); err != nil {
		return fmt.Errorf("update vehicle request failed: %w", err)
	}
	return nil
}

// DeleteVehicle removes a vehicle.
func (c *Client) DeleteVehicle(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/vehicles/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete vehicle request failed: %w", err)
	}
	return nil
}

// doAuthRequest posts to an auth endpoint and decodes the AuthResponse
// body on both 200 and 400: rejections carry their reason in the body.
func (c *Client) doAuthRequest(ctx context.Context, path string, body, result interface{}) error {
	respBody, statusCode, err := c.send(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}

	if statusCode != http.StatusOK && statusCode != http.StatusBadRequest {
		return fmt.Errorf("request failed with status %d: %s", statusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// doRequest performs an HTTP request and decodes a successful response.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	respBody, statusCode, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}

	if statusCode < 200 || statusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", statusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", statusCode, string(respBody))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) ([]byte, int, error) {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}

	return respBody, resp.StatusCode, nil
}

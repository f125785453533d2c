package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hopmate/hopmate/internal/validation"
	"github.com/hopmate/hopmate/pkg/api"
)

// SessionService is the part of the session service the auth endpoints use.
type SessionService interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Refresh(ctx context.Context, req api.RefreshTokenRequest) (*api.AuthResponse, error)
}

// AuthHandler serves the register/login/refresh-token endpoints. It does
// thin presence/format validation and status-code translation only; all
// auth failures surface as HTTP 400 with the AuthResponse body so the
// transport does not reveal which check failed.
type AuthHandler struct {
	logger  *slog.Logger
	service SessionService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(logger *slog.Logger, service SessionService) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		service: service,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		h.sendFailure(w, "invalid request body")
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		h.sendFailure(w, err.Error())
		return
	}
	if req.Password == "" {
		h.sendFailure(w, "password is required")
		return
	}

	resp, err := h.service.Register(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "register failed", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if resp.Success {
		h.logger.InfoContext(ctx, "user registered",
			slog.String("email", req.Email),
			slog.String("user_id", resp.UserID))
	}

	h.sendResult(w, resp)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.sendFailure(w, "invalid request body")
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		h.sendFailure(w, err.Error())
		return
	}
	if req.Password == "" {
		h.sendFailure(w, "password is required")
		return
	}

	resp, err := h.service.Login(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "login failed", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if !resp.Success {
		h.logger.WarnContext(ctx, "login rejected", slog.String("email", req.Email))
	}

	h.sendResult(w, resp)
}

// RefreshToken handles POST /api/auth/refresh-token.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode refresh request", slog.Any("error", err))
		h.sendFailure(w, "invalid request body")
		return
	}

	if req.Token == "" {
		h.sendFailure(w, "token is required")
		return
	}
	if req.RefreshToken == "" {
		h.sendFailure(w, "refreshToken is required")
		return
	}

	resp, err := h.service.Refresh(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "token refresh failed", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if resp.Success {
		h.logger.InfoContext(ctx, "tokens rotated", slog.String("user_id", resp.UserID))
	}

	h.sendResult(w, resp)
}

// sendResult maps the uniform AuthResponse onto 200/400.
func (h *AuthHandler) sendResult(w http.ResponseWriter, resp *api.AuthResponse) {
	status := http.StatusOK
	if !resp.Success {
		status = http.StatusBadRequest
	}
	sendJSON(h.logger, w, resp, status)
}

// sendFailure reports an input-validation failure in the same body shape
// as service-level failures.
func (h *AuthHandler) sendFailure(w http.ResponseWriter, message string) {
	resp := &api.AuthResponse{
		Success: false,
		Message: message,
		Roles:   []string{},
	}
	sendJSON(h.logger, w, resp, http.StatusBadRequest)
}

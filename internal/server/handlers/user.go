package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hopmate/hopmate/internal/models"
	"github.com/hopmate/hopmate/internal/server/storage"
	"github.com/hopmate/hopmate/internal/validation"
	"github.com/hopmate/hopmate/pkg/api"
)

// UserHandler serves the bearer-authenticated profile endpoints.
type UserHandler struct {
	logger *slog.Logger
	users  storage.UserStorage
}

// NewUserHandler creates a new user handler.
func NewUserHandler(logger *slog.Logger, users storage.UserStorage) *UserHandler {
	return &UserHandler{
		logger: logger,
		users:  users,
	}
}

// Get handles GET /api/user.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Token references a deleted account
			sendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.UserResponse{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		DateOfBirth: user.DateOfBirth.Format(models.DateLayout),
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// UpdateProfile handles PUT /api/user/profile.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode profile request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateFullName(req.FullName); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	dob, err := validation.ParseDateOfBirth(req.DateOfBirth, time.Now())
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.users.UpdateProfile(ctx, userID, req.FullName, dob); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, "user not found", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update profile", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "profile updated", slog.String("user_id", userID))
	w.WriteHeader(http.StatusOK)
}

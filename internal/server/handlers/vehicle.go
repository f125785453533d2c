package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hopmate/hopmate/internal/models"
	"github.com/hopmate/hopmate/internal/server/storage"
	"github.com/hopmate/hopmate/pkg/api"
)

// VehicleHandler serves the bearer-authenticated vehicle CRUD. A vehicle
// is always scoped to the calling user; foreign vehicles read as absent.
type VehicleHandler struct {
	logger   *slog.Logger
	vehicles storage.VehicleStorage
	colors   storage.ColorStorage
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(logger *slog.Logger, vehicles storage.VehicleStorage, colors storage.ColorStorage) *VehicleHandler {
	return &VehicleHandler{
		logger:   logger,
		vehicles: vehicles,
		colors:   colors,
	}
}

// List handles GET /api/vehicles.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	vehicles, err := h.vehicles.ListUserVehicles(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list vehicles", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, h.toResponse(r, v))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Create handles POST /api/vehicles.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateVehicle(req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.colors.GetColorByID(ctx, req.ColorID); err != nil {
		if errors.Is(err, storage.ErrColorNotFound) {
			sendError(h.logger, w, "unknown color", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to check color", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	vehicle := &models.Vehicle{
		ID:        uuid.New().String(),
		UserID:    userID,
		ColorID:   req.ColorID,
		Plate:     strings.ToUpper(strings.TrimSpace(req.Plate)),
		Brand:     req.Brand,
		Model:     req.Model,
		Seats:     req.Seats,
		CreatedAt: time.Now(),
	}

	if err := h.vehicles.CreateVehicle(ctx, vehicle); err != nil {
		switch {
		case errors.Is(err, storage.ErrVehicleAlreadyExists):
			sendError(h.logger, w, "a vehicle with this plate already exists", http.StatusConflict)
		case errors.Is(err, storage.ErrColorNotFound):
			sendError(h.logger, w, "unknown color", http.StatusBadRequest)
		default:
			h.logger.ErrorContext(ctx, "failed to create vehicle", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.logger.InfoContext(ctx, "vehicle registered",
		slog.String("user_id", userID),
		slog.String("vehicle_id", vehicle.ID))

	sendJSON(h.logger, w, h.toResponse(r, vehicle), http.StatusCreated)
}

// Get handles GET /api/vehicles/{id}.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	vehicle, ok := h.ownVehicle(w, r)
	if !ok {
		return
	}

	sendJSON(h.logger, w, h.toResponse(r, vehicle), http.StatusOK)
}

// Update handles PUT /api/vehicles/{id}.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vehicle, ok := h.ownVehicle(w, r)
	if !ok {
		return
	}

	var req api.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateVehicle(req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	vehicle.ColorID = req.ColorID
	vehicle.Plate = strings.ToUpper(strings.TrimSpace(req.Plate))
	vehicle.Brand = req.Brand
	vehicle.Model = req.Model
	vehicle.Seats = req.Seats

	if err := h.vehicles.UpdateVehicle(ctx, vehicle); err != nil {
		switch {
		case errors.Is(err, storage.ErrVehicleAlreadyExists):
			sendError(h.logger, w, "a vehicle with this plate already exists", http.StatusConflict)
		case errors.Is(err, storage.ErrColorNotFound):
			sendError(h.logger, w, "unknown color", http.StatusBadRequest)
		case errors.Is(err, storage.ErrVehicleNotFound):
			sendError(h.logger, w, "vehicle not found", http.StatusNotFound)
		default:
			h.logger.ErrorContext(ctx, "failed to update vehicle", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/vehicles/{id}.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vehicle, ok := h.ownVehicle(w, r)
	if !ok {
		return
	}

	if err := h.vehicles.DeleteVehicle(ctx, vehicle.ID); err != nil {
		if errors.Is(err, storage.ErrVehicleNotFound) {
			sendError(h.logger, w, "vehicle not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete vehicle", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ownVehicle loads the path vehicle and enforces ownership. A vehicle of
// another user reads as not found rather than forbidden.
func (h *VehicleHandler) ownVehicle(w http.ResponseWriter, r *http.Request) (*models.Vehicle, bool) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	vehicle, err := h.vehicles.GetVehicleByID(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrVehicleNotFound) {
			sendError(h.logger, w, "vehicle not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get vehicle", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	if vehicle.UserID != userID {
		sendError(h.logger, w, "vehicle not found", http.StatusNotFound)
		return nil, false
	}

	return vehicle, true
}

func (h *VehicleHandler) toResponse(r *http.Request, v *models.Vehicle) api.VehicleResponse {
	resp := api.VehicleResponse{
		ID:      v.ID,
		ColorID: v.ColorID,
		Plate:   v.Plate,
		Brand:   v.Brand,
		Model:   v.Model,
		Seats:   v.Seats,
	}
	if color, err := h.colors.GetColorByID(r.Context(), v.ColorID); err == nil {
		resp.Color = color.Name
	}
	return resp
}

func validateVehicle(req api.VehicleRequest) error {
	switch {
	case strings.TrimSpace(req.Plate) == "":
		return errors.New("plate is required")
	case strings.TrimSpace(req.Brand) == "":
		return errors.New("brand is required")
	case strings.TrimSpace(req.Model) == "":
		return errors.New("model is required")
	case req.Seats < 1:
		return errors.New("seats must be at least 1")
	}
	return nil
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hopmate/hopmate/internal/server/storage"
	"github.com/hopmate/hopmate/pkg/api"
)

// ColorHandler serves the public vehicle-color reference data.
type ColorHandler struct {
	logger *slog.Logger
	colors storage.ColorStorage
}

// NewColorHandler creates a new color handler.
func NewColorHandler(logger *slog.Logger, colors storage.ColorStorage) *ColorHandler {
	return &ColorHandler{
		logger: logger,
		colors: colors,
	}
}

// List handles GET /api/colors.
func (h *ColorHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	colors, err := h.colors.ListColors(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list colors", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.ColorResponse, 0, len(colors))
	for _, c := range colors {
		resp = append(resp, api.ColorResponse{ID: c.ID, Name: c.Name})
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get handles GET /api/colors/{id}.
func (h *ColorHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendError(h.logger, w, "invalid color id", http.StatusBadRequest)
		return
	}

	color, err := h.colors.GetColorByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrColorNotFound) {
			sendError(h.logger, w, "color not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get color", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.ColorResponse{ID: color.ID, Name: color.Name}, http.StatusOK)
}

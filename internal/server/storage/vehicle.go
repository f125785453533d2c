package storage

import (
	"context"

	"github.com/hopmate/hopmate/internal/models"
)

// ColorStorage defines the interface for the vehicle-color reference data.
type ColorStorage interface {
	// ListColors returns all colors ordered by name.
	ListColors(ctx context.Context) ([]*models.Color, error)

	// GetColorByID retrieves a color.
	// Returns ErrColorNotFound if no such color exists.
	GetColorByID(ctx context.Context, id int64) (*models.Color, error)

	// EnsureColor creates the named color if it does not exist yet.
	EnsureColor(ctx context.Context, name string) error
}

// VehicleStorage defines the interface for vehicle persistence.
type VehicleStorage interface {
	// CreateVehicle stores a new vehicle.
	// Returns ErrVehicleAlreadyExists on a duplicate plate and
	// ErrColorNotFound when the referenced color does not exist.
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error

	// GetVehicleByID retrieves a vehicle.
	// Returns ErrVehicleNotFound if no such vehicle exists.
	GetVehicleByID(ctx context.Context, id string) (*models.Vehicle, error)

	// ListUserVehicles returns all vehicles of a user, newest first.
	ListUserVehicles(ctx context.Context, userID string) ([]*models.Vehicle, error)

	// UpdateVehicle updates a vehicle's mutable fields.
	// Returns ErrVehicleNotFound if no such vehicle exists.
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error

	// DeleteVehicle deletes a vehicle.
	// Returns ErrVehicleNotFound if no such vehicle exists.
	DeleteVehicle(ctx context.Context, id string) error
}

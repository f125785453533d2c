package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hopmate/hopmate/internal/models"
	"github.com/hopmate/hopmate/internal/server/storage"
)

// ListColors returns all colors ordered by name.
func (s *Storage) ListColors(ctx context.Context) ([]*models.Color, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM colors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query colors: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var colors []*models.Color
	for rows.Next() {
		color := &models.Color{}
		if err := rows.Scan(&color.ID, &color.Name); err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		colors = append(colors, color)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return colors, nil
}

// GetColorByID retrieves a color.
func (s *Storage) GetColorByID(ctx context.Context, id int64) (*models.Color, error) {
	color := &models.Color{}

	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM colors WHERE id = ?`, id).
		Scan(&color.ID, &color.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrColorNotFound
		}
		return nil, fmt.Errorf("failed to get color: %w", err)
	}

	return color, nil
}

// EnsureColor creates the named color if it does not exist yet.
func (s *Storage) EnsureColor(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO colors (name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("failed to ensure color: %w", err)
	}
	return nil
}

// CreateVehicle stores a new vehicle.
func (s *Storage) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, user_id, color_id, plate, brand, model, seats, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		vehicle.ID,
		vehicle.UserID,
		vehicle.ColorID,
		vehicle.Plate,
		vehicle.Brand,
		vehicle.Model,
		vehicle.Seats,
		vehicle.CreatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: vehicles.plate") {
			return storage.ErrVehicleAlreadyExists
		}
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return storage.ErrColorNotFound
		}
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}

	return nil
}

// GetVehicleByID retrieves a vehicle.
func (s *Storage) GetVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	query := `
		SELECT id, user_id, color_id, plate, brand, model, seats, created_at
		FROM vehicles
		WHERE id = ?
	`

	vehicle := &models.Vehicle{}

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&vehicle.ID,
		&vehicle.UserID,
		&vehicle.ColorID,
		&vehicle.Plate,
		&vehicle.Brand,
		&vehicle.Model,
		&vehicle.Seats,
		&vehicle.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return vehicle, nil
}

// ListUserVehicles returns all vehicles of a user, newest first.
func (s *Storage) ListUserVehicles(ctx context.Context, userID string) ([]*models.Vehicle, error) {
	query := `
		SELECT id, user_id, color_id, plate, brand, model, seats, created_at
		FROM vehicles
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var vehicles []*models.Vehicle
	for rows.Next() {
		vehicle := &models.Vehicle{}
		if err := rows.Scan(
			&vehicle.ID,
			&vehicle.UserID,
			&vehicle.ColorID,
			&vehicle.Plate,
			&vehicle.Brand,
			&vehicle.Model,
			&vehicle.Seats,
			&vehicle.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return vehicles, nil
}

// UpdateVehicle updates a vehicle's mutable fields.
func (s *Storage) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		UPDATE vehicles
		SET color_id = ?, plate = ?, brand = ?, model = ?, seats = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		vehicle.ColorID,
		vehicle.Plate,
		vehicle.Brand,
		vehicle.Model,
		vehicle.Seats,
		vehicle.ID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: vehicles.plate") {
			return storage.ErrVehicleAlreadyExists
		}
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return storage.ErrColorNotFound
		}
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrVehicleNotFound
	}

	return nil
}

// DeleteVehicle deletes a vehicle.
func (s *Storage) DeleteVehicle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrVehicleNotFound
	}

	return nil
}

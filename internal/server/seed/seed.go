// Package seed provisions the reference data the server needs on first
// start: the role set, the vehicle-color palette and an optional
// bootstrap admin account. Seeding is idempotent.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hopmate/hopmate/internal/models"
	"github.com/hopmate/hopmate/internal/server/storage"
)

// colorPalette is the built-in vehicle color reference set.
var colorPalette = []string{
	"Black",
	"Blue",
	"Gray",
	"Green",
	"Red",
	"Silver",
	"White",
	"Yellow",
}

// roles every deployment carries.
var roles = []string{
	models.RoleAdmin,
	models.RoleUser,
	models.RoleDriver,
}

// Seeder provisions roles, colors and the bootstrap admin.
type Seeder struct {
	logger *slog.Logger
	users  storage.UserStorage
	colors storage.ColorStorage
}

// New creates a seeder.
func New(logger *slog.Logger, users storage.UserStorage, colors storage.ColorStorage) *Seeder {
	return &Seeder{
		logger: logger,
		users:  users,
		colors: colors,
	}
}

// Run seeds roles and colors, then the admin account if configured.
// Passing an empty adminEmail skips the admin bootstrap.
func (s *Seeder) Run(ctx context.Context, adminEmail, adminPassword string) error {
	for _, role := range roles {
		if err := s.users.EnsureRole(ctx, role); err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role, err)
		}
	}

	for _, color := range colorPalette {
		if err := s.colors.EnsureColor(ctx, color); err != nil {
			return fmt.Errorf("failed to seed color %s: %w", color, err)
		}
	}

	if adminEmail == "" {
		s.logger.DebugContext(ctx, "admin bootstrap not configured, skipping")
		return nil
	}

	return s.seedAdmin(ctx, adminEmail, adminPassword)
}

// seedAdmin creates the bootstrap admin account unless it already exists.
func (s *Seeder) seedAdmin(ctx context.Context, email, password string) error {
	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		s.logger.DebugContext(ctx, "admin account already exists", slog.String("email", email))
		return nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return fmt.Errorf("failed to check admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		DateOfBirth:  time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:    time.Now(),
	}

	if err := s.users.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	if err := s.users.CreateLinkedProfiles(ctx, admin.ID); err != nil {
		return fmt.Errorf("failed to create admin profiles: %w", err)
	}

	for _, role := range []string{models.RoleAdmin, models.RoleUser} {
		if err := s.users.AddUserRole(ctx, admin.ID, role); err != nil {
			return fmt.Errorf("failed to assign admin role %s: %w", role, err)
		}
	}

	s.logger.InfoContext(ctx, "admin account created",
		slog.String("email", email),
		slog.String("user_id", admin.ID))

	return nil
}

package storage

import (
	"context"
	"time"

	"github.com/hopmate/hopmate/internal/models"
)

// UserStorage defines the interface for account, role and linked-profile
// persistence (the credential store).
type UserStorage interface {
	// CreateUser creates a new user.
	// Returns ErrUserAlreadyExists if the email is taken (case-insensitive).
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email, case-insensitively.
	// Returns ErrUserNotFound if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns ErrUserNotFound if no such user exists.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdateProfile updates the mutable profile fields of a user.
	// Returns ErrUserNotFound if no such user exists.
	UpdateProfile(ctx context.Context, userID, fullName string, dateOfBirth time.Time) error

	// DeleteUser deletes a user and, via cascade, its linked profiles,
	// role assignments and vehicles. Returns ErrUserNotFound if absent.
	DeleteUser(ctx context.Context, userID string) error

	// CreateLinkedProfiles creates the passenger and driver rows keyed
	// 1:1 by the user id.
	CreateLinkedProfiles(ctx context.Context, userID string) error

	// EnsureRole creates the named role if it does not exist yet.
	EnsureRole(ctx context.Context, name string) error

	// AddUserRole assigns the named role to the user.
	// Returns ErrRoleNotFound if the role does not exist.
	AddUserRole(ctx context.Context, userID, role string) error

	// GetUserRoles returns the names of all roles assigned to the user.
	GetUserRoles(ctx context.Context, userID string) ([]string, error)
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hopmate/hopmate/internal/models"
	"github.com/hopmate/hopmate/internal/server/storage"
)

// CreateUser creates a new user row. The email column is COLLATE NOCASE, so
// the unique constraint catches duplicates regardless of case, including
// concurrent registration races.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, full_name, date_of_birth, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.DateOfBirth.Format(models.DateLayout),
		user.CreatedAt,
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by email, case-insensitively.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, full_name, date_of_birth, created_at
		FROM users
		WHERE email = ?
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// GetUserByID retrieves a user by ID.
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, full_name, date_of_birth, created_at
		FROM users
		WHERE id = ?
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, userID))
}

func (s *Storage) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var dob string

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&dob,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.DateOfBirth, err = time.Parse(models.DateLayout, dob)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date of birth: %w", err)
	}

	return user, nil
}

// UpdateProfile updates the mutable profile fields of a user.
func (s *Storage) UpdateProfile(ctx context.Context, userID, fullName string, dateOfBirth time.Time) error {
	query := `UPDATE users SET full_name = ?, date_of_birth = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query,
		fullName,
		dateOfBirth.Format(models.DateLayout),
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// DeleteUser deletes a user by ID. Linked profiles, role assignments and
// vehicles go with it through ON DELETE CASCADE.
func (s *Storage) DeleteUser(ctx context.Context, userID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// CreateLinkedProfiles creates the passenger and driver rows for a user in
// one transaction, so a half-created pair never persists.
func (s *Storage) CreateLinkedProfiles(ctx context.Context, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `INSERT INTO passengers (user_id) VALUES (?)`, userID); err != nil {
		return fmt.Errorf("failed to insert passenger: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO drivers (user_id) VALUES (?)`, userID); err != nil {
		return fmt.Errorf("failed to insert driver: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit linked profiles: %w", err)
	}

	return nil
}

// EnsureRole creates the named role if it does not exist yet.
func (s *Storage) EnsureRole(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO roles (name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("failed to ensure role: %w", err)
	}
	return nil
}

// AddUserRole assigns the named role to the user.
func (s *Storage) AddUserRole(ctx context.Context, userID, role string) error {
	var roleID int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM roles WHERE name = ?`, role).Scan(&roleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrRoleNotFound
		}
		return fmt.Errorf("failed to look up role: %w", err)
	}

	query := `INSERT OR IGNORE INTO user_roles (user_id, role_id) VALUES (?, ?)`
	if _, err := s.db.ExecContext(ctx, query, userID, roleID); err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}

	return nil
}

// GetUserRoles returns the names of all roles assigned to the user.
func (s *Storage) GetUserRoles(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = ?
		ORDER BY r.name
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user roles: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var roles []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

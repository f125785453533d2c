package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopmate/hopmate/internal/models"
	"github.com/hopmate/hopmate/internal/server/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func newTestUser() *models.User {
	return &models.User{
		ID:           uuid.New().String(),
		Email:        "rider@example.com",
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarea",
		FullName:     "Test Rider",
		DateOfBirth:  time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC),
		CreatedAt:    time.Now().UTC(),
	}
}

func TestCreateUser(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := newTestUser()
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUserByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.FullName, got.FullName)
	assert.True(t, got.DateOfBirth.Equal(user.DateOfBirth))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := newTestUser()
	require.NoError(t, s.CreateUser(ctx, user))

	dup := newTestUser()
	dup.ID = uuid.New().String()
	err := s.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestCreateUser_DuplicateEmailDifferentCase(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := newTestUser()
	require.NoError(t, s.CreateUser(ctx, user))

	dup := newTestUser()
	dup.ID = uuid.New().String()
	dup.Email = "RIDER@Example.COM"
	err := s.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)

	// Lookup is case-insensitive as well
	got, err := s.GetUserByEmail(ctx, "Rider@EXAMPLE.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestGetUserByID(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := newTestUser()
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = s.GetUserByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := newTestUser()
	require.NoError(t, s.CreateUser(ctx, user))

	newDOB := time.Date(1985, 12, 24, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.UpdateProfile(ctx, user.ID, "Renamed Rider", newDOB))

	got, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Rider", got.FullName)
	assert.True(t, got.DateOfBirth.Equal(newDOB))

	err = s.UpdateProfile(ctx, uuid.New().String(), "X", newDOB)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestDeleteUser_CascadesLinkedRows(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := newTestUser()
	require.NoError(t, s.CreateUser(ctx, user))
	require.NoError(t, s.CreateLinkedProfiles(ctx, user.ID))
	require.NoError(t, s.EnsureRole(ctx, models.RoleUser))
	require.NoError(t, s.AddUserRole(ctx, user.ID, models.RoleUser))

	require.NoError(t, s.DeleteUser(ctx, user.ID))

	_, err := s.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	var count int
	err = s.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM passengers WHERE user_id = ?`, user.ID).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)

	err = s.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_roles WHERE user_id = ?`, user.ID).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, s.DeleteUser(ctx, user.ID), storage.ErrUserNotFound)
}

func TestRoles(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := newTestUser()
	require.NoError(t, s.CreateUser(ctx, user))

	require.NoError(t, s.EnsureRole(ctx, models.RoleUser))
	require.NoError(t, s.EnsureRole(ctx, models.RoleUser)) // idempotent
	require.NoError(t, s.EnsureRole(ctx, models.RoleAdmin))

	require.NoError(t, s.AddUserRole(ctx, user.ID, models.RoleUser))
	require.NoError(t, s.AddUserRole(ctx, user.ID, models.RoleAdmin))

	roles, err := s.GetUserRoles(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{models.RoleAdmin, models.RoleUser}, roles)

	err = s.AddUserRole(ctx, user.ID, "NoSuchRole")
	assert.ErrorIs(t, err, storage.ErrRoleNotFound)
}

func TestCreateLinkedProfiles(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := newTestUser()
	require.NoError(t, s.CreateUser(ctx, user))
	require.NoError(t, s.CreateLinkedProfiles(ctx, user.ID))

	var count int
	err := s.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM drivers WHERE user_id = ?`, user.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Second attempt hits the primary key; nothing partial persists
	assert.Error(t, s.CreateLinkedProfiles(ctx, user.ID))
}

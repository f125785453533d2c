package seed

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hopmate/hopmate/internal/models"
	"github.com/hopmate/hopmate/internal/server/storage/sqlite"
)

func newTestSeeder(t *testing.T) (*Seeder, *sqlite.Storage) {
	t.Helper()

	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(logger, s, s), s
}

func TestRun_SeedsRolesAndColors(t *testing.T) {
	seeder, store := newTestSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx, "", ""))

	colors, err := store.ListColors(ctx)
	require.NoError(t, err)
	assert.Len(t, colors, len(colorPalette))

	// Roles exist when assignment succeeds
	user := &models.User{ID: "u1", Email: "x@example.com", PasswordHash: "h", FullName: "X"}
	require.NoError(t, store.CreateUser(ctx, user))
	require.NoError(t, store.AddUserRole(ctx, "u1", models.RoleDriver))
}

func TestRun_Idempotent(t *testing.T) {
	seeder, store := newTestSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx, "", ""))
	require.NoError(t, seeder.Run(ctx, "", ""))

	colors, err := store.ListColors(ctx)
	require.NoError(t, err)
	assert.Len(t, colors, len(colorPalette))
}

func TestRun_AdminBootstrap(t *testing.T) {
	seeder, store := newTestSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx, "admin@example.com", "Adm1n$ecret"))

	admin, err := store.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("Adm1n$ecret")))

	roles, err := store.GetUserRoles(ctx, admin.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{models.RoleAdmin, models.RoleUser}, roles)
}

func TestRun_AdminAlreadyExists(t *testing.T) {
	seeder, store := newTestSeeder(t)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx, "admin@example.com", "Adm1n$ecret"))
	admin, err := store.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)

	// Second run must not replace the account
	require.NoError(t, seeder.Run(ctx, "admin@example.com", "Changed$ecret1"))

	again, err := store.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)
	assert.Equal(t, admin.PasswordHash, again.PasswordHash)
}

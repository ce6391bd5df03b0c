package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"clinic/config"
	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.DataPath = t.TempDir()

	return cfg
}

func TestUserRepository_SaveOrUpdate_IsIdempotent(t *testing.T) {
	repo := NewUserRepository(newTestConfig(t))
	ctx := context.Background()

	user := &entity.User{ID: "U001", Role: entity.RoleCustomer, Name: "Amy", Email: "amy@x.com"}
	require.NoError(t, repo.SaveOrUpdate(ctx, user))

	user.Phone = "0123456789"
	require.NoError(t, repo.SaveOrUpdate(ctx, user))

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "0123456789", users[0].Phone)
}

func TestUserRepository_SaveOrUpdate_ReplacesInPlace(t *testing.T) {
	repo := NewUserRepository(newTestConfig(t))
	ctx := context.Background()

	for _, id := range []string{"U001", "U002", "U003"} {
		require.NoError(t, repo.SaveOrUpdate(ctx, &entity.User{ID: id, Role: entity.RoleStaff}))
	}

	// Updating the middle record must not move it to the end.
	require.NoError(t, repo.SaveOrUpdate(ctx, &entity.User{ID: "U002", Role: entity.RoleStaff, Name: "updated"}))

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []string{"U001", "U002", "U003"}, []string{users[0].ID, users[1].ID, users[2].ID})
	assert.Equal(t, "updated", users[1].Name)
}

func TestUserRepository_FindByEmail_IgnoresCase(t *testing.T) {
	repo := NewUserRepository(newTestConfig(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveOrUpdate(ctx, &entity.User{ID: "U001", Email: "Amy@X.com"}))

	found, err := repo.FindByEmail(ctx, "amy@x.COM")
	require.NoError(t, err)
	assert.Equal(t, "U001", found.ID)

	_, err = repo.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByID_IgnoresCase(t *testing.T) {
	repo := NewUserRepository(newTestConfig(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveOrUpdate(ctx, &entity.User{ID: "U001"}))

	found, err := repo.FindByID(ctx, "u001")
	require.NoError(t, err)
	assert.Equal(t, "U001", found.ID)
}

func TestUserRepository_Delete_RemovesExactlyOneRecord(t *testing.T) {
	repo := NewUserRepository(newTestConfig(t))
	ctx := context.Background()

	for _, id := range []string{"U001", "U002", "U003"} {
		require.NoError(t, repo.SaveOrUpdate(ctx, &entity.User{ID: id}))
	}

	require.NoError(t, repo.Delete(ctx, "U002"))

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "U001", users[0].ID)
	assert.Equal(t, "U003", users[1].ID)
}

func TestUserRepository_Delete_UnknownIDIsNoOp(t *testing.T) {
	repo := NewUserRepository(newTestConfig(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveOrUpdate(ctx, &entity.User{ID: "U001"}))
	require.NoError(t, repo.Delete(ctx, "U999"))

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_ReadsLegacyKeyNames(t *testing.T) {
	cfg := newTestConfig(t)

	// A data file produced by an earlier release, with its exact key
	// spelling, must read back field for field.
	legacy := `[
  {
    "userId": "U004",
    "role": "DOCTOR",
    "name": "Dr. Lee",
    "email": "lee@clinic.com",
    "phone": "5550001",
    "address": "12 Main St",
    "password": "$2a$10$legacyhash"
  }
]`
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Storage.DataPath, "userData.json"), []byte(legacy), 0o644))

	repo := NewUserRepository(cfg)

	found, err := repo.FindByID(context.Background(), "U004")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDoctor, found.Role)
	assert.Equal(t, "Dr. Lee", found.Name)
	assert.Equal(t, "lee@clinic.com", found.Email)
	assert.Equal(t, "5550001", found.Phone)
	assert.Equal(t, "12 Main St", found.Address)
	assert.Equal(t, "$2a$10$legacyhash", found.PasswordHash)
}

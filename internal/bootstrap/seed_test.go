package bootstrap_test

import (
	"testing"

	"github.com/Suvay/sjnhs-web-draft/internal/bootstrap"
	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedUsers(t *testing.T) {
	store := storagetest.New()

	require.NoError(t, bootstrap.SeedUsers(t.Context(), store, zap.NewNop()))

	admin, err := store.GetUserByUsername(t.Context(), "admin")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))

	demo, err := store.GetUserByUsername(t.Context(), "demo")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEditor, demo.Role)
}

func TestSeedUsersKeepsExistingAccounts(t *testing.T) {
	store := storagetest.New()

	hashed, err := bcrypt.GenerateFromPassword([]byte("custom-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	existing := &entity.User{Username: "admin", Password: string(hashed), Role: entity.RoleAdmin}
	require.NoError(t, store.CreateUser(t.Context(), existing))

	require.NoError(t, bootstrap.SeedUsers(t.Context(), store, zap.NewNop()))

	admin, err := store.GetUserByUsername(t.Context(), "admin")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, admin.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("custom-pass")),
		"seeding must not overwrite an existing password")

	users, err := store.GetAllUsers(t.Context())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

package bootstrap

import (
	"context"
	"errors"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedUsers creates the development accounts if they are absent: an admin
// (admin/admin123) and a demo editor (demo/demo123). Existing accounts are
// never touched.
func SeedUsers(ctx context.Context, store storage.Storage, log *zap.Logger) error {
	seeds := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "admin123", entity.RoleAdmin},
		{"demo", "demo123", entity.RoleEditor},
	}

	for _, seed := range seeds {
		_, err := store.GetUserByUsername(ctx, seed.username)
		if err == nil {
			log.Debug("seed user already exists, skipping", zap.String("username", seed.username))
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := &entity.User{
			Username: seed.username,
			Password: string(hashed),
			Role:     seed.role,
		}
		if err := store.CreateUser(ctx, user); err != nil {
			return err
		}
		log.Info("seeded user", zap.String("username", seed.username), zap.String("role", seed.role))
	}

	return nil
}

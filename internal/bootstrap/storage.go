package bootstrap

import (
	"context"

	"github.com/Suvay/sjnhs-web-draft/internal/config"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/Suvay/sjnhs-web-draft/internal/storage/mongodb"
	"github.com/Suvay/sjnhs-web-draft/internal/storage/postgres"
	"github.com/Suvay/sjnhs-web-draft/pkg/database"
	"go.uber.org/zap"
)

// OpenStorage picks the backend once at startup: MongoDB when MONGODB_URI is
// set and reachable, otherwise PostgreSQL. The fallback is logged loudly so a
// misconfigured Mongo deployment is visible instead of silent. The returned
// func closes the underlying connection.
func OpenStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage.Storage, func(), error) {
	if cfg.MongoURI != "" {
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err == nil {
			store := mongodb.New(client.Database(cfg.MongoDBName))
			if err := store.EnsureIndexes(ctx); err != nil {
				_ = client.Disconnect(context.Background())
				return nil, nil, err
			}
			log.Info("storage backend selected", zap.String("backend", store.Name()))
			cleanup := func() { _ = client.Disconnect(context.Background()) }
			return store, cleanup, nil
		}
		log.Warn("mongodb unavailable, falling back to postgres", zap.Error(err))
	}

	db, err := database.ConnectPostgres(cfg.PostgresDSN())
	if err != nil {
		return nil, nil, err
	}
	store := postgres.New(db)
	if err := store.Migrate(); err != nil {
		return nil, nil, err
	}
	log.Info("storage backend selected", zap.String("backend", store.Name()))

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return store, cleanup, nil
}

package main

import (
	"context"
	"log"

	"github.com/Suvay/sjnhs-web-draft/internal/bootstrap"
	"github.com/Suvay/sjnhs-web-draft/internal/config"
	"github.com/Suvay/sjnhs-web-draft/internal/server"
	imagestorage "github.com/Suvay/sjnhs-web-draft/pkg/storage"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger *zap.Logger
	if cfg.AppEnv == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	store, cleanup, err := bootstrap.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer cleanup()

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedUsers(ctx, store, logger); err != nil {
			logger.Fatal("failed to seed users", zap.Error(err))
		}
	}

	images, err := imagestorage.NewCloudinaryStorage()
	if err != nil {
		logger.Warn("image uploads disabled", zap.Error(err))
		images = nil
	}

	srv := server.New(cfg, store, images, logger)

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("storage", store.Name()))
	if err := srv.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}

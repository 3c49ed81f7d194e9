package cmd

import (
	"context"
	"fmt"
	"time"

	"country-currency/core/config"
	"country-currency/core/database"
	"country-currency/core/logger"
	"country-currency/core/storage"
	"country-currency/feature/countries"
	"country-currency/feature/countries/models"
	"country-currency/feature/countries/sources"
	"country-currency/feature/summary"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds the wired components shared by the commands.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	db        *gorm.DB
	store     storage.Client
	artifacts *summary.Service
	countries *countries.Feature
}

// bootstrap loads configuration and connects every dependency.
// The object storage client is only created for the minio artifact driver.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	if err := models.Migrate(db); err != nil {
		return nil, err
	}

	var client storage.Client
	if cfg.Artifact.Driver == summary.DriverMinio {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		timeout := cfg.Storage.TimeoutSeconds
		if timeout <= 0 {
			timeout = 30
		}
		bctx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		err = storage.EnsureBucket(bctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
		cancel()
		if err != nil {
			// The bucket can still be created later through the integrity endpoint.
			logg.Warn("Artifact bucket unavailable", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		}
	}

	store, err := summary.NewStore(cfg.Artifact, client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	artifacts, err := summary.NewService(store, logg)
	if err != nil {
		return nil, err
	}

	fetcher := sources.NewClient(cfg.Sources, logg)

	return &app{
		cfg:       cfg,
		logger:    logg,
		db:        db,
		store:     client,
		artifacts: artifacts,
		countries: countries.NewFeature(db, fetcher, artifacts, logg),
	}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.logger.Sync()
}

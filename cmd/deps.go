package cmd

import (
	"fmt"

	"equipment-tracker/core/config"
	"equipment-tracker/core/database"
	"equipment-tracker/core/logger"
	"equipment-tracker/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps is what every maintenance command needs.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

func loadDeps() (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}

	return &deps{cfg: cfg, logger: logg.With(zap.String("driver", cfg.Database.Driver)), db: db}, nil
}

func (r *deps) storage() (storage.Client, error) {
	client, err := storage.NewClient(r.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, nil
}

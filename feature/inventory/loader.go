package inventory

import (
	"equipment-tracker/feature/inventory/engine"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the inventory feature.
func NewFeature(db *gorm.DB, eng *engine.Engine, logger *zap.Logger, returnLimit int) *Feature {
	svc := NewService(db, eng, logger)
	return &Feature{service: svc, handler: NewHandler(svc, logger, returnLimit)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "inventory"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service for other features and commands.
func (f *Feature) Service() *Service {
	return f.service
}

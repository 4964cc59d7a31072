package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"equipment-tracker/core/cache"
	"equipment-tracker/core/config"
	"equipment-tracker/core/database"
	"equipment-tracker/core/loader"
	"equipment-tracker/core/logger"
	"equipment-tracker/core/middleware/auth"
	"equipment-tracker/core/middleware/rayid"
	"equipment-tracker/core/pin"
	"equipment-tracker/core/storage"
	"equipment-tracker/feature/integrity"
	"equipment-tracker/feature/inventory"
	"equipment-tracker/feature/inventory/engine"
	"equipment-tracker/feature/inventory/models"
	"equipment-tracker/feature/reports"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "equipment-tracker/docs/swagger"
)

// @title Equipment Tracker API
// @version 1.0
// @description Checkout and return tracking for an AV equipment inventory.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

var autoMigrate bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the equipment tracker server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		if autoMigrate {
			if err := db.AutoMigrate(models.Tables()...); err != nil {
				logg.Fatal("Schema migration failed", zap.Error(err))
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		tokens, err := cache.New(ctx, cfg.Cache)
		cancel()
		if err != nil {
			// Merge tokens still work within one process.
			logg.Warn("Redis unavailable, using in-memory confirmation store", zap.Error(err))
			tokens = cache.NewMemoryStore()
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		eng := engine.New(db, pin.NewHasher(cfg.Pin.Secret), tokens, logg,
			engine.WithTokenTTL(time.Duration(cfg.Cache.ConfirmTTLSeconds)*time.Second))

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimitBytes,
		})

		mgr := loader.NewManager()
		mgr.Register(inventory.NewFeature(db, eng, logg, cfg.Server.ReturnRateLimit))
		mgr.Register(reports.NewFeature(db, client, cfg.Storage, logg))
		mgr.Register(integrity.NewFeature(db, client, cfg.Storage, logg))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("latency", time.Since(start)),
			}
			if err != nil {
				l.Error("Request error", append(fields, zap.Error(err))...)
				return err
			}
			l.Info("Request completed", fields...)
			return nil
		})

		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(cfg.Server.Origins(), ","),
			AllowHeaders: strings.Join([]string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, auth.Header, rayid.Header}, ", "),
		}))

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Get("/health", func(c *fiber.Ctx) error {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(c.Context())
			}
			if err != nil {
				logger.WithRayID(logg, c).Error("Health check failed", zap.Error(err))
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
			}
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// Resolves the caller role; admin routes enforce it themselves.
		app.Use(auth.New(auth.Config{AdminKey: cfg.Server.AdminKey, MasterKey: cfg.Server.MasterKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", mgr.Loaded()))

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	startCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "Run schema migration before serving")
	RootCmd.AddCommand(startCmd)
}

package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"inventory-levels/core/config"
	"inventory-levels/core/loader"
	"inventory-levels/core/logger"
	"inventory-levels/core/middleware/auth"
	"inventory-levels/core/middleware/rayid"
	"inventory-levels/core/reload"

	"inventory-levels/feature/availability"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "inventory-levels/docs/swagger"
)

// @title Inventory Levels API
// @version 1.0
// @description Stock levels of pharmacies and warehouses across base stores.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory levels server",
	Long:  `Loads the inventory from every enabled feed, keeps it fresh on a schedule and serves it over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Feeds, store and coordinator
		rt, err := buildComponents(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to configure inventory feeds", zap.Error(err))
		}

		ctx, stop := context.WithCancel(context.Background())
		defer stop()

		// 4. Initial load; a failure leaves the store empty until the next scheduled reload
		if cfg.Reload.OnStartup {
			if _, err := rt.coordinator.FullReload(ctx); err != nil {
				logg.Warn("Initial reload failed, serving empty inventory", zap.Error(err))
			}
		}

		scheduler := reload.NewScheduler(rt.coordinator, cfg.Reload.Interval(), logg)
		schedulerDone := make(chan struct{})
		go func() {
			defer close(schedulerDone)
			scheduler.Run(ctx)
		}()

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(availability.NewFeature(rt.store, rt.coordinator, cfg.Server, rt.metrics.Handler(), logg))

		// RayID first so every log line can be traced
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Debug("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger and metrics stay public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == availability.MetricsPath
			},
		}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		stop()
		<-schedulerDone
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

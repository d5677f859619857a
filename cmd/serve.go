package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"record-reconciler/core/config"
	"record-reconciler/core/loader"
	"record-reconciler/core/logger"
	"record-reconciler/core/middleware/auth"
	"record-reconciler/core/middleware/rayid"
	"record-reconciler/feature/reconciliation"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve reconciliations over HTTP",
	Long:  `Starts the HTTP server and loads the reconciliation feature.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Build the Fiber app with middleware and features
		app, err := newApp(cfg, logg)
		if err != nil {
			return err
		}

		// 4. Start Server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			errCh <- app.Listen(cfg.Server.Address())
		}()

		// 5. Graceful Shutdown on signal, or bail out if Listen failed
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-c:
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(time.Duration(cfg.Server.ShutdownSeconds) * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

// newApp builds the Fiber application with middleware and every enabled feature.
func newApp(cfg *config.Config, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())

	// 2. Logging Middleware (Zap + RayID)
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		// Log error if happened
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// 3. Auth (no-op when no API key is configured)
	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	// 4. Register and load features
	mgr := loader.NewManager(logg)
	mgr.Register(reconciliation.NewFeature(newSourceLoader(cfg, logg), cfg.Reconcile, cfg.Source, logg))

	if err := mgr.LoadAll(app); err != nil {
		return nil, fmt.Errorf("failed to load features: %w", err)
	}
	return app, nil
}

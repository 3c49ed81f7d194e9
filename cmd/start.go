package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"country-currency/core/loader"
	"country-currency/core/logger"
	"country-currency/core/middleware/metrics"
	"country-currency/core/middleware/rayid"
	"country-currency/feature/integrity"
	"country-currency/feature/status"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "country-currency/docs/swagger"
)

// @title Country Currency API
// @version 1.0
// @description Country data merged with USD exchange rates and estimated GDP.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the country currency server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()
		logg := a.logger
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
			ReadTimeout:           time.Duration(a.cfg.Server.ReadTimeoutSeconds) * time.Second,
			WriteTimeout:          time.Duration(a.cfg.Server.WriteTimeoutSeconds) * time.Second,
		})

		// RayID must be first to trace everything.
		app.Use(rayid.New())
		app.Use(metrics.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
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

		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
		if a.cfg.Server.SwaggerEnabled() {
			app.Get("/swagger/*", swagger.HandlerDefault)
		}

		integritySvc := integrity.NewService(a.store, a.cfg.Storage.Bucket, a.cfg.Storage.Region,
			a.cfg.Artifact.ObjectName, logg, a.db)

		mgr := loader.NewManager()
		mgr.Register(a.countries)
		mgr.Register(status.NewFeature(a.countries.Metadata(), logg))
		mgr.Register(integrity.NewFeature(integritySvc, true))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			errCh <- app.Listen(":" + a.cfg.Server.Port)
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logg.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

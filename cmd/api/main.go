package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"

	"crmapi/docs"
	"crmapi/internal/app"
	"crmapi/internal/config"
	"crmapi/internal/database/migration"
	handlers "crmapi/internal/http/handler"
	"crmapi/internal/http/middleware"
	"crmapi/internal/logger"
	"crmapi/internal/otel"
)

// @title CRM API
// @version 1.0
// @description Leads, deals, contacts, sales reps, team members and reports over a hosted record store.
// @BasePath /
func main() {
	cfg := config.Load()
	logger.Setup(cfg.IsDevelopment(), cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Error().Err(err).Msg("tracing shutdown failed")
		}
	}()

	a, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer a.Close()

	if err := migration.EnsureMigrated(ctx, a.DB, cfg.Database.Host); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate report archive")
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(a.Registry)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register http metrics")
	}

	srv := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    1 << 20,
	})

	srv.Use(otelfiber.Middleware(otelfiber.WithServerName("crmapi")))
	srv.Use(middleware.RequestID())
	srv.Use(middleware.Logger(cfg.Location()))
	srv.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(srv, a.DB, a.Services)
	handlers.RegisterMetrics(srv, a.Registry)

	// Swagger UI with dynamic host and scheme
	srv.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		if err := srv.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting crm api")
	if err := srv.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

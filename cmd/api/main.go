package main

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"phonedrop/internal/config"
	"phonedrop/internal/fetch"
	handlers "phonedrop/internal/http/handler"
	"phonedrop/internal/http/middleware"
	"phonedrop/internal/notify"
	"phonedrop/internal/service"
	"phonedrop/internal/storage"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Destination directory for all received files
	store, err := storage.NewLocal(cfg.SaveDir)
	if err != nil {
		log.Error("failed to open save dir", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Notify.Enabled {
		notifier = notify.NewDesktop(cfg.Notify.AppName)
	}

	reg := prometheus.NewRegistry()
	metrics, err := service.NewMetrics(reg)
	if err != nil {
		log.Error("failed to register metrics", slog.String("error", err.Error()))
		os.Exit(1)
	}
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Error("failed to register metrics", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fetcher := fetch.New(cfg.Fetch)
	svc := service.NewUploadService(store, fetcher, notifier, log, cfg.JPEGQuality, metrics)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.MaxUploadMB << 20,
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())
	app.Use(middleware.Auth(cfg.AuthToken, cfg.AllowedIPs))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, svc, reg)

	addr := ":" + cfg.Port
	log.Info("starting receiver",
		slog.String("addr", addr),
		slog.String("save_dir", store.Dir()))

	if err := app.Listen(addr); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

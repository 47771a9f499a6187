// Package main is the entrypoint for the account API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/accountsvc/accountsvc/internal/cache"
	"github.com/accountsvc/accountsvc/internal/config"
	"github.com/accountsvc/accountsvc/internal/handler"
	"github.com/accountsvc/accountsvc/internal/middleware"
	"github.com/accountsvc/accountsvc/internal/repository"
	"github.com/accountsvc/accountsvc/internal/server"
	"github.com/accountsvc/accountsvc/internal/service"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize Redis when configured. The service works without it:
	// rate limiting is skipped and readiness reports "not configured".
	var cacheClient *cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.New(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error(
				"failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			os.Exit(1)
		}
		logger.Info("connected to Redis")
	}

	// Initialize services
	accountService := service.NewAccountService(repo)

	// Initialize handlers
	h := handler.New()
	healthHandler := newHealthHandler(repo, cacheClient)
	accountHandler := handler.NewAccountHandler(accountService, logger)

	// Setup router
	r := setupRouter(h, healthHandler, accountHandler, cacheClient, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	// Persistence and cache handles are torn down after the HTTP server
	// stops accepting requests.
	srv.OnShutdown("repository", func(ctx context.Context) error {
		repo.Close()
		return nil
	})
	if cacheClient != nil {
		srv.OnShutdown("cache", func(ctx context.Context) error {
			return cacheClient.Close()
		})
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// newHealthHandler wires the health handler without handing it a typed nil
// when Redis is not configured.
func newHealthHandler(repo *repository.Repository, cacheClient *cache.Cache) *handler.HealthHandler {
	if cacheClient == nil {
		return handler.NewHealthHandler(repo, nil)
	}
	return handler.NewHealthHandler(repo, cacheClient)
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	h *handler.Handler,
	healthHandler *handler.HealthHandler,
	accountHandler *handler.AccountHandler,
	cacheClient *cache.Cache,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	// Probes
	r.Get("/health", healthHandler.Health)
	r.Get("/readyz", healthHandler.Readyz)

	// Root info endpoint
	r.Get("/", h.Index)

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  logger,
		Cache:   cacheClient,
		Enabled: cfg.RateLimitEnabled,
		RPS:     cfg.RateLimitRPS,
		Burst:   cfg.RateLimitBurst,
	}

	// Account CRUD. The body-identifier forms mirror the original service
	// contract; the {id} forms are the path-parameter interface the create
	// Location header points at.
	r.Route("/accounts", func(r chi.Router) {
		r.Use(middleware.RateLimitIP(rateLimitCfg))
		r.Use(middleware.RequireJSON)

		r.Post("/", accountHandler.Create)
		r.Get("/all", accountHandler.List)
		r.Get("/", accountHandler.Get)
		r.Get("/{id}", accountHandler.GetByID)
		r.Patch("/", accountHandler.Update)
		r.Delete("/", accountHandler.Delete)
		r.Delete("/{id}", accountHandler.DeleteByID)
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}

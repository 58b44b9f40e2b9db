// Package main is the entrypoint for the ERP gateway, the browser-facing
// REST surface over the ERP gRPC services.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"google.golang.org/grpc"

	"github.com/steelerp/erpclient/internal/cache"
	"github.com/steelerp/erpclient/internal/config"
	"github.com/steelerp/erpclient/internal/grpcclient"
	"github.com/steelerp/erpclient/internal/handler"
	"github.com/steelerp/erpclient/internal/metrics"
	"github.com/steelerp/erpclient/internal/middleware"
	"github.com/steelerp/erpclient/internal/repository"
	"github.com/steelerp/erpclient/internal/server"
	"github.com/steelerp/erpclient/internal/session"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	sessionStore, closeStore, err := openTokenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	conn, err := grpcclient.Dial(cfg.ERPEndpoint)
	if err != nil {
		_ = closeStore(ctx)
		return err
	}

	// Each request brings its own credential; see middleware.Credentials.
	sessions := session.NewManager(nil, session.LogNavigator{Logger: logger}, cfg.LoginPath, logger)
	recorder := metrics.NewInMemory()

	client := grpcclient.New(grpcclient.Options{
		Tokens:    sessions,
		Session:   sessions,
		Logger:    logger,
		Metrics:   recorder,
		Timeout:   cfg.CallTimeout,
		RequestID: middleware.GetRequestID,
	})

	r := setupRouter(cfg, logger, routerDeps{
		facades:      client.Facades(conn),
		sessions:     sessions,
		sessionStore: sessionStore,
		health:       handler.NewHealthHandler(pingerOf(sessionStore), handler.ConnChecker{Conn: conn}),
		metrics:      handler.NewMetricsHandler(recorder),
	})

	srv := server.New(r, server.Config{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)
	srv.OnShutdown("erp_conn", closeConn(conn))
	srv.OnShutdown("token_store", closeStore)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"erp_endpoint", cfg.ERPEndpoint,
		"token_store", cfg.TokenStore,
		"env", cfg.AppEnv,
	)

	return srv.Run(ctx)
}

// openTokenStore builds the configured per-browser session store. The
// returned function releases its connections.
func openTokenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (session.Provider, server.ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.TokenStore {
	case config.TokenStoreMemory:
		logger.Warn("using in-memory token store; sessions are lost on restart")
		return session.NewMemoryProvider(), noop, nil

	case config.TokenStoreRedis:
		c, err := cache.New(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Info("connected to Redis")
		return c.TokenStore(cfg.TokenKeyPrefix, cfg.TokenTTL), func(context.Context) error {
			return c.Close()
		}, nil

	case config.TokenStorePostgres:
		repo, err := repository.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to connect to database",
				slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
				slog.String("database_url", redactURL(cfg.DatabaseURL)),
			)
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		if err := repo.EnsureSchema(ctx); err != nil {
			repo.Close()
			return nil, nil, err
		}
		logger.Info("connected to database")
		return repo.TokenStore(cfg.TokenKeyPrefix), func(context.Context) error {
			repo.Close()
			return nil
		}, nil

	default:
		path := cfg.GetTokenFile()
		logger.Info("using file token store", "path", path)
		return session.NewFileStore(path), noop, nil
	}
}

// pingerOf returns the store as a health checker when it can be pinged.
func pingerOf(store session.Provider) handler.HealthChecker {
	if p, ok := store.(handler.HealthChecker); ok {
		return p
	}
	return nil
}

func closeConn(conn *grpc.ClientConn) server.ShutdownFunc {
	return func(context.Context) error {
		return conn.Close()
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
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

type routerDeps struct {
	facades      *grpcclient.Facades
	sessions     *session.Manager
	sessionStore session.Provider
	health       *handler.HealthHandler
	metrics      *handler.MetricsHandler
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(cfg *config.Config, logger *slog.Logger, deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment()}))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.Credentials(deps.sessionStore))

	h := handler.New()
	loginPath := deps.sessions.LoginPath()

	r.Get("/", h.Index)
	r.Get("/healthz", deps.health.Healthz)
	r.Get("/readyz", deps.health.Readyz)
	r.Get("/metrics", deps.metrics.Metrics)

	sessionHandler := handler.NewSessionHandler(deps.sessions, deps.sessionStore, !cfg.IsDevelopment(), logger)
	r.Post("/session", sessionHandler.Login)
	r.Delete("/session", sessionHandler.Logout)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/invoices", handler.NewInvoiceHandler(deps.facades.Invoices, loginPath, logger).Routes)
		r.Route("/customers", handler.NewCustomerHandler(deps.facades.Customers, loginPath, logger).Routes)
		r.Route("/products", handler.NewProductHandler(deps.facades.Products, loginPath, logger).Routes)
	})

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

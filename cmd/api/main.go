package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/steel-suvidha/marketplace-api/internal/adapter"
	"github.com/steel-suvidha/marketplace-api/internal/api/middleware"
	"github.com/steel-suvidha/marketplace-api/internal/api/rest"
	"github.com/steel-suvidha/marketplace-api/internal/api/server"
	"github.com/steel-suvidha/marketplace-api/internal/catalog"
	"github.com/steel-suvidha/marketplace-api/internal/config"
	"github.com/steel-suvidha/marketplace-api/internal/identity"
	"github.com/steel-suvidha/marketplace-api/internal/logger"
	"github.com/steel-suvidha/marketplace-api/internal/notify"
	"github.com/steel-suvidha/marketplace-api/internal/providers/jetstream"
	"github.com/steel-suvidha/marketplace-api/internal/quote"
	"github.com/steel-suvidha/marketplace-api/internal/ratelimit"
	"github.com/steel-suvidha/marketplace-api/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "marketplace-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Steel Marketplace API")

	// Connect to database
	db, err := store.Open(ctx, cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)
	defer func() {
		if err := dataStore.Close(); err != nil {
			logger.Error(err, zap.String("component", "store"))
		}
	}()

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Event bus; without a NATS url events are only logged
	var notifier notify.Notifier
	if cfg.NATS.URL != "" {
		publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		notifier = notify.NewDispatcher(notify.Config{
			WorkerPoolSize:  cfg.Notify.WorkerPoolSize,
			WorkerQueueSize: cfg.Notify.WorkerQueueSize,
		}, publisher)
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		notifier = notify.NewNoop()
		logger.WarnCtx(ctx, "NATS url not configured, marketplace events will not be published")
	}
	defer notifier.Close()

	// Login throttling, shared through Redis when configured
	var redisClient adapter.RedisClient
	if cfg.RateLimit.RedisAddr != "" {
		redisClient = adapter.NewRedisClient(cfg.RateLimit.RedisAddr, cfg.RateLimit.RedisPassword, cfg.RateLimit.RedisDB)
	}
	loginLimiter := ratelimit.NewLimiter(cfg.RateLimit, redisClient)
	defer func() {
		if err := loginLimiter.Close(); err != nil {
			logger.Error(err, zap.String("component", "ratelimit"))
		}
	}()

	// Services
	tokens := identity.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if !tokens.Enabled() {
		logger.WarnCtx(ctx, "JWT secret not configured, login will not issue tokens")
	}
	identityService := identity.NewService(dataStore, clock, tokens)
	catalogService := catalog.NewService(dataStore)
	engine := quote.NewEngine(dataStore, catalog.NewMatcher(dataStore), notifier, clock)

	// Create and start server
	handler := rest.NewHandler(cfg.Debug, identityService, catalogService, engine, dataStore)
	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		BasePath:     cfg.Server.BasePath,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}, handler, rest.RouteConfig{
		Auth: middleware.AuthConfig{
			Tokens:  tokens,
			APIKeys: cfg.Auth.APIKeys,
		},
		LoginLimiter: loginLimiter,
	})

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}

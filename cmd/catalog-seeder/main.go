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

	"github.com/steel-suvidha/marketplace-api/internal/catalog"
	"github.com/steel-suvidha/marketplace-api/internal/config"
	"github.com/steel-suvidha/marketplace-api/internal/logger"
	"github.com/steel-suvidha/marketplace-api/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	dryRun     = flag.Bool("dry-run", false, "Only report how many master entries would be seeded")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadSeederConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "catalog-seeder",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *dryRun {
		logger.InfoCtx(ctx, "Dry run, nothing written",
			zap.Int("master_entries", len(catalog.MasterCatalog())),
		)
		return
	}

	db, err := store.Open(ctx, cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	dataStore := store.NewPGStore(db)
	defer func() {
		_ = dataStore.Close()
	}()

	result, err := catalog.NewService(dataStore).SeedMaster(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("component", "catalog-seeder"))
		return
	}

	logger.InfoCtx(ctx, "Master catalog seeding completed",
		zap.Int("added", result.Added),
		zap.Int("skipped", result.Skipped),
		zap.Int("processed", result.Processed),
	)
}

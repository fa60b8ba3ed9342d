package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/steel-suvidha/marketplace-api/internal/config"
	"github.com/steel-suvidha/marketplace-api/internal/logger"
)

const defaultConnectTimeout = 30 * time.Second

// Open connects to PostgreSQL, retrying with exponential backoff until
// cfg.ConnectTimeout elapses. A read replica is registered through dbresolver
// when database.read_host is configured.
func Open(ctx context.Context, cfg config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if debug {
		logLevel = gormlogger.Info
	}
	gormCfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = timeout

	var db *gorm.DB
	operation := func() error {
		conn, err := gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
		if err != nil {
			return err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return backoff.Permanent(err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return err
		}
		db = conn
		return nil
	}
	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Database not ready, retrying",
			zap.Error(err),
			zap.Duration("retry_in", next))
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if readDSN := cfg.ReadDSN(); readDSN != "" {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(readDSN)},
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("failed to register read replica: %w", err)
		}
		logger.InfoCtx(ctx, "Registered read replica", zap.String("host", cfg.ReadHost))
	}

	if err := ConfigureConnectionPool(db, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime, cfg.ConnMaxIdleTime); err != nil {
		return nil, err
	}

	return db, nil
}

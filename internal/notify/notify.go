package notify

//go:generate mockgen -source=notify.go -destination=../mocks/notifier.go -package=mocks -mock_names=Notifier=MockNotifier

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/steel-suvidha/marketplace-api/internal/domain"
	"github.com/steel-suvidha/marketplace-api/internal/logger"
	"github.com/steel-suvidha/marketplace-api/internal/messaging"
)

// Notifier delivers marketplace events to their recipients.
// Notify never blocks on delivery and never fails the caller.
type Notifier interface {
	// Notify schedules the events for delivery
	Notify(ctx context.Context, events ...*domain.MarketEvent)
	// Close waits for scheduled deliveries and releases the publisher
	Close()
}

// Config holds the dispatcher configuration
type Config struct {
	WorkerPoolSize  int
	WorkerQueueSize int
	// InitialInterval and MaxElapsedTime bound the publish retries
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
}

// dispatcher fans events out on a worker pool
type dispatcher struct {
	publisher messaging.Publisher
	pool      pond.Pool
	config    Config
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewDispatcher creates a notifier that publishes through the given publisher
func NewDispatcher(cfg Config, publisher messaging.Publisher) Notifier {
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = 8
	}
	if cfg.WorkerQueueSize <= 0 {
		cfg.WorkerQueueSize = 1000
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = 200 * time.Millisecond
	}
	if cfg.MaxElapsedTime <= 0 {
		cfg.MaxElapsedTime = 30 * time.Second
	}

	return &dispatcher{
		publisher: publisher,
		pool: pond.NewPool(
			cfg.WorkerPoolSize,
			pond.WithQueueSize(cfg.WorkerQueueSize),
			pond.WithNonBlocking(true),
		),
		config: cfg,
	}
}

// Notify schedules each event on the pool
func (d *dispatcher) Notify(ctx context.Context, events ...*domain.MarketEvent) {
	if d.closed.Load() {
		logger.WarnCtx(ctx, "Notifier closed, dropping events", zap.Int("count", len(events)))
		return
	}

	// Deliveries outlive the request that triggered them
	deliveryCtx := context.WithoutCancel(ctx)
	for _, event := range events {
		if event == nil {
			continue
		}
		err := d.pool.Go(func() {
			if err := d.publishWithRetry(deliveryCtx, event); err != nil {
				logger.ErrorCtx(deliveryCtx, err,
					zap.String("eventType", string(event.EventType)),
					zap.String("quoteId", event.QuoteID.String()),
					zap.String("recipientId", event.RecipientID.String()),
				)
			}
		})
		if err != nil {
			// Queue full or pool stopped
			logger.WarnCtx(ctx, "Dropping event, notifier cannot take it",
				zap.Error(err),
				zap.String("eventType", string(event.EventType)),
				zap.String("quoteId", event.QuoteID.String()),
				zap.String("recipientId", event.RecipientID.String()),
			)
		}
	}
}

// publishWithRetry publishes the event with exponential backoff
func (d *dispatcher) publishWithRetry(ctx context.Context, event *domain.MarketEvent) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.config.InitialInterval
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = d.config.MaxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	var attemptCount int
	operation := func() error {
		return d.publisher.PublishEvent(ctx, event)
	}
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Event publish failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return fmt.Errorf("failed to publish %s after %d attempts: %w", event.EventType, attemptCount+1, err)
	}
	return nil
}

// Close stops the pool, waits for queued deliveries and closes the publisher
func (d *dispatcher) Close() {
	d.closeOnce.Do(func() {
		d.closed.Store(true)

		logger.Info("Shutting down notifier")
		d.pool.StopAndWait()
		d.publisher.Close()
	})
}

// noop discards events. It is used when no broker is configured.
type noop struct{}

// NewNoop creates a notifier that only logs
func NewNoop() Notifier {
	return noop{}
}

func (noop) Notify(ctx context.Context, events ...*domain.MarketEvent) {
	for _, event := range events {
		if event == nil {
			continue
		}
		logger.DebugCtx(ctx, "Event bus disabled, skipping event",
			zap.String("eventType", string(event.EventType)),
			zap.String("recipientId", event.RecipientID.String()),
		)
	}
}

func (noop) Close() {}

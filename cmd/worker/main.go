package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ralungei/fusion-procurement/pkg/app"
	"github.com/ralungei/fusion-procurement/pkg/cache"
	"github.com/ralungei/fusion-procurement/pkg/config"
	"github.com/ralungei/fusion-procurement/pkg/database"
	"github.com/ralungei/fusion-procurement/pkg/events"
	"github.com/ralungei/fusion-procurement/pkg/logger"
	"github.com/ralungei/fusion-procurement/pkg/telemetry"
	appsvcs "github.com/ralungei/fusion-procurement/services/procurement/application/services"
	procurementEvents "github.com/ralungei/fusion-procurement/services/procurement/domain/events"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(pool.DB(), cfg.ServiceName, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	// The worker never calls the ERP backend; Fusion stays nil.
	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig, appsvcs.New(appConfig)); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application, svcs *appsvcs.Services) error {
	handlers := map[string]func(context.Context, *message.Message) error{
		procurementEvents.TopicRequisitionLineFailed:  handleRequisitionLineFailed(a, svcs),
		procurementEvents.TopicSupplierRatingRecorded: handleSupplierRatingRecorded(a, svcs),
		procurementEvents.TopicRequisitionSubmitted:   handleRequisitionSubmitted(a),
	}

	topics := make([]string, 0, len(handlers))
	for topic, handler := range handlers {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func() {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
		topics = append(topics, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleRequisitionLineFailed records the orphaned header for remediation.
// Handlers must be idempotent: EventBus retries up to 3x on failure. The
// register ignores an event id it has already stored.
func handleRequisitionLineFailed(a *app.Application, svcs *appsvcs.Services) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[procurementEvents.RequisitionLineFailedEvent](msg)
		if err != nil {
			return err
		}
		if err := svcs.Orphans.RecordLineFailure(ctx, evt); err != nil {
			return err
		}
		a.Logger.WarnContext(ctx, "requisition header without line",
			"requisition_header_id", evt.RequisitionHeaderID,
			"item_id", evt.ItemID,
			"failure_status", evt.FailureStatus,
		)
		return nil
	}
}

// handleSupplierRatingRecorded drops the cached rating summary so the next
// read aggregates the new rating.
func handleSupplierRatingRecorded(a *app.Application, svcs *appsvcs.Services) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[procurementEvents.SupplierRatingRecordedEvent](msg)
		if err != nil {
			return err
		}
		if err := svcs.Ratings.Invalidate(ctx, models.ID(evt.SupplierPartyID)); err != nil {
			// Summaries expire on their own; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "rating summary invalidation failed",
				"supplier_party_id", evt.SupplierPartyID, "error", err)
		}
		return nil
	}
}

// handleRequisitionSubmitted logs completed submissions for audit.
func handleRequisitionSubmitted(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.Decode[procurementEvents.RequisitionSubmittedEvent](msg)
		if err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "requisition submitted",
			"requisition_header_id", evt.RequisitionHeaderID,
			"requisition_line_id", evt.RequisitionLineID,
			"preparer_id", evt.PreparerID,
		)
		return nil
	}
}

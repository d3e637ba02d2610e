// Package events is the PostgreSQL-backed pub/sub bus that carries requisition
// and rating events from the API process to the worker.
//
// The bus shares the process's database pool. All instances sharing
// SERVICE_NAME form one consumer group, so each message is handled once.
// Handlers must be idempotent: a failing handler is retried three times with
// exponential backoff and then Nacked.
//
// Trace context travels in message metadata, so a worker span continues the
// API request that published the event.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ralungei/fusion-procurement/pkg/logger"
)

const (
	maxRetries      = 3
	retryBaseDelay  = time.Second
	shutdownTimeout = 30 * time.Second
	forwarderTopic  = "_forwarder_queue"
	forwarderGroup  = "forwarder-consumer"
)

// Publisher is the publish side of the bus. Application services depend on
// this rather than on *EventBus.
type Publisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// EventBus is a Watermill SQL transport over Postgres.
type EventBus struct {
	publisher    message.Publisher // direct, or wrapped in a forwarder envelope
	subscriber   *watermillsql.Subscriber
	fwd          *forwarder.Forwarder
	db           *sql.DB
	log          logger.Logger
	wlog         watermill.LoggerAdapter
	wg           sync.WaitGroup
	useForwarder bool
}

// NewEventBus publishes and subscribes over db. serviceName names the
// consumer group. The caller keeps ownership of db.
func NewEventBus(db *sql.DB, serviceName string, log logger.Logger) (*EventBus, error) {
	return newEventBus(db, serviceName, log, false)
}

// NewEventBusWithForwarder routes every Publish through a durable outbox
// topic; StartForwarder must be called to move messages to their real topics.
func NewEventBusWithForwarder(db *sql.DB, serviceName string, log logger.Logger) (*EventBus, error) {
	return newEventBus(db, serviceName, log, true)
}

func newEventBus(db *sql.DB, serviceName string, log logger.Logger, useForwarder bool) (*EventBus, error) {
	q := &EventBus{db: db, log: log, wlog: &slogAdapter{log: log}, useForwarder: useForwarder}

	pub, err := watermillsql.NewPublisher(db, publisherConfig(true), q.wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}
	q.publisher = q.wrap(pub)

	sub, err := watermillsql.NewSubscriber(db, subscriberConfig(serviceName+"-consumer"), q.wlog)
	if err != nil {
		_ = pub.Close()
		return nil, fmt.Errorf("events: new subscriber: %w", err)
	}
	q.subscriber = sub
	return q, nil
}

func publisherConfig(autoInit bool) watermillsql.PublisherConfig {
	return watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: autoInit,
	}
}

func subscriberConfig(group string) watermillsql.SubscriberConfig {
	return watermillsql.SubscriberConfig{
		SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    group,
	}
}

// wrap envelopes messages for the forwarder queue when forwarder mode is on.
func (q *EventBus) wrap(pub message.Publisher) message.Publisher {
	if !q.useForwarder {
		return pub
	}
	return forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: forwarderTopic})
}

// StartForwarder runs the daemon that moves messages from the outbox topic to
// their target topics. It returns once the daemon is running.
func (q *EventBus) StartForwarder(ctx context.Context) error {
	if !q.useForwarder {
		return fmt.Errorf("events: StartForwarder called on non-forwarder EventBus")
	}
	if q.fwd != nil {
		return fmt.Errorf("events: forwarder already started")
	}

	fwdSub, err := watermillsql.NewSubscriber(q.db, subscriberConfig(forwarderGroup), q.wlog)
	if err != nil {
		return fmt.Errorf("events: new forwarder subscriber: %w", err)
	}
	targetPub, err := watermillsql.NewPublisher(q.db, publisherConfig(true), q.wlog)
	if err != nil {
		_ = fwdSub.Close()
		return fmt.Errorf("events: new forwarder target publisher: %w", err)
	}
	fwd, err := forwarder.NewForwarder(fwdSub, targetPub, q.wlog, forwarder.Config{ForwarderTopic: forwarderTopic})
	if err != nil {
		_ = targetPub.Close()
		_ = fwdSub.Close()
		return fmt.Errorf("events: create forwarder: %w", err)
	}
	q.fwd = fwd

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.log.InfoContext(ctx, "events: forwarder started")
		if err := fwd.Run(ctx); err != nil {
			q.log.ErrorContext(ctx, "events: forwarder stopped with error", "error", err)
			return
		}
		q.log.InfoContext(ctx, "events: forwarder stopped")
	}()

	select {
	case <-fwd.Running():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: context cancelled waiting for forwarder: %w", ctx.Err())
	}
}

// NewTxPublisher returns a publisher bound to tx, so a row and the event
// announcing it commit together. Tables already exist once the bus is up.
func (q *EventBus) NewTxPublisher(tx *sql.Tx) (message.Publisher, error) {
	pub, err := watermillsql.NewPublisher(tx, publisherConfig(false), q.wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new tx publisher: %w", err)
	}
	return q.wrap(pub), nil
}

// NewMessage encodes payload as JSON with the event metadata the worker reads.
func NewMessage(eventID string, version int, payload any) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("events: marshal payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("event_id", eventID)
	msg.Metadata.Set("event_version", fmt.Sprint(version))
	return msg, nil
}

// Decode unmarshals a message payload into T.
func Decode[T any](msg *message.Message) (T, error) {
	var v T
	if err := json.Unmarshal(msg.Payload, &v); err != nil {
		return v, fmt.Errorf("events: decode %s: %w", msg.UUID, err)
	}
	return v, nil
}

// Publish sends one or more messages to the given topic.
// OTel trace context from ctx is injected into each message's metadata so
// the receiving subscriber can restore the trace and continue the span tree.
func (q *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
	if err := q.publisher.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe registers handler to process messages from topic asynchronously.
// The handler receives a context with the publisher's OTel trace restored from
// message metadata, enabling distributed tracing across service boundaries.
//
// Ack/Nack is managed by the bus:
//   - handler returns nil   → Ack (message consumed)
//   - handler returns error → retried up to 3× with exponential backoff (1s, 2s, 4s)
//   - all retries exhausted → Nack + error forwarded to the returned channel
//
// The returned error channel is buffered (capacity 100). Callers must drain it:
//
//	errCh, err := bus.Subscribe(ctx, topic, handler)
//	go func() { for err := range errCh { log.ErrorContext(ctx, "subscriber error", "error", err) } }()
//
// All in-flight handlers complete before Close() returns.
func (q *EventBus) Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error) {
	ch, err := q.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, 100)
	propagator := otel.GetTextMapPropagator()

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(errCh)

		for msg := range ch {
			// Restore the publisher's trace context from message metadata.
			carrier := propagation.MapCarrier{}
			for k, v := range msg.Metadata {
				carrier[k] = v
			}
			msgCtx := propagator.Extract(ctx, carrier)

			if err := retryWithBackoff(msgCtx, msg, handler, maxRetries, retryBaseDelay, q.log); err != nil {
				msg.Nack()
				select {
				case errCh <- err:
				default:
					q.log.ErrorContext(msgCtx, "events: error channel full, dropping error",
						"error", err, "topic", topic)
				}
			} else {
				msg.Ack()
			}
		}
	}()

	return errCh, nil
}

// retryWithBackoff calls handler up to maxRetries times with exponential backoff.
// Returns nil on first success; returns the last error after all retries exhaust.
func retryWithBackoff(
	ctx context.Context,
	msg *message.Message,
	handler func(context.Context, *message.Message) error,
	maxRetries int,
	baseDelay time.Duration,
	log logger.Logger,
) error {
	delay := baseDelay
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if attempt < maxRetries {
			log.WarnContext(ctx, "events: handler failed, retrying",
				"attempt", attempt,
				"max_retries", maxRetries,
				"next_delay", delay,
				"error", err,
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
	}
	return fmt.Errorf("events: handler failed after %d retries: %w", maxRetries, err)
}

// Ping checks the EventBus database connection health.
func (q *EventBus) Ping(ctx context.Context) error {
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops the subscriber and forwarder, waits up to shutdownTimeout for
// in-flight handlers, then closes the publisher. The database pool is left
// open for its owner.
func (q *EventBus) Close() error {
	if err := q.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}
	if q.fwd != nil {
		if err := q.fwd.Close(); err != nil {
			return fmt.Errorf("events: close forwarder: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		q.log.Error("events: timed out waiting for in-flight handlers to complete")
	}

	if err := q.publisher.Close(); err != nil {
		return fmt.Errorf("events: close publisher: %w", err)
	}
	return nil
}

// slogAdapter bridges logger.Logger to watermill.LoggerAdapter.
type slogAdapter struct{ log logger.Logger }

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}
func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}

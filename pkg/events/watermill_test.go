package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ralungei/fusion-procurement/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func nopLogger() logger.Logger {
	return logger.Nop()
}

// TestRetryWithBackoff_SuccessOnFirstAttempt verifies no retry occurs on success.
func TestRetryWithBackoff_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

// TestRetryWithBackoff_SuccessAfterRetries verifies retry continues until success.
func TestRetryWithBackoff_SuccessAfterRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("transient error")
		}
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err != nil {
		t.Fatalf("expected nil after eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

// TestRetryWithBackoff_ExhaustsRetries verifies an error is returned after all retries fail.
func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("permanent error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if calls != maxRetries {
		t.Errorf("expected %d calls, got %d", maxRetries, calls)
	}
}

// TestRetryWithBackoff_ContextCancelled verifies retry stops when context is canceled.
func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(ctx, msg, handler, maxRetries, time.Second, nopLogger())
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	// Should have called handler once then exited on ctx.Done
	if calls != 1 {
		t.Errorf("expected 1 call before context cancel, got %d", calls)
	}
}

// TestStartForwarder_NonForwarderMode verifies StartForwarder returns an error
// when called on an EventBus not configured with forwarder mode.
func TestStartForwarder_NonForwarderMode(t *testing.T) {
	bus := &EventBus{useForwarder: false}
	err := bus.StartForwarder(context.Background())
	if err == nil {
		t.Fatal("expected error for non-forwarder EventBus")
	}
}

// TestStartForwarder_AlreadyStarted verifies a second StartForwarder is refused.
func TestStartForwarder_AlreadyStarted(t *testing.T) {
	bus := &EventBus{useForwarder: true, fwd: &forwarder.Forwarder{}}
	if err := bus.StartForwarder(context.Background()); err == nil {
		t.Fatal("expected error when forwarder already running")
	}
}

// TestWrap_RoutesThroughOutboxInForwarderMode verifies forwarder mode sends
// messages to the outbox topic instead of the target topic.
func TestWrap_RoutesThroughOutboxInForwarderMode(t *testing.T) {
	tests := []struct {
		name         string
		useForwarder bool
		wantTopic    string
	}{
		{"direct", false, "requisition.line_failed"},
		{"forwarder", true, forwarderTopic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 1}, watermill.NopLogger{})
			defer pubSub.Close() //nolint:errcheck

			ch, err := pubSub.Subscribe(ctx, tt.wantTopic)
			if err != nil {
				t.Fatalf("subscribe: %v", err)
			}
			bus := &EventBus{useForwarder: tt.useForwarder}
			if err := bus.wrap(pubSub).Publish("requisition.line_failed", message.NewMessage("m-1", []byte(`{}`))); err != nil {
				t.Fatalf("publish: %v", err)
			}

			select {
			case msg := <-ch:
				msg.Ack()
			case <-ctx.Done():
				t.Fatalf("no message on %s", tt.wantTopic)
			}
		})
	}
}

type lineFailed struct {
	HeaderID int64  `json:"header_id"`
	Item     string `json:"item"`
}

func TestNewMessage_DecodeRoundTrip(t *testing.T) {
	msg, err := NewMessage("evt-1", 2, lineFailed{HeaderID: 300100, Item: "AS54888"})
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	if msg.Metadata.Get("event_id") != "evt-1" || msg.Metadata.Get("event_version") != "2" {
		t.Fatalf("unexpected metadata: %v", msg.Metadata)
	}

	got, err := Decode[lineFailed](msg)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.HeaderID != 300100 || got.Item != "AS54888" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestDecode_InvalidPayload(t *testing.T) {
	msg := message.NewMessage("id", []byte("{not json"))
	if _, err := Decode[lineFailed](msg); err == nil {
		t.Fatal("expected decode error")
	}
}

// TestOTelPropagation_InjectExtract verifies that trace context injected via
// the same propagation path used by Publish/Subscribe round-trips correctly.
func TestOTelPropagation_InjectExtract(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "publish-span")
	defer span.End()
	wantTraceID := span.SpanContext().TraceID()

	// Simulate Publish: inject trace context into message metadata.
	msg := message.NewMessage("id", nil)
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}

	// Simulate Subscribe: extract trace context from message metadata.
	extractCarrier := propagation.MapCarrier{}
	for k, v := range msg.Metadata {
		extractCarrier[k] = v
	}
	msgCtx := otel.GetTextMapPropagator().Extract(context.Background(), extractCarrier)

	gotSpan := trace.SpanFromContext(msgCtx)
	if !gotSpan.SpanContext().IsValid() {
		t.Fatal("extracted span context is not valid")
	}
	if gotSpan.SpanContext().TraceID() != wantTraceID {
		t.Errorf("trace ID mismatch: want %s, got %s", wantTraceID, gotSpan.SpanContext().TraceID())
	}
}

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/ralungei/fusion-procurement/pkg/config"
)

func newTestLogger(buf *bytes.Buffer) Logger {
	return NewWithWriter(&config.Config{LogLevel: "debug", ServiceName: "fusion-procurement"}, buf)
}

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	return tp
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var m map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &m); err != nil {
		t.Fatalf("failed to parse log line %q: %v", lines[len(lines)-1], err)
	}
	return m
}

func TestErrorContext_InjectsTraceAndService(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	var buf bytes.Buffer
	log := newTestLogger(&buf)

	ctx, span := otel.Tracer("test").Start(context.Background(), "search")
	defer span.End()

	log.ErrorContext(ctx, "variant query failed", "error", errors.New("boom"), "variant", "BRAKE")

	entry := lastEntry(t, &buf)
	if _, ok := entry["trace_id"]; !ok {
		t.Error("expected trace_id")
	}
	if entry["service"] != "fusion-procurement" {
		t.Errorf("expected service attribute, got %v", entry["service"])
	}
	if entry["variant"] != "BRAKE" {
		t.Errorf("expected variant=BRAKE, got %v", entry["variant"])
	}
}

func TestInfoContext_NoSpan(t *testing.T) {
	var buf bytes.Buffer
	newTestLogger(&buf).InfoContext(context.Background(), "no span")

	entry := lastEntry(t, &buf)
	if _, ok := entry["trace_id"]; ok {
		t.Error("trace_id should not be present without an active span")
	}
}

func TestWith_BindsAttributes(t *testing.T) {
	var buf bytes.Buffer
	newTestLogger(&buf).With("component", "supplier_join").Warn("supplier dropped")

	entry := lastEntry(t, &buf)
	if entry["component"] != "supplier_join" {
		t.Errorf("expected component attribute, got %v", entry["component"])
	}
}

func TestMiddleware_LogsRoutePatternAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(Middleware(log))
	r.Get("/api/suppliers/{supplierPartyId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/suppliers/42", http.NoBody))

	entry := lastEntry(t, &buf)
	if entry["route"] != "/api/suppliers/{supplierPartyId}" {
		t.Errorf("unexpected route: %v", entry["route"])
	}
	if entry["status"] != float64(http.StatusNotFound) {
		t.Errorf("unexpected status: %v", entry["status"])
	}
	if _, ok := entry["request_id"]; !ok {
		t.Error("expected request_id")
	}
}

func TestRecovery_Returns500(t *testing.T) {
	var buf bytes.Buffer
	h := Recovery(newTestLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if entry := lastEntry(t, &buf); entry["msg"] != "panic recovered" {
		t.Errorf("unexpected log message: %v", entry["msg"])
	}
}

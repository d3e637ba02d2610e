package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ralungei/fusion-procurement/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

func serveHealth(t *testing.T, checks ...httpx.HealthCheck) (int, map[string]string) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks...).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr.Code, resp
}

func TestHealthHandler(t *testing.T) {
	down := errors.New("down")
	tests := []struct {
		name        string
		db, redis   error
		bus         error
		wantStatus  int
		wantOverall string
		unreachable []string
	}{
		{"all healthy", nil, nil, nil, http.StatusOK, "ok", nil},
		{"database down", down, nil, nil, http.StatusServiceUnavailable, "degraded", []string{"database"}},
		{"redis down", nil, down, nil, http.StatusServiceUnavailable, "degraded", []string{"redis"}},
		{"event bus down", nil, nil, down, http.StatusServiceUnavailable, "degraded", []string{"event_bus"}},
		{"all down", down, down, down, http.StatusServiceUnavailable, "degraded", []string{"database", "redis", "event_bus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := serveHealth(t,
				httpx.HealthCheck{Name: "database", Checker: &stubChecker{err: tt.db}},
				httpx.HealthCheck{Name: "redis", Checker: &stubChecker{err: tt.redis}},
				httpx.HealthCheck{Name: "event_bus", Checker: &stubChecker{err: tt.bus}},
			)
			if code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, code)
			}
			if resp["status"] != tt.wantOverall {
				t.Errorf("status: got %q, want %q", resp["status"], tt.wantOverall)
			}
			for _, name := range tt.unreachable {
				if resp[name] != "unreachable" {
					t.Errorf("%s: got %q, want unreachable", name, resp[name])
				}
			}
		})
	}
}

func TestHealthHandler_SkipsNilChecker(t *testing.T) {
	code, resp := serveHealth(t, httpx.HealthCheck{Name: "redis"})
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if _, ok := resp["redis"]; ok {
		t.Errorf("nil checker should not be reported: %+v", resp)
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	httpx.HealthHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json; charset=utf-8")
	}
}

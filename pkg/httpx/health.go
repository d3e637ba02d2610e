package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any dependency with a Ping method
// (Database, RedisClient and EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthCheck names one dependency probed by the health endpoint.
type HealthCheck struct {
	Name    string
	Checker HealthChecker
}

// HealthHandler probes every check and reports "degraded" with 503 if any
// fails. The body is flat: {"status": "ok", "<name>": "ok"|"unreachable"}.
// The ERP backend is not probed; it is reported per request instead.
func HealthHandler(checks ...HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := map[string]string{"status": "ok"}
		for _, c := range checks {
			if c.Checker == nil {
				continue
			}
			if err := c.Checker.Ping(ctx); err != nil {
				resp["status"] = "degraded"
				resp[c.Name] = "unreachable"
				continue
			}
			resp[c.Name] = "ok"
		}

		status := http.StatusOK
		if resp["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}

// Package fusion is the HTTP client for the ERP REST backend. It attaches the
// credential for the requested tier, applies a per-call timeout, bounds the
// number of in-flight calls, and turns every non-success into a *Failure.
// It never retries; callers decide what a Failure means.
package fusion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/semaphore"

	"github.com/ralungei/fusion-procurement/pkg/config"
	"github.com/ralungei/fusion-procurement/pkg/logger"
)

const (
	userAgent      = "fusion-procurement/1.0"
	maxResponseLen = 16 << 20
)

// Tier selects which credential a call carries.
type Tier int

const (
	TierRead Tier = iota
	TierWrite
)

func (t Tier) String() string {
	if t == TierWrite {
		return "write"
	}
	return "read"
}

// Options configures a Client.
type Options struct {
	BaseURL     string
	ReadAuth    string
	WriteAuth   string
	Timeout     time.Duration
	MaxInFlight int64
	// HTTPClient overrides the instrumented default; tests pass srv.Client().
	HTTPClient *http.Client
}

// Client executes single calls against the backend.
type Client struct {
	base     *url.URL
	auth     map[Tier]string
	timeout  time.Duration
	http     *http.Client
	inFlight *semaphore.Weighted
	log      logger.Logger

	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewClient validates opts and returns a ready Client.
func NewClient(opts Options, log logger.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("fusion: invalid base url %q", opts.BaseURL)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxInFlight <= 0 {
		opts.MaxInFlight = 16
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	meter := otel.Meter("github.com/ralungei/fusion-procurement/pkg/fusion")
	requests, err := meter.Int64Counter("fusion.client.requests",
		metric.WithDescription("Backend calls by method, tier and outcome"))
	if err != nil {
		return nil, fmt.Errorf("fusion: requests counter: %w", err)
	}
	duration, err := meter.Float64Histogram("fusion.client.duration",
		metric.WithDescription("Backend call latency"), metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("fusion: duration histogram: %w", err)
	}

	return &Client{
		base:     base,
		auth:     map[Tier]string{TierRead: opts.ReadAuth, TierWrite: opts.WriteAuth},
		timeout:  opts.Timeout,
		http:     hc,
		inFlight: semaphore.NewWeighted(opts.MaxInFlight),
		log:      log,
		requests: requests,
		duration: duration,
	}, nil
}

// NewFromConfig builds a Client from the process configuration.
func NewFromConfig(cfg *config.Config, log logger.Logger) (*Client, error) {
	return NewClient(Options{
		BaseURL:     cfg.FusionBaseURL,
		ReadAuth:    cfg.FusionAuthRead,
		WriteAuth:   cfg.FusionAuthWrite,
		Timeout:     cfg.FusionTimeout,
		MaxInFlight: cfg.FusionMaxInFlight,
	}, log)
}

// BaseURL returns the backend origin the client talks to.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Get issues a GET call.
func (c *Client) Get(ctx context.Context, path string, tier Tier) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, path, nil, tier)
}

// Post issues a POST call with body encoded as JSON.
func (c *Client) Post(ctx context.Context, path string, body any, tier Tier) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, path, body, tier)
}

// Request performs one call and returns the raw JSON body of a 2xx response.
// path is either relative to the base URL or an absolute resource locator on
// the same host, as returned in "self" links. Any error is a *Failure.
func (c *Client) Request(ctx context.Context, method, path string, body any, tier Tier) (json.RawMessage, error) {
	target, err := c.resolve(path)
	if err != nil {
		return nil, transportFailure(method, path, err, false)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, transportFailure(method, path, fmt.Errorf("encode body: %w", err), false)
		}
		reader = bytes.NewReader(payload)
	}

	// The per-call timeout starts once a slot is held; queueing is bounded
	// only by the caller's context.
	if err := c.inFlight.Acquire(ctx, 1); err != nil {
		return nil, c.record(ctx, method, tier, time.Now(), transportFailure(method, path, err, errors.Is(err, context.DeadlineExceeded)))
	}
	defer c.inFlight.Release(1)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, transportFailure(method, path, err, false)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.auth[tier])

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		timeout := errors.Is(err, context.DeadlineExceeded) || isTimeout(err)
		return nil, c.record(ctx, method, tier, start, transportFailure(method, path, err, timeout))
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseLen))
	if err != nil {
		return nil, c.record(ctx, method, tier, start, transportFailure(method, path, fmt.Errorf("read body: %w", err), errors.Is(err, context.DeadlineExceeded)))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.record(ctx, method, tier, start, backendFailure(method, path, resp.StatusCode, data))
	}

	c.observe(ctx, method, tier, start, resp.StatusCode)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return json.RawMessage(data), nil
}

func (c *Client) resolve(path string) (string, error) {
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return c.base.String() + path, nil
	}
	u, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse locator: %w", err)
	}
	if !strings.EqualFold(u.Host, c.base.Host) {
		return "", fmt.Errorf("locator host %q does not match backend host %q", u.Host, c.base.Host)
	}
	return c.base.Scheme + "://" + c.base.Host + u.RequestURI(), nil
}

func (c *Client) record(ctx context.Context, method string, tier Tier, start time.Time, f *Failure) *Failure {
	c.observe(ctx, method, tier, start, f.StatusCode)
	c.log.WarnContext(ctx, "fusion call failed",
		"method", f.Method,
		"path", f.Path,
		"tier", tier.String(),
		"status", f.StatusCode,
		"timeout", f.Timeout,
		"error", f.Message,
	)
	return f
}

func (c *Client) observe(ctx context.Context, method string, tier Tier, start time.Time, status int) {
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("tier", tier.String()),
		attribute.Int("status", status),
	)
	c.requests.Add(ctx, 1, attrs)
	c.duration.Record(ctx, float64(time.Since(start).Microseconds())/1000, attrs)
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

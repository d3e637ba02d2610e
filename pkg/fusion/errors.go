package fusion

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by Client.Request is a *Failure that
// unwraps to exactly one of these.
var (
	// ErrTransport covers network errors, timeouts and cancelled calls. No status code.
	ErrTransport = errors.New("fusion: transport failure")
	// ErrBackend covers non-2xx responses from the backend.
	ErrBackend = errors.New("fusion: backend failure")
)

// Failure is the structured error value for one backend call.
type Failure struct {
	Method string
	Path   string
	// StatusCode is the backend HTTP status; 0 for transport failures.
	StatusCode int
	// Payload is the backend's error body when it parsed as JSON.
	Payload json.RawMessage
	Message string
	Timeout bool

	kind  error
	cause error
}

func (f *Failure) Error() string {
	if f.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %s", f.Method, f.Path, f.Message)
	}
	return fmt.Sprintf("%s %s: HTTP %d: %s", f.Method, f.Path, f.StatusCode, f.Message)
}

// Unwrap exposes the failure kind and, for transport failures, the underlying cause.
func (f *Failure) Unwrap() []error {
	if f.cause != nil {
		return []error{f.kind, f.cause}
	}
	return []error{f.kind}
}

// Detail returns the backend payload if there is one, else the message.
func (f *Failure) Detail() any {
	if len(f.Payload) > 0 {
		return f.Payload
	}
	return f.Message
}

// AsFailure extracts a *Failure from err.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func transportFailure(method, path string, cause error, timeout bool) *Failure {
	return &Failure{
		Method:  method,
		Path:    path,
		Message: cause.Error(),
		Timeout: timeout,
		kind:    ErrTransport,
		cause:   cause,
	}
}

func backendFailure(method, path string, status int, body []byte) *Failure {
	f := &Failure{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Message:    truncate(string(body), 512),
		kind:       ErrBackend,
	}
	if len(body) > 0 && json.Valid(body) {
		f.Payload = json.RawMessage(body)
	}
	if f.Message == "" {
		f.Message = "empty response body"
	}
	return f
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

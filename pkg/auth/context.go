package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const personIDKey contextKey = "person_id"

// ErrPersonIDNotFound is returned when no acting person exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrPersonIDNotFound = errors.New("person_id not found in context")

// PersonIDFromCtx extracts the acting user's person id from the request context.
// Returns 0 and ErrPersonIDNotFound if none is set or the id is not positive.
func PersonIDFromCtx(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(personIDKey).(int64)
	if !ok || id <= 0 {
		return 0, ErrPersonIDNotFound
	}
	return id, nil
}

// WithPersonID returns a new context with the acting person id attached.
func WithPersonID(ctx context.Context, personID int64) context.Context {
	return context.WithValue(ctx, personIDKey, personID)
}

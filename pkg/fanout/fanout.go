// Package fanout runs independent lookups concurrently with a bound on how
// many run at once. Results keep input order and one failure never cancels
// the others; callers decide how to combine errors.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one lookup.
type Result[T any] struct {
	Value T
	Err   error
}

// Map calls fn for every input with at most limit calls in flight and returns
// one Result per input in input order. limit <= 0 means unbounded.
func Map[In, Out any](ctx context.Context, limit int, inputs []In, fn func(context.Context, In) (Out, error)) []Result[Out] {
	results := make([]Result[Out], len(inputs))
	if len(inputs) == 0 {
		return results
	}

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, in := range inputs {
		g.Go(func() error {
			v, err := fn(ctx, in)
			results[i] = Result[Out]{Value: v, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

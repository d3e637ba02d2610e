package fanout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestMap_PreservesOrder(t *testing.T) {
	inputs := []int{5, 1, 4, 2, 3}
	res := Map(context.Background(), 2, inputs, func(_ context.Context, n int) (int, error) {
		time.Sleep(time.Duration(n) * time.Millisecond)
		return n * 10, nil
	})

	for i, r := range res {
		if r.Err != nil {
			t.Fatalf("unexpected error at %d: %v", i, r.Err)
		}
		if r.Value != inputs[i]*10 {
			t.Errorf("result %d: got %d, want %d", i, r.Value, inputs[i]*10)
		}
	}
}

func TestMap_FailureDoesNotCancelSiblings(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32
	res := Map(context.Background(), 0, []int{1, 2, 3}, func(ctx context.Context, n int) (int, error) {
		calls.Add(1)
		if n == 1 {
			return 0, boom
		}
		time.Sleep(5 * time.Millisecond)
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return n, nil
	})

	if calls.Load() != 3 {
		t.Fatalf("expected 3 calls, got %d", calls.Load())
	}
	if !errors.Is(res[0].Err, boom) {
		t.Errorf("expected boom at 0, got %v", res[0].Err)
	}
	if res[1].Err != nil || res[2].Err != nil {
		t.Errorf("siblings should succeed: %v %v", res[1].Err, res[2].Err)
	}
	if res[1].Value != 2 || res[2].Value != 3 {
		t.Errorf("sibling values: got %d %d", res[1].Value, res[2].Value)
	}
}

func TestMap_RespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	inputs := make([]int, 20)
	Map(context.Background(), 3, inputs, func(_ context.Context, _ int) (struct{}, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		inFlight.Add(-1)
		return struct{}{}, nil
	})

	if peak.Load() > 3 {
		t.Fatalf("peak concurrency %d exceeds limit 3", peak.Load())
	}
}

func TestMap_Empty(t *testing.T) {
	res := Map(context.Background(), 4, []string(nil), func(_ context.Context, s string) (string, error) {
		t.Fatal("fn should not be called")
		return s, nil
	})
	if len(res) != 0 {
		t.Fatalf("expected no results, got %d", len(res))
	}
}

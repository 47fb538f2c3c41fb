package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestGateSpacing(t *testing.T) {
	const interval = 50 * time.Millisecond
	g := NewGate(interval, 8)
	defer g.Close()

	var mu sync.Mutex
	var starts []time.Time

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Do(context.Background(), func(context.Context) error {
				mu.Lock()
				starts = append(starts, time.Now())
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	if len(starts) != 3 {
		t.Fatalf("ran %d requests, want 3", len(starts))
	}
	for i := 1; i < len(starts); i++ {
		gap := starts[i].Sub(starts[i-1])
		// Small tolerance for timer resolution.
		if gap < interval-5*time.Millisecond {
			t.Errorf("gap %d = %v, want >= %v", i, gap, interval)
		}
	}
}

func TestGateFIFO(t *testing.T) {
	g := NewGate(10*time.Millisecond, 8)
	defer g.Close()

	var mu sync.Mutex
	var ran []int

	// Stagger submissions so enqueue order is deterministic.
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			time.Sleep(time.Duration(n) * 30 * time.Millisecond)
			g.Do(context.Background(), func(context.Context) error {
				mu.Lock()
				ran = append(ran, n)
				mu.Unlock()
				return nil
			})
		}(i)
	}
	wg.Wait()

	for i, n := range ran {
		if n != i {
			t.Fatalf("execution order = %v, want submission order", ran)
		}
	}
}

func TestGateErrorIsolated(t *testing.T) {
	g := NewGate(0, 8)
	defer g.Close()

	want := errors.New("provider down")
	if err := g.Do(context.Background(), func(context.Context) error { return want }); !errors.Is(err, want) {
		t.Errorf("Do = %v, want %v", err, want)
	}
	// The failure does not wedge the queue.
	if err := g.Do(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Errorf("Do after failure = %v", err)
	}
}

func TestGateCanceledRequestSkipped(t *testing.T) {
	g := NewGate(0, 8)
	defer g.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Do(ctx, func(context.Context) error {
		t.Error("canceled request ran")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Do = %v, want context.Canceled", err)
	}
}

package engine

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Gate serializes outbound lookups: requests execute one at a time, in
// submission order, with a minimum interval between consecutive call
// starts regardless of individual call latency. A request's failure
// resolves only that request; the queue keeps draining.
type Gate struct {
	limiter *rate.Limiter
	queue   chan *gateTask
}

type gateTask struct {
	ctx  context.Context
	fn   func(context.Context) error
	done chan error
}

// NewGate creates a gate with the given minimum inter-call interval and
// queue depth, and starts its worker. minInterval <= 0 disables pacing.
func NewGate(minInterval time.Duration, depth int) *Gate {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	if depth <= 0 {
		depth = 16
	}
	g := &Gate{
		limiter: rate.NewLimiter(limit, 1),
		queue:   make(chan *gateTask, depth),
	}
	go g.worker()
	return g
}

func (g *Gate) worker() {
	for t := range g.queue {
		if err := t.ctx.Err(); err != nil {
			t.done <- err
			continue
		}
		if err := g.limiter.Wait(t.ctx); err != nil {
			t.done <- err
			continue
		}
		t.done <- t.fn(t.ctx)
	}
}

// Do enqueues fn and blocks until it has run or ctx is canceled.
// Callers ahead in the queue run first; a canceled request is skipped
// without consuming a pacing slot.
func (g *Gate) Do(ctx context.Context, fn func(context.Context) error) error {
	t := &gateTask{ctx: ctx, fn: fn, done: make(chan error, 1)}
	select {
	case g.queue <- t:
	case <-ctx.Done():
		return ctx.Err()
	}
	return <-t.done
}

// Close stops the worker once queued requests finish. Do must not be
// called after Close.
func (g *Gate) Close() {
	close(g.queue)
}

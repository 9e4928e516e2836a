// Package pacer provides the processing delays shown around gated flows.
// Every pending delay is released when the pacer is closed.
package pacer

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrClosed is returned by Wait once the pacer has been closed
var ErrClosed = errors.New("pacer closed")

// Pacer hands out cancelable delays
type Pacer struct {
	mu     sync.Mutex
	done   chan struct{}
	closed bool
	wg     sync.WaitGroup
}

// New creates an open pacer
func New() *Pacer {
	return &Pacer{done: make(chan struct{})}
}

// Wait blocks for d unless ctx is cancelled or the pacer is closed first.
// A non-positive d returns immediately.
func (p *Pacer) Wait(ctx context.Context, d time.Duration) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrClosed
	}
	p.wg.Add(1)
	p.mu.Unlock()
	defer p.wg.Done()

	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.done:
		return ErrClosed
	}
}

// Close cancels all pending waits and blocks until they have returned
func (p *Pacer) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Millis converts a configured millisecond delay
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

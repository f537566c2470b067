package engine

import (
	"context"
	"sync"
	"time"
)

// Worker runs a loop on its own goroutine until stopped. Stop cancels the
// worker's context, which wakes any Sleep immediately.
type Worker struct {
	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// Start launches fn. It is a no-op if the worker is already running.
// fn should return when ctx is cancelled.
func (w *Worker) Start(parent context.Context, fn func(ctx context.Context)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	w.cancel = cancel
	w.done = done
	w.running = true

	go func() {
		defer close(done)
		defer func() {
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
		}()
		fn(ctx)
	}()
}

// Stop requests cancellation without waiting.
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		w.cancel()
	}
}

// Wait blocks until the worker goroutine has returned.
func (w *Worker) Wait() {
	w.mu.Lock()
	done := w.done
	w.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Running reports whether the goroutine is active.
func (w *Worker) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Sleep pauses for d or until ctx is done. It returns false when cancelled.
func Sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

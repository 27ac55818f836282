package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	// ErrQueueFull is returned when the background queue cannot take another event.
	ErrQueueFull = errors.New("event queue full")
	// ErrClosed is returned by Publish after Close.
	ErrClosed = errors.New("event publisher closed")
)

type queuedEvent struct {
	ctx   context.Context
	event Event
}

// Async hands events to a background goroutine so callers never wait on the
// broker. Each delivery runs on a context detached from the caller's
// cancellation and bounded by timeout; failures are logged.
type Async struct {
	next    Publisher
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan queuedEvent
	done   chan struct{}
}

// NewAsync starts the delivery goroutine. Close must be called to drain it.
func NewAsync(next Publisher, logger *slog.Logger, buffer int, timeout time.Duration) *Async {
	if logger == nil {
		logger = slog.Default()
	}
	if buffer <= 0 {
		buffer = 1
	}
	a := &Async{
		next:    next,
		logger:  logger,
		timeout: timeout,
		queue:   make(chan queuedEvent, buffer),
		done:    make(chan struct{}),
	}
	go a.run()
	return a
}

// Publish enqueues event and returns without waiting for delivery.
func (a *Async) Publish(ctx context.Context, event Event) error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return ErrClosed
	}
	select {
	case a.queue <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events and waits until the queued ones are delivered.
func (a *Async) Close() error {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()
	<-a.done
	return nil
}

func (a *Async) run() {
	defer close(a.done)
	for item := range a.queue {
		ctx, cancel := context.WithTimeout(item.ctx, a.timeout)
		err := a.next.Publish(ctx, item.event)
		cancel()
		if err != nil {
			a.logger.LogAttrs(item.ctx, slog.LevelWarn, "failed to deliver domain event",
				slog.String("event.type", item.event.Type),
				slog.String("event.key", item.event.Key),
				slog.String("error", err.Error()))
		}
	}
}

var _ Publisher = (*Async)(nil)

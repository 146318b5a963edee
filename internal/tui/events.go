package tui

import (
	"context"
	"time"

	"github.com/leapstack-labs/querie/internal/session"
)

// DefaultEventBuffer is the number of keys held between the terminal and the
// session loop.
const DefaultEventBuffer = 256

// Events carries translated key presses from the terminal program to the
// session loop. It implements session.EventSource.
type Events struct {
	ch chan session.Key
}

// NewEvents returns a queue holding up to size keys.
func NewEvents(size int) *Events {
	if size <= 0 {
		size = DefaultEventBuffer
	}
	return &Events{ch: make(chan session.Key, size)}
}

// Push enqueues k without blocking. It reports false when the queue is full
// and the key was dropped.
func (e *Events) Push(k session.Key) bool {
	select {
	case e.ch <- k:
		return true
	default:
		return false
	}
}

// Poll waits up to timeout for the next key.
func (e *Events) Poll(ctx context.Context, timeout time.Duration) (session.Key, bool, error) {
	select {
	case k := <-e.ch:
		return k, true, nil
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case k := <-e.ch:
		return k, true, nil
	case <-timer.C:
		return session.Key{}, false, nil
	case <-ctx.Done():
		return session.Key{}, false, ctx.Err()
	}
}

// Len returns the number of buffered keys.
func (e *Events) Len() int {
	return len(e.ch)
}

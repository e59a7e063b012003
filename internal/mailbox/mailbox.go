// Package mailbox provides a single-slot buffer where the latest job wins.
package mailbox

import (
	"context"
	"sync"
)

// Mailbox holds at most one pending job. It is not a queue: Put replaces any
// job not yet taken, which coalesces bursts of triggers into one.
type Mailbox[T any] struct {
	mu   sync.Mutex // serialises writers
	slot chan T
}

// New creates an empty mailbox.
func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{slot: make(chan T, 1)}
}

// Put stores a job, replacing any existing one. It never blocks.
func (m *Mailbox[T]) Put(j T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.slot:
	default:
	}
	m.slot <- j
}

// Take blocks until a job is available or ctx is done. The second result is
// false when ctx ended the wait.
func (m *Mailbox[T]) Take(ctx context.Context) (T, bool) {
	select {
	case j := <-m.slot:
		return j, true
	case <-ctx.Done():
		var zero T
		return zero, false
	}
}

// TryTake returns the pending job, if any, without blocking.
func (m *Mailbox[T]) TryTake() (T, bool) {
	select {
	case j := <-m.slot:
		return j, true
	default:
		var zero T
		return zero, false
	}
}

// HasJob reports whether a job is currently waiting.
func (m *Mailbox[T]) HasJob() bool {
	return len(m.slot) > 0
}

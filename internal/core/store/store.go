// Package store provides a minimal observable value container. Every piece
// of shared dashboard state lives in one of these; views subscribe and
// re-render on writes instead of polling.
package store

import (
	"sync"
)

// Subscriber receives the current value on subscribe and every subsequent
// write. Values must be treated as read-only snapshots.
type Subscriber[T any] func(value T)

// Store holds a single value and notifies subscribers on every write.
// Writes are synchronous: Set returns after all subscribers have run, in
// subscription order. There is no deduplication; writing a structurally
// identical value still notifies.
type Store[T any] struct {
	mu      sync.Mutex
	value   T
	clone   func(T) T
	subs    []*subscription[T]
	nextSub int
}

type subscription[T any] struct {
	id int
	fn Subscriber[T]
}

// New creates a store holding initial. The value type is assumed to have
// value semantics (or be treated as immutable by consumers).
func New[T any](initial T) *Store[T] {
	return &Store[T]{value: initial}
}

// NewWithClone creates a store whose values are passed through clone before
// being handed to any consumer, enforcing copy-on-write for reference types.
func NewWithClone[T any](initial T, clone func(T) T) *Store[T] {
	return &Store[T]{value: initial, clone: clone}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.Lock()
	v := s.value
	s.mu.Unlock()
	return s.copyOut(v)
}

// Set replaces the value and notifies every subscriber.
func (s *Store[T]) Set(value T) {
	s.mu.Lock()
	s.value = value
	subs, v := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(subs, v)
}

// Update reads the current value, applies fn, and writes the result. The
// write happens only after fn returns: if fn panics, the prior value
// survives untouched and no subscriber is notified.
func (s *Store[T]) Update(fn func(T) T) {
	s.mu.Lock()
	unlocked := false
	defer func() {
		// fn panicked: release the lock with the prior value intact and
		// let the panic propagate. No subscriber is notified.
		if !unlocked {
			s.mu.Unlock()
		}
	}()

	next := fn(s.copyOut(s.value))
	s.value = next
	subs, out := s.snapshotLocked()
	unlocked = true
	s.mu.Unlock()

	s.notify(subs, out)
}

// Subscribe registers fn, invokes it immediately with the current value, and
// returns a function that removes the subscription. A subscriber added after
// N writes sees the Nth value before any later one.
func (s *Store[T]) Subscribe(fn Subscriber[T]) func() {
	s.mu.Lock()
	sub := &subscription[T]{id: s.nextSub, fn: fn}
	s.nextSub++
	s.subs = append(s.subs, sub)
	v := s.copyOut(s.value)
	s.mu.Unlock()

	fn(v)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, candidate := range s.subs {
			if candidate.id == sub.id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// snapshotLocked copies the subscriber list and value while the lock is
// held, so notification can run outside the lock without missing order.
func (s *Store[T]) snapshotLocked() ([]*subscription[T], T) {
	subs := make([]*subscription[T], len(s.subs))
	copy(subs, s.subs)
	return subs, s.copyOut(s.value)
}

func (s *Store[T]) notify(subs []*subscription[T], v T) {
	for _, sub := range subs {
		sub.fn(v)
	}
}

func (s *Store[T]) copyOut(v T) T {
	if s.clone == nil {
		return v
	}
	return s.clone(v)
}

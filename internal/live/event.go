// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package live provides lifecycle-aware observable values used by the screen
// reducers to publish state and one-shot effects to the UI layer.
//
// [Data] keeps the latest value and replays it to every active observer.
// [Event] delivers each emitted value at most once, to a single active
// observer, and never replays it on re-subscription or re-activation.
package live

import (
	"sync"

	"github.com/MKhiriev/sommelier/internal/lifecycle"
	"github.com/MKhiriev/sommelier/internal/logger"
)

// Event is a single-emission channel. A value set with Emit is pending until
// exactly one active observer consumes it; afterwards it is never delivered
// again. A new Emit while a value is pending overwrites it.
//
// Only one observer is expected. Additional observers are allowed, but only
// one of them receives a given value and which one is unspecified.
type Event[T any] struct {
	mu        sync.Mutex
	value     T
	pending   bool
	observers map[*eventObserver[T]]struct{}

	logger *logger.Logger
}

type eventObserver[T any] struct {
	host        lifecycle.Host
	fn          func(T)
	unsubscribe func()
}

// NewEvent creates an Event with no pending value.
func NewEvent[T any](log *logger.Logger) *Event[T] {
	return &Event[T]{
		observers: make(map[*eventObserver[T]]struct{}),
		logger:    log,
	}
}

// Emit records v as the pending value and delivers it to an active observer
// if there is one. Without an active observer delivery is deferred until an
// observer's host becomes active.
func (e *Event[T]) Emit(v T) {
	e.mu.Lock()
	e.value = v
	e.pending = true
	observers := e.snapshot()
	e.mu.Unlock()

	for _, o := range observers {
		if o.host.State() != lifecycle.Active {
			continue
		}
		if e.deliver(o) {
			return
		}
	}
}

// Pending reports whether a value is waiting to be consumed.
func (e *Event[T]) Pending() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pending
}

// Observe registers fn against host. fn is only called while host is
// Active. When host becomes Active and a value is pending, fn receives it
// once. Observers of a destroyed host are removed automatically.
//
// The returned function removes the observer.
func (e *Event[T]) Observe(host lifecycle.Host, fn func(T)) (remove func()) {
	if host.State() == lifecycle.Destroyed {
		return func() {}
	}

	o := &eventObserver[T]{host: host, fn: fn}

	e.mu.Lock()
	if len(e.observers) > 0 {
		e.logger.Warn().
			Int("observers", len(e.observers)+1).
			Msg("multiple observers registered but only one will be notified of changes")
	}
	e.observers[o] = struct{}{}
	e.mu.Unlock()

	unsubscribe := host.Subscribe(func(s lifecycle.State) {
		switch s {
		case lifecycle.Active:
			e.deliver(o)
		case lifecycle.Destroyed:
			e.remove(o)
		}
	})
	e.mu.Lock()
	o.unsubscribe = unsubscribe
	e.mu.Unlock()

	if host.State() == lifecycle.Active {
		e.deliver(o)
	}

	return func() { e.remove(o) }
}

// deliver hands the pending value to o. The pending flag is checked and
// cleared under the lock, so concurrent deliveries never share a value.
func (e *Event[T]) deliver(o *eventObserver[T]) bool {
	e.mu.Lock()
	if _, registered := e.observers[o]; !registered || !e.pending {
		e.mu.Unlock()
		return false
	}
	v := e.value
	e.pending = false
	e.mu.Unlock()

	o.fn(v)
	return true
}

func (e *Event[T]) remove(o *eventObserver[T]) {
	e.mu.Lock()
	delete(e.observers, o)
	unsubscribe := o.unsubscribe
	o.unsubscribe = nil
	e.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (e *Event[T]) snapshot() []*eventObserver[T] {
	observers := make([]*eventObserver[T], 0, len(e.observers))
	for o := range e.observers {
		observers = append(observers, o)
	}
	return observers
}

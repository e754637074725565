// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package live

import (
	"sync"

	"github.com/MKhiriev/sommelier/internal/lifecycle"
)

// Data holds the latest value of a stream and publishes it to every active
// observer. An observer that missed updates while inactive receives only
// the latest value once its host becomes active again.
type Data[T any] struct {
	mu        sync.Mutex
	value     T
	version   int
	observers map[*dataObserver[T]]struct{}
}

type dataObserver[T any] struct {
	host        lifecycle.Host
	fn          func(T)
	seen        int
	unsubscribe func()
	// delivering serializes callbacks per observer so values arrive in
	// emission order.
	delivering sync.Mutex
}

// NewData creates a Data holding initial. The initial value counts as an
// emission and is delivered to the first activation of every observer.
func NewData[T any](initial T) *Data[T] {
	return &Data[T]{
		value:     initial,
		version:   1,
		observers: make(map[*dataObserver[T]]struct{}),
	}
}

// Value returns the latest value.
func (d *Data[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.value
}

// Set replaces the value and publishes it to active observers.
func (d *Data[T]) Set(v T) {
	d.mu.Lock()
	d.value = v
	d.version++
	observers := make([]*dataObserver[T], 0, len(d.observers))
	for o := range d.observers {
		observers = append(observers, o)
	}
	d.mu.Unlock()

	for _, o := range observers {
		d.considerNotify(o)
	}
}

// Observe registers fn against host and returns a function that removes it.
// fn must not call Set on the same Data.
func (d *Data[T]) Observe(host lifecycle.Host, fn func(T)) (remove func()) {
	if host.State() == lifecycle.Destroyed {
		return func() {}
	}

	o := &dataObserver[T]{host: host, fn: fn}

	d.mu.Lock()
	d.observers[o] = struct{}{}
	d.mu.Unlock()

	unsubscribe := host.Subscribe(func(s lifecycle.State) {
		switch s {
		case lifecycle.Active:
			d.considerNotify(o)
		case lifecycle.Destroyed:
			d.remove(o)
		}
	})
	d.mu.Lock()
	o.unsubscribe = unsubscribe
	d.mu.Unlock()

	d.considerNotify(o)

	return func() { d.remove(o) }
}

func (d *Data[T]) considerNotify(o *dataObserver[T]) {
	o.delivering.Lock()
	defer o.delivering.Unlock()

	if o.host.State() != lifecycle.Active {
		return
	}

	d.mu.Lock()
	if _, registered := d.observers[o]; !registered || o.seen >= d.version {
		d.mu.Unlock()
		return
	}
	o.seen = d.version
	v := d.value
	d.mu.Unlock()

	o.fn(v)
}

func (d *Data[T]) remove(o *dataObserver[T]) {
	d.mu.Lock()
	delete(d.observers, o)
	unsubscribe := o.unsubscribe
	o.unsubscribe = nil
	d.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

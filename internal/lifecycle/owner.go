// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lifecycle models the lifecycle of a UI host (a screen, a page of
// the terminal client) so that observers can gate delivery on whether the
// host is currently visible.
package lifecycle

import "sync"

// State is the lifecycle phase of an Owner.
type State int

const (
	// Inactive means the host exists but is not visible (backgrounded,
	// another page is shown). No delivery happens while inactive.
	Inactive State = iota
	// Active means the host is visible and may consume values.
	Active
	// Destroyed is terminal: the host is gone and every subscription is
	// dropped.
	Destroyed
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Host is the read side of a lifecycle owner as seen by observers.
type Host interface {
	// State returns the current lifecycle phase.
	State() State

	// Subscribe registers fn to be called on every state transition. The
	// returned function removes the subscription.
	Subscribe(fn func(State)) (unsubscribe func())
}

// Owner is the lifecycle of one UI host. The zero value is not usable;
// create owners with NewOwner.
type Owner struct {
	mu          sync.Mutex
	state       State
	subscribers map[int]func(State)
	nextID      int
}

// NewOwner creates an Owner in the Inactive state.
func NewOwner() *Owner {
	return &Owner{
		state:       Inactive,
		subscribers: make(map[int]func(State)),
	}
}

// State implements Host.
func (o *Owner) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.state
}

// Subscribe implements Host. Subscribing to a destroyed owner is a no-op.
func (o *Owner) Subscribe(fn func(State)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state == Destroyed {
		return func() {}
	}

	id := o.nextID
	o.nextID++
	o.subscribers[id] = fn

	return func() {
		o.mu.Lock()
		delete(o.subscribers, id)
		o.mu.Unlock()
	}
}

// Activate moves the owner to Active.
func (o *Owner) Activate() { o.moveTo(Active) }

// Deactivate moves the owner to Inactive.
func (o *Owner) Deactivate() { o.moveTo(Inactive) }

// Destroy moves the owner to Destroyed and drops all subscribers after
// notifying them.
func (o *Owner) Destroy() { o.moveTo(Destroyed) }

func (o *Owner) moveTo(next State) {
	o.mu.Lock()
	if o.state == next || o.state == Destroyed {
		o.mu.Unlock()
		return
	}
	o.state = next

	// notify outside the lock: subscribers read State() and may unsubscribe
	subscribers := make([]func(State), 0, len(o.subscribers))
	for _, fn := range o.subscribers {
		subscribers = append(subscribers, fn)
	}
	if next == Destroyed {
		o.subscribers = make(map[int]func(State))
	}
	o.mu.Unlock()

	for _, fn := range subscribers {
		fn(next)
	}
}

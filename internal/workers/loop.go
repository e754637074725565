// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/sommelier/internal/logger"
)

// Loop is the main (UI) execution context: a single goroutine that runs
// posted functions one at a time in posting order. The queue is unbounded,
// so posting from inside the loop never blocks.
type Loop struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}

	logger *logger.Logger
}

// NewLoop creates an idle Loop.
func NewLoop(log *logger.Logger) *Loop {
	return &Loop{
		wake:   make(chan struct{}, 1),
		logger: log,
	}
}

// Main queues fn for execution on the loop goroutine.
func (l *Loop) Main(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run implements Worker. Functions still queued when ctx is cancelled are
// discarded.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.drain(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-l.wake:
		}
	}
}

func (l *Loop) drain(ctx context.Context) {
	for ctx.Err() == nil {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		runSafely(fn, l.logger)
	}
}

// runSafely keeps a panicking task from taking the execution context down.
func runSafely(fn func(), log *logger.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Err(fmt.Errorf("%v", r)).Msg("task panicked")
		}
	}()

	fn()
}

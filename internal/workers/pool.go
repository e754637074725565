// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/sommelier/internal/logger"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPoolSize  = 4
	defaultQueueSize = 64
)

// Pool is the background execution context for I/O-bound calls.
type Pool struct {
	size  int
	tasks chan func()

	logger *logger.Logger
}

// NewPool creates a Pool of size goroutines with a task queue of queueSize.
// Non-positive values fall back to defaults.
func NewPool(size, queueSize int, log *logger.Logger) *Pool {
	if size <= 0 {
		size = defaultPoolSize
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &Pool{
		size:   size,
		tasks:  make(chan func(), queueSize),
		logger: log,
	}
}

// Background queues fn and never blocks the caller. When the queue is full
// fn runs on a goroutine of its own.
func (p *Pool) Background(fn func()) {
	select {
	case p.tasks <- fn:
	default:
		p.logger.Debug().Int("queue_size", cap(p.tasks)).Msg("pool queue is full, running task on overflow goroutine")
		go runSafely(fn, p.logger)
	}
}

// Run implements Worker.
func (p *Pool) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < p.size; i++ {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case fn := <-p.tasks:
					runSafely(fn, p.logger)
				}
			}
		})
	}

	return g.Wait()
}

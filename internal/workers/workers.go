// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Workers aggregates the main loop and the background pool into a single
// Dispatcher that is run as one unit.
type Workers struct {
	loop *Loop
	pool *Pool
}

// New creates the client execution contexts from cfg. Nothing runs until
// Run is called, but posted functions are queued.
func New(cfg config.ClientWorkers, log *logger.Logger) *Workers {
	return &Workers{
		loop: NewLoop(log),
		pool: NewPool(cfg.PoolSize, cfg.QueueSize, log),
	}
}

// Main implements Dispatcher.
func (w *Workers) Main(fn func()) { w.loop.Main(fn) }

// Background implements Dispatcher.
func (w *Workers) Background(fn func()) { w.pool.Background(fn) }

// Run runs the loop and the pool until ctx is cancelled or one of them
// fails.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range []Worker{w.loop, w.pool} {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}

// Launch runs work on the background pool of d and hands its result to done
// on the main loop.
func Launch[T any](d Dispatcher, work func() T, done func(T)) {
	d.Background(func() {
		result := work()
		d.Main(func() {
			done(result)
		})
	})
}

type immediate struct{}

// Immediate returns a Dispatcher that runs every function inline on the
// calling goroutine. Useful in tests and for hosts without a main loop.
func Immediate() Dispatcher {
	return immediate{}
}

func (immediate) Main(fn func())       { fn() }
func (immediate) Background(fn func()) { fn() }

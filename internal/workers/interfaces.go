// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the execution contexts of the client: a single
// main loop on which screen state is reduced and published, a background
// pool for I/O-bound collaborator calls, and the Launch helper that moves a
// result from the latter back onto the former.
package workers

import "context"

// Worker is the interface that must be implemented by any long-running
// execution context. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context) error
}

// Dispatcher schedules functions onto the main loop and the background pool.
//
// Functions posted with Main run one at a time, in posting order. Functions
// posted with Background may run concurrently with each other and with the
// main loop.
type Dispatcher interface {
	Main(fn func())
	Background(fn func())
}

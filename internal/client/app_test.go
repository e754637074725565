// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	err error
	// waitForCancel makes Run block until its context ends.
	waitForCancel bool
}

func (f *fakeUI) Run(ctx context.Context) error {
	if f.waitForCancel {
		<-ctx.Done()
	}
	return f.err
}

type fakeWorkers struct {
	err     error
	stopped chan struct{}
}

func newFakeWorkers(err error) *fakeWorkers {
	return &fakeWorkers{err: err, stopped: make(chan struct{})}
}

func (f *fakeWorkers) Run(ctx context.Context) error {
	defer close(f.stopped)
	if f.err != nil {
		return f.err
	}
	<-ctx.Done()
	return nil
}

func runWithTimeout(t *testing.T, ctx context.Context, app *App) error {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
		return nil
	}
}

func TestNewApp_RequiresCollaborators(t *testing.T) {
	_, err := NewApp(nil, newFakeWorkers(nil), logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&fakeUI{}, nil, logger.Nop())
	assert.Error(t, err)
}

func TestRun_UserQuit_IsNotAnError(t *testing.T) {
	w := newFakeWorkers(nil)
	app, err := NewApp(&fakeUI{err: tui.ErrUserQuit}, w, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, runWithTimeout(t, context.Background(), app))
	<-w.stopped
}

func TestRun_UIFailure(t *testing.T) {
	app, err := NewApp(&fakeUI{err: errors.New("no tty")}, newFakeWorkers(nil), logger.Nop())
	require.NoError(t, err)

	assert.ErrorContains(t, runWithTimeout(t, context.Background(), app), "ui: no tty")
}

func TestRun_WorkersFailure_StopsUI(t *testing.T) {
	app, err := NewApp(&fakeUI{waitForCancel: true}, newFakeWorkers(errors.New("pool broken")), logger.Nop())
	require.NoError(t, err)

	assert.ErrorContains(t, runWithTimeout(t, context.Background(), app), "workers: pool broken")
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	app, err := NewApp(&fakeUI{waitForCancel: true}, newFakeWorkers(nil), logger.Nop())
	require.NoError(t, err)

	cancel()
	assert.NoError(t, runWithTimeout(t, ctx, app))
}

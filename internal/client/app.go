// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/tui"
	"github.com/MKhiriev/sommelier/internal/workers"
	"golang.org/x/sync/errgroup"
)

type App struct {
	ui      UI
	workers workers.Worker

	logger *logger.Logger
}

func NewApp(ui UI, w workers.Worker, logger *logger.Logger) (*App, error) {
	if ui == nil || w == nil {
		return nil, errors.New("client app needs a ui and workers")
	}

	return &App{
		ui:      ui,
		workers: w,
		logger:  logger,
	}, nil
}

// Run blocks until the user quits, ctx is cancelled or the workers fail.
// Quitting is not an error.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.workers.Run(gCtx); err != nil {
			return fmt.Errorf("workers: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		// workers only stop once the ui is gone
		defer cancel()

		err := a.ui.Run(gCtx)
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("user quit")
			return nil
		}
		if err != nil {
			return fmt.Errorf("ui: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/screens"
	"github.com/MKhiriev/sommelier/internal/service"
	"github.com/MKhiriev/sommelier/internal/workers"
	"github.com/MKhiriev/sommelier/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	newPage   pageFactory
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New binds the screens to services. Screen actions are reduced on the
// main loop of dispatcher, which must be running while the TUI is.
func New(services *service.ClientServices, dispatcher workers.Dispatcher, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || dispatcher == nil {
		return nil, errors.New("tui needs client services and a dispatcher")
	}

	log = log.ForComponent("tui")
	return &TUI{
		newPage:   newPageFactory(services, dispatcher, log),
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// Run shows the splash screen and blocks until the user quits or ctx is
// cancelled. Quitting with ctrl+c returns ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	root := newRootModel(ctx, t.newPage, screens.RouteSplash, clipboard.WriteAll, t.buildInfo, t.logger)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/screens"
	"github.com/MKhiriev/sommelier/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const snackbarTimeout = 4 * time.Second

type snackbar struct {
	message string
	isError bool
	seq     int
}

func (s snackbar) View() string {
	if s.message == "" {
		return ""
	}
	if s.isError {
		return overlayBoxStyle.Render(errorStyle.Render(s.message))
	}
	return overlayBoxStyle.Render(messageStyle.Render(s.message))
}

// RootModel is a TUI router:
// 1) keeps the navigation stack of pages
// 2) handles global quit and the build info window
// 3) turns screen effects into navigation, snackbars and clipboard writes
// 4) delegates key presses to the page on top
type RootModel struct {
	ctx     context.Context
	newPage pageFactory
	mail    *mailbox
	copy    func(string) error

	stack     []page
	snackbar  snackbar
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool

	logger *logger.Logger
}

// newRootModel opens the page of start.
func newRootModel(ctx context.Context, newPage pageFactory, start screens.Route, copyText func(string) error, buildInfo models.AppBuildInfo, log *logger.Logger) RootModel {
	r := RootModel{
		ctx:       ctx,
		newPage:   newPage,
		mail:      newMailbox(),
		copy:      copyText,
		buildInfo: buildInfo,
		logger:    log,
	}
	r.push(start)
	return r
}

func (r RootModel) Init() tea.Cmd {
	return r.mail.receive(r.ctx)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return r.handleKey(msg)

	case mailMsg:
		var cmd tea.Cmd
		r, cmd = r.handleMail(msg.msg)
		if len(r.stack) == 0 {
			return r, cmd
		}
		return r, tea.Batch(cmd, r.mail.receive(r.ctx))

	case clearSnackbarMsg:
		if msg.seq == r.snackbar.seq {
			r.snackbar.message = ""
		}
		return r, nil
	}

	return r, nil
}

func (r RootModel) handleKey(msg tea.KeyMsg) (RootModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		r.quitByUser = true
		r.closeAll()
		return r, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		r.showBuildInfo = !r.showBuildInfo
		return r, nil
	}

	if r.showBuildInfo {
		if key.Matches(msg, keys.back) {
			r.showBuildInfo = false
		}
		return r, nil
	}

	if top := r.top(); top != nil {
		top.update(msg)
	}
	return r, nil
}

func (r RootModel) handleMail(msg tea.Msg) (RootModel, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		if r.onStack(msg.target) {
			msg.target.setState(msg.state)
		}
		return r, nil

	case effectMsg:
		if !r.onStack(msg.source) {
			r.logger.Debug().Str("effect", fmt.Sprintf("%T", msg.effect)).Msg("effect of a closed page dropped")
			return r, nil
		}
		return r.handleEffect(msg.source, msg.effect)
	}

	return r, nil
}

func (r RootModel) handleEffect(source page, effect screens.Effect) (RootModel, tea.Cmd) {
	if source.trigger(effect) {
		return r, nil
	}

	switch e := effect.(type) {
	case screens.Navigate:
		if e.ClearBackStack {
			r.closeAll()
		} else if top := r.top(); top != nil {
			top.deactivate()
		}
		r.push(e.To)
		return r, nil

	case screens.NavigateBack:
		return r.back()

	case screens.ShowSnackbarError:
		return r.showSnackbar(e.Message, true)

	case screens.ShowSnackbarMessage:
		return r.showSnackbar(e.Message, false)

	case screens.CopyToClipboard:
		if err := r.copy(e.Text); err != nil {
			r.logger.Err(err).Msg("copy to clipboard")
			return r.showSnackbar("Could not copy to the clipboard", true)
		}
		return r.showSnackbar("Copied to the clipboard", false)
	}

	r.logger.Warn().Str("effect", fmt.Sprintf("%T", effect)).Msg("unhandled effect")
	return r, nil
}

func (r RootModel) showSnackbar(message string, isError bool) (RootModel, tea.Cmd) {
	seq := r.snackbar.seq + 1
	r.snackbar = snackbar{message: message, isError: isError, seq: seq}

	return r, tea.Tick(snackbarTimeout, func(time.Time) tea.Msg {
		return clearSnackbarMsg{seq: seq}
	})
}

// push opens a new page for route on top of the stack.
func (r *RootModel) push(route screens.Route) {
	p := r.newPage(route)
	if p == nil {
		r.logger.Error().Stringer("route", route).Msg("no page for route")
		if top := r.top(); top != nil {
			top.activate()
		}
		return
	}

	r.stack = append(r.stack, p)
	p.open(r.mail.Post)
}

// back closes the page on top and shows the one below, or quits when there
// is none.
func (r RootModel) back() (RootModel, tea.Cmd) {
	top := r.top()
	if top == nil {
		return r, tea.Quit
	}

	top.close()
	r.stack[len(r.stack)-1] = nil
	r.stack = r.stack[:len(r.stack)-1]

	if next := r.top(); next != nil {
		next.activate()
		return r, nil
	}
	return r, tea.Quit
}

func (r *RootModel) closeAll() {
	for i := len(r.stack) - 1; i >= 0; i-- {
		r.stack[i].close()
	}
	r.stack = nil
}

func (r RootModel) top() page {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r RootModel) onStack(p page) bool {
	for _, q := range r.stack {
		if q == p {
			return true
		}
	}
	return false
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	top := r.top()
	if top == nil {
		return appStyle.Render(renderPage("SOMMELIER", "", ""))
	}

	out := top.view()
	if bar := r.snackbar.View(); bar != "" {
		out += "\n\n" + bar
	}
	return appStyle.Render(out)
}

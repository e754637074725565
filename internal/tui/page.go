// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/sommelier/internal/lifecycle"
	"github.com/MKhiriev/sommelier/internal/screens"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// page is a screen on the navigation stack as seen by the root model.
type page interface {
	Route() screens.Route
	// open starts observing the screen and shows the page.
	open(post func(tea.Msg))
	activate()
	deactivate()
	// close hides the page for good and abandons its screen.
	close()
	update(msg tea.KeyMsg)
	setState(state any)
	// trigger answers a Trigger effect of the page's own screen.
	trigger(effect screens.Effect) bool
	view() string
}

type inputField[M, A any] struct {
	label   string
	masked  bool
	value   func(M) screens.Field
	changed func(string) A
}

type binding[A any] struct {
	key    key.Binding
	action A
}

// pageLayout describes how a screen is presented and which keys drive it.
type pageLayout[M, A any] struct {
	title    string
	fields   []inputField[M, A]
	submit   func() A
	bindings []binding[A]
	// start is sent once when the page is opened.
	start []A
	body  func(screens.State[M]) string
}

type screenPage[M, A any] struct {
	route  screens.Route
	layout pageLayout[M, A]
	screen screens.Screen[M, A]
	owner  *lifecycle.Owner

	inputs []textinput.Model
	// edited marks inputs the user has typed into; the screen state no
	// longer overwrites them.
	edited []bool
	focus  int
	state  screens.State[M]

	removers []func()
}

func newScreenPage[M, A any](route screens.Route, screen screens.Screen[M, A], layout pageLayout[M, A]) *screenPage[M, A] {
	p := &screenPage[M, A]{
		route:  route,
		layout: layout,
		screen: screen,
		owner:  lifecycle.NewOwner(),
		state:  screen.State(),
	}

	for _, f := range layout.fields {
		input := textinput.New()
		input.Width = 40
		input.Prompt = ""
		if f.masked {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '*'
		}
		p.inputs = append(p.inputs, input)
	}
	p.edited = make([]bool, len(p.inputs))
	if len(p.inputs) > 0 {
		p.inputs[0].Focus()
	}
	return p
}

func (p *screenPage[M, A]) Route() screens.Route {
	return p.route
}

func (p *screenPage[M, A]) open(post func(tea.Msg)) {
	p.removers = append(p.removers,
		p.screen.ObserveState(p.owner, func(s screens.State[M]) {
			post(stateMsg{target: p, state: s})
		}),
		p.screen.ObserveEffect(p.owner, func(e screens.Effect) {
			post(effectMsg{source: p, effect: e})
		}),
	)
	p.owner.Activate()

	for _, action := range p.layout.start {
		p.screen.SendAction(action)
	}
}

func (p *screenPage[M, A]) activate() {
	p.owner.Activate()
}

func (p *screenPage[M, A]) deactivate() {
	p.owner.Deactivate()
}

func (p *screenPage[M, A]) close() {
	for _, remove := range p.removers {
		remove()
	}
	p.removers = nil
	p.owner.Destroy()
	p.screen.Close()
}

func (p *screenPage[M, A]) setState(state any) {
	s, ok := state.(screens.State[M])
	if !ok {
		return
	}
	p.state = s

	for i, f := range p.layout.fields {
		if p.edited[i] {
			continue
		}
		if text := f.value(s.Model).Text; p.inputs[i].Value() != text {
			p.inputs[i].SetValue(text)
		}
	}
}

func (p *screenPage[M, A]) trigger(effect screens.Effect) bool {
	t, ok := effect.(screens.Trigger[A])
	if !ok {
		return false
	}
	p.screen.SendAction(t.Action)
	return true
}

func (p *screenPage[M, A]) update(msg tea.KeyMsg) {
	for _, b := range p.layout.bindings {
		if key.Matches(msg, b.key) {
			p.screen.SendAction(b.action)
			return
		}
	}

	if len(p.inputs) == 0 {
		return
	}

	switch {
	case key.Matches(msg, keys.next):
		p.moveFocus(1)
		return
	case key.Matches(msg, keys.prev):
		p.moveFocus(-1)
		return
	case key.Matches(msg, keys.submit):
		if p.layout.submit != nil && p.state.Phase != screens.Loading {
			p.screen.SendAction(p.layout.submit())
		}
		return
	}

	before := p.inputs[p.focus].Value()
	p.inputs[p.focus], _ = p.inputs[p.focus].Update(msg)
	if after := p.inputs[p.focus].Value(); after != before {
		p.edited[p.focus] = true
		p.screen.SendAction(p.layout.fields[p.focus].changed(after))
	}
}

func (p *screenPage[M, A]) moveFocus(delta int) {
	p.inputs[p.focus].Blur()
	p.focus = (p.focus + delta + len(p.inputs)) % len(p.inputs)
	p.inputs[p.focus].Focus()
}

func (p *screenPage[M, A]) view() string {
	var b strings.Builder

	for i, f := range p.layout.fields {
		field := f.value(p.state.Model)
		b.WriteString(padLabel(f.label))
		b.WriteString("[")
		b.WriteString(p.inputs[i].View())
		b.WriteString("]\n")
		if field.IsError {
			b.WriteString(padLabel(""))
			b.WriteString(errorStyle.Render(field.Message.String()))
			b.WriteString("\n")
		}
	}

	if p.layout.body != nil {
		if len(p.layout.fields) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.layout.body(p.state))
	}

	if p.state.Phase == screens.Loading {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("please wait..."))
	}

	return renderPage(p.layout.title, strings.TrimRight(b.String(), "\n"), p.help())
}

func (p *screenPage[M, A]) help() string {
	var hints []string
	if len(p.inputs) > 1 {
		hints = append(hints, hint(keys.next))
	}
	if p.layout.submit != nil {
		hints = append(hints, hint(keys.submit))
	}
	for _, b := range p.layout.bindings {
		hints = append(hints, hint(b.key))
	}
	return strings.Join(hints, " │ ")
}

func hint(b key.Binding) string {
	h := b.Help()
	return h.Key + ": " + h.Desc
}

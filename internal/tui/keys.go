// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit      key.Binding
	buildInfo key.Binding
	back      key.Binding
	submit    key.Binding
	next      key.Binding
	prev      key.Binding

	// form pages take letters as text, so their shortcuts use ctrl
	forgotPassword key.Binding
	signUp         key.Binding

	retry         key.Binding
	resend        key.Binding
	check         key.Binding
	signOut       key.Binding
	profile       key.Binding
	addReview     key.Binding
	edit          key.Binding
	deleteAccount key.Binding
	copyUID       key.Binding
}

var keys = keyMap{
	quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "about")),
	back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	prev:      key.NewBinding(key.WithKeys("shift+tab", "up")),

	forgotPassword: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "forgot password")),
	signUp:         key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "create account")),

	retry:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
	resend:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "resend email")),
	check:         key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "I have verified")),
	signOut:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sign out")),
	profile:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
	addReview:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add review")),
	edit:          key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	deleteAccount: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete account")),
	copyUID:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy user id")),
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// mailbox is an unbounded FIFO of messages posted from outside the
// program's event loop. Post never blocks, so it is safe to call from
// inside Update as well.
type mailbox struct {
	mu     sync.Mutex
	queue  []tea.Msg
	notify chan struct{}
}

// mailMsg wraps a message taken from the mailbox.
type mailMsg struct {
	msg tea.Msg
}

func newMailbox() *mailbox {
	return &mailbox{notify: make(chan struct{}, 1)}
}

func (m *mailbox) Post(msg tea.Msg) {
	m.mu.Lock()
	m.queue = append(m.queue, msg)
	m.mu.Unlock()

	select {
	case m.notify <- struct{}{}:
	default:
	}
}

func (m *mailbox) pop() (tea.Msg, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.queue) == 0 {
		return nil, false
	}
	msg := m.queue[0]
	m.queue[0] = nil
	m.queue = m.queue[1:]
	return msg, true
}

// receive waits for the next message. Only one receive may be outstanding;
// the model re-arms it after every delivered mailMsg.
func (m *mailbox) receive(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		for {
			if msg, ok := m.pop(); ok {
				return mailMsg{msg: msg}
			}

			select {
			case <-ctx.Done():
				return nil
			case <-m.notify:
			}
		}
	}
}

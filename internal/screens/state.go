// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package screens holds the reducers of the client screens.
//
// Every screen follows the same shape: the UI sends an action with
// SendAction, the reducer replaces the current [State] and emits at most one
// [Effect]. Synchronous validation happens inside the reduction; the network
// step only starts after the UI has rendered the Loading state and answered
// the [Trigger] effect with the async action.
//
// State is published through a [live.Data] (every active observer sees the
// latest state) and effects through a [live.Event] (each effect is
// delivered once, to one observer).
package screens

import "github.com/MKhiriev/sommelier/internal/validators"

// Phase is the lifecycle phase of a screen.
type Phase int

const (
	Initial Phase = iota
	Resume
	Loading
	Error
	Success
)

func (p Phase) String() string {
	switch p {
	case Initial:
		return "initial"
	case Resume:
		return "resume"
	case Loading:
		return "loading"
	case Error:
		return "error"
	case Success:
		return "success"
	default:
		return "unknown"
	}
}

// State is the current phase of a screen together with its UI model. A
// State is replaced as a whole on every reduction.
type State[M any] struct {
	Phase Phase
	Model M
}

// Field is a text input with its validation outcome.
type Field struct {
	Text    string
	Message validators.Message
	IsError bool
}

// NewField returns a clean field holding text.
func NewField(text string) Field {
	return Field{Text: text}
}

// check returns f with the validation outcome msg applied.
func (f Field) check(msg validators.Message) Field {
	f.Message = msg
	f.IsError = !msg.IsValid()
	return f
}

// allValid reports whether none of fields carries an error.
func allValid(fields ...Field) bool {
	for _, f := range fields {
		if f.IsError {
			return false
		}
	}
	return true
}

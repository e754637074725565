// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package screens

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sommelier/internal/lifecycle"
	"github.com/MKhiriev/sommelier/internal/live"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/problem"
	"github.com/MKhiriev/sommelier/internal/workers"
)

// Screen is the view of a reducer seen by the UI: it sends actions and
// observes state and effects, and never mutates either.
type Screen[M, A any] interface {
	SendAction(action A)
	State() State[M]
	ObserveState(host lifecycle.Host, fn func(State[M])) (remove func())
	ObserveEffect(host lifecycle.Host, fn func(Effect)) (remove func())
	Close()
}

// reducer carries what every screen shares: its context, the dispatcher,
// the state holder and the effect channel.
type reducer[M, A any] struct {
	ctx    context.Context
	cancel context.CancelFunc

	dispatcher workers.Dispatcher
	state      *live.Data[State[M]]
	effects    *live.Event[Effect]
	reduce     func(A)

	logger *logger.Logger
}

func newReducer[M, A any](name string, model M, dispatcher workers.Dispatcher, log *logger.Logger) *reducer[M, A] {
	ctx, cancel := context.WithCancel(context.Background())
	log = log.ForComponent(name + "-screen")

	return &reducer[M, A]{
		ctx:        ctx,
		cancel:     cancel,
		dispatcher: dispatcher,
		state:      live.NewData(State[M]{Phase: Initial, Model: model}),
		effects:    live.NewEvent[Effect](log),
		logger:     log,
	}
}

// SendAction reduces action on the main loop. Actions sent after Close are
// dropped.
func (r *reducer[M, A]) SendAction(action A) {
	r.dispatcher.Main(func() {
		if r.ctx.Err() != nil {
			return
		}
		r.logger.Debug().Str("action", fmt.Sprintf("%T", action)).Msg("action received")
		r.reduce(action)
	})
}

func (r *reducer[M, A]) State() State[M] {
	return r.state.Value()
}

func (r *reducer[M, A]) ObserveState(host lifecycle.Host, fn func(State[M])) func() {
	return r.state.Observe(host, fn)
}

func (r *reducer[M, A]) ObserveEffect(host lifecycle.Host, fn func(Effect)) func() {
	return r.effects.Observe(host, fn)
}

// Close abandons the screen: results of calls still in flight are
// discarded and further actions are ignored.
func (r *reducer[M, A]) Close() {
	r.cancel()
}

func (r *reducer[M, A]) model() M {
	return r.state.Value().Model
}

func (r *reducer[M, A]) set(phase Phase, model M) {
	r.state.Set(State[M]{Phase: phase, Model: model})
}

func (r *reducer[M, A]) emit(effect Effect) {
	r.effects.Emit(effect)
}

// startLoading publishes the Loading state and asks the UI to send next.
func (r *reducer[M, A]) startLoading(model M, next A) {
	r.set(Loading, model)
	r.emit(Trigger[A]{Action: next})
}

// fail publishes the Error state and the problem's message.
func (r *reducer[M, A]) fail(model M, p problem.Problem) {
	r.logger.Warn().Str("kind", p.Kind.String()).Str("message", p.Message).Msg("operation failed")
	r.set(Error, model)
	r.emit(ShowSnackbarError{Message: p.Message})
}

// launch runs call on the background pool and hands the result to done on
// the main loop, unless the screen was closed meanwhile.
func launch[M, A, T any](r *reducer[M, A], call func(ctx context.Context) problem.Result[T], done func(problem.Result[T])) {
	workers.Launch(r.dispatcher, func() problem.Result[T] {
		return call(r.ctx)
	}, func(result problem.Result[T]) {
		if r.ctx.Err() != nil {
			r.logger.Debug().Msg("screen closed, result dropped")
			return
		}
		done(result)
	})
}

// signedOut is the navigation used whenever the session is gone.
var signedOut = Navigate{To: RouteLogin, ClearBackStack: true}

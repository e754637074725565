// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package screens

import (
	"context"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/problem"
	"github.com/MKhiriev/sommelier/internal/service"
	"github.com/MKhiriev/sommelier/internal/validators"
	"github.com/MKhiriev/sommelier/internal/workers"
)

// MsgPasswordResetSent is shown once the reset email is on its way.
const MsgPasswordResetSent = "Check your inbox for the password reset code"

type ForgotPasswordModel struct {
	Email Field
}

type ForgotPasswordAction interface {
	forgotPasswordAction()
}

type (
	ForgotPasswordEmailChanged struct{ Text string }
	ForgotPasswordSendClicked  struct{}
	ForgotPasswordRequested    struct{}
	ForgotPasswordBackClicked  struct{}
)

func (ForgotPasswordEmailChanged) forgotPasswordAction() {}
func (ForgotPasswordSendClicked) forgotPasswordAction()  {}
func (ForgotPasswordRequested) forgotPasswordAction()    {}
func (ForgotPasswordBackClicked) forgotPasswordAction()  {}

type ForgotPasswordScreen struct {
	*reducer[ForgotPasswordModel, ForgotPasswordAction]
	facade service.ForgotPasswordFacade
}

func NewForgotPasswordScreen(facade service.ForgotPasswordFacade, dispatcher workers.Dispatcher, log *logger.Logger) *ForgotPasswordScreen {
	s := &ForgotPasswordScreen{
		reducer: newReducer[ForgotPasswordModel, ForgotPasswordAction]("forgot-password", ForgotPasswordModel{}, dispatcher, log),
		facade:  facade,
	}
	s.reduce = s.reduceAction
	return s
}

func (s *ForgotPasswordScreen) reduceAction(action ForgotPasswordAction) {
	m := s.model()

	switch a := action.(type) {
	case ForgotPasswordEmailChanged:
		m.Email = NewField(a.Text)
		s.set(Resume, m)

	case ForgotPasswordSendClicked:
		m.Email = m.Email.check(validators.Email(m.Email.Text))
		if !allValid(m.Email) {
			s.set(Resume, m)
			return
		}
		s.startLoading(m, ForgotPasswordRequested{})

	case ForgotPasswordRequested:
		launch(s.reducer, func(ctx context.Context) problem.Result[problem.Unit] {
			return s.facade.SendPasswordResetEmail(ctx, m.Email.Text)
		}, func(result problem.Result[problem.Unit]) {
			result.Fold(func(p problem.Problem) {
				s.fail(m, p)
			}, func(problem.Unit) {
				s.set(Success, m)
				s.emit(ShowSnackbarMessage{Message: MsgPasswordResetSent})
			})
		})

	case ForgotPasswordBackClicked:
		s.emit(NavigateBack{})
	}
}

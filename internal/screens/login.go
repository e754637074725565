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

type LoginModel struct {
	Email    Field
	Password Field
}

// LoginAction is one of the LoginXxx action types below.
type LoginAction interface {
	loginAction()
}

type (
	LoginEmailChanged          struct{ Text string }
	LoginPasswordChanged       struct{ Text string }
	LoginClicked               struct{}
	LoginRequested             struct{}
	LoginForgotPasswordClicked struct{}
	LoginSignUpClicked         struct{}
)

func (LoginEmailChanged) loginAction()          {}
func (LoginPasswordChanged) loginAction()       {}
func (LoginClicked) loginAction()               {}
func (LoginRequested) loginAction()             {}
func (LoginForgotPasswordClicked) loginAction() {}
func (LoginSignUpClicked) loginAction()         {}

type LoginScreen struct {
	*reducer[LoginModel, LoginAction]
	facade service.LoginFacade
}

func NewLoginScreen(facade service.LoginFacade, dispatcher workers.Dispatcher, log *logger.Logger) *LoginScreen {
	s := &LoginScreen{
		reducer: newReducer[LoginModel, LoginAction]("login", LoginModel{}, dispatcher, log),
		facade:  facade,
	}
	s.reduce = s.reduceAction
	return s
}

func (s *LoginScreen) reduceAction(action LoginAction) {
	m := s.model()

	switch a := action.(type) {
	case LoginEmailChanged:
		m.Email = NewField(a.Text)
		s.set(Resume, m)

	case LoginPasswordChanged:
		m.Password = NewField(a.Text)
		s.set(Resume, m)

	case LoginClicked:
		m.Email = m.Email.check(validators.Email(m.Email.Text))
		m.Password = m.Password.check(validators.Password(m.Password.Text))
		if !allValid(m.Email, m.Password) {
			s.set(Resume, m)
			return
		}
		s.startLoading(m, LoginRequested{})

	case LoginRequested:
		launch(s.reducer, func(ctx context.Context) problem.Result[bool] {
			return s.facade.Login(ctx, m.Email.Text, m.Password.Text)
		}, func(result problem.Result[bool]) {
			result.Fold(func(p problem.Problem) {
				s.fail(m, p)
			}, func(verified bool) {
				s.set(Success, m)
				if verified {
					s.emit(Navigate{To: RouteHome, ClearBackStack: true})
				} else {
					s.emit(Navigate{To: RouteEmailVerification, ClearBackStack: true})
				}
			})
		})

	case LoginForgotPasswordClicked:
		s.emit(Navigate{To: RouteForgotPassword})

	case LoginSignUpClicked:
		s.emit(Navigate{To: RouteRegister})
	}
}

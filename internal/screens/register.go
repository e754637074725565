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

type RegisterModel struct {
	Name         Field
	Email        Field
	Password     Field
	Confirmation Field
}

type RegisterAction interface {
	registerAction()
}

type (
	RegisterNameChanged         struct{ Text string }
	RegisterEmailChanged        struct{ Text string }
	RegisterPasswordChanged     struct{ Text string }
	RegisterConfirmationChanged struct{ Text string }
	RegisterClicked             struct{}
	RegisterRequested           struct{}
	RegisterBackClicked         struct{}
)

func (RegisterNameChanged) registerAction()         {}
func (RegisterEmailChanged) registerAction()        {}
func (RegisterPasswordChanged) registerAction()     {}
func (RegisterConfirmationChanged) registerAction() {}
func (RegisterClicked) registerAction()             {}
func (RegisterRequested) registerAction()           {}
func (RegisterBackClicked) registerAction()         {}

type RegisterScreen struct {
	*reducer[RegisterModel, RegisterAction]
	facade service.RegisterFacade
}

func NewRegisterScreen(facade service.RegisterFacade, dispatcher workers.Dispatcher, log *logger.Logger) *RegisterScreen {
	s := &RegisterScreen{
		reducer: newReducer[RegisterModel, RegisterAction]("register", RegisterModel{}, dispatcher, log),
		facade:  facade,
	}
	s.reduce = s.reduceAction
	return s
}

func (s *RegisterScreen) reduceAction(action RegisterAction) {
	m := s.model()

	switch a := action.(type) {
	case RegisterNameChanged:
		m.Name = NewField(a.Text)
		s.set(Resume, m)

	case RegisterEmailChanged:
		m.Email = NewField(a.Text)
		s.set(Resume, m)

	case RegisterPasswordChanged:
		m.Password = NewField(a.Text)
		s.set(Resume, m)

	case RegisterConfirmationChanged:
		m.Confirmation = NewField(a.Text)
		s.set(Resume, m)

	case RegisterClicked:
		m.Name = m.Name.check(validators.Name(m.Name.Text))
		m.Email = m.Email.check(validators.Email(m.Email.Text))
		m.Password = m.Password.check(validators.Password(m.Password.Text))
		m.Confirmation = m.Confirmation.check(validators.PasswordConfirmation(m.Password.Text, m.Confirmation.Text))
		if !allValid(m.Name, m.Email, m.Password, m.Confirmation) {
			s.set(Resume, m)
			return
		}
		s.startLoading(m, RegisterRequested{})

	case RegisterRequested:
		launch(s.reducer, func(ctx context.Context) problem.Result[problem.Unit] {
			return s.facade.Register(ctx, m.Name.Text, m.Email.Text, m.Password.Text)
		}, func(result problem.Result[problem.Unit]) {
			result.Fold(func(p problem.Problem) {
				s.fail(m, p)
			}, func(problem.Unit) {
				s.set(Success, m)
				s.emit(Navigate{To: RouteEmailVerification, ClearBackStack: true})
			})
		})

	case RegisterBackClicked:
		s.emit(NavigateBack{})
	}
}

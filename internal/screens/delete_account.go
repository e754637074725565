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

// DeleteAccountModel holds the credentials re-entered to confirm the
// deletion.
type DeleteAccountModel struct {
	Email    Field
	Password Field
}

type DeleteAccountAction interface {
	deleteAccountAction()
}

type (
	DeleteAccountEmailChanged    struct{ Text string }
	DeleteAccountPasswordChanged struct{ Text string }
	DeleteAccountClicked         struct{}
	DeleteAccountRequested       struct{}
	DeleteAccountBackClicked     struct{}
)

func (DeleteAccountEmailChanged) deleteAccountAction()    {}
func (DeleteAccountPasswordChanged) deleteAccountAction() {}
func (DeleteAccountClicked) deleteAccountAction()         {}
func (DeleteAccountRequested) deleteAccountAction()       {}
func (DeleteAccountBackClicked) deleteAccountAction()     {}

type DeleteAccountScreen struct {
	*reducer[DeleteAccountModel, DeleteAccountAction]
	facade service.DeleteAccountFacade
}

func NewDeleteAccountScreen(facade service.DeleteAccountFacade, dispatcher workers.Dispatcher, log *logger.Logger) *DeleteAccountScreen {
	s := &DeleteAccountScreen{
		reducer: newReducer[DeleteAccountModel, DeleteAccountAction]("delete-account", DeleteAccountModel{}, dispatcher, log),
		facade:  facade,
	}
	s.reduce = s.reduceAction
	return s
}

func (s *DeleteAccountScreen) reduceAction(action DeleteAccountAction) {
	m := s.model()

	switch a := action.(type) {
	case DeleteAccountEmailChanged:
		m.Email = NewField(a.Text)
		s.set(Resume, m)

	case DeleteAccountPasswordChanged:
		m.Password = NewField(a.Text)
		s.set(Resume, m)

	case DeleteAccountClicked:
		m.Email = m.Email.check(validators.Email(m.Email.Text))
		m.Password = m.Password.check(validators.Password(m.Password.Text))
		if !allValid(m.Email, m.Password) {
			s.set(Resume, m)
			return
		}
		s.startLoading(m, DeleteAccountRequested{})

	case DeleteAccountRequested:
		launch(s.reducer, func(ctx context.Context) problem.Result[problem.Unit] {
			return s.facade.DeleteAccount(ctx, m.Email.Text, m.Password.Text)
		}, func(result problem.Result[problem.Unit]) {
			result.Fold(func(p problem.Problem) {
				s.fail(m, p)
			}, func(problem.Unit) {
				s.set(Success, m)
				s.emit(signedOut)
			})
		})

	case DeleteAccountBackClicked:
		s.emit(NavigateBack{})
	}
}

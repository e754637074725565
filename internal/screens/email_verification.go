// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package screens

import (
	"context"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/problem"
	"github.com/MKhiriev/sommelier/internal/service"
	"github.com/MKhiriev/sommelier/internal/workers"
)

const (
	MsgVerificationSent = "Verification email sent"
	MsgEmailNotVerified = "Your email is not verified yet"
)

type EmailVerificationModel struct{}

type EmailVerificationAction interface {
	emailVerificationAction()
}

type (
	EmailVerificationResendClicked    struct{}
	EmailVerificationResendRequested  struct{}
	EmailVerificationCheckClicked     struct{}
	EmailVerificationCheckRequested   struct{}
	EmailVerificationSignOutClicked   struct{}
	EmailVerificationSignOutRequested struct{}
)

func (EmailVerificationResendClicked) emailVerificationAction()    {}
func (EmailVerificationResendRequested) emailVerificationAction()  {}
func (EmailVerificationCheckClicked) emailVerificationAction()     {}
func (EmailVerificationCheckRequested) emailVerificationAction()   {}
func (EmailVerificationSignOutClicked) emailVerificationAction()   {}
func (EmailVerificationSignOutRequested) emailVerificationAction() {}

type EmailVerificationScreen struct {
	*reducer[EmailVerificationModel, EmailVerificationAction]
	facade service.EmailVerificationFacade
}

func NewEmailVerificationScreen(facade service.EmailVerificationFacade, dispatcher workers.Dispatcher, log *logger.Logger) *EmailVerificationScreen {
	s := &EmailVerificationScreen{
		reducer: newReducer[EmailVerificationModel, EmailVerificationAction]("email-verification", EmailVerificationModel{}, dispatcher, log),
		facade:  facade,
	}
	s.reduce = s.reduceAction
	return s
}

func (s *EmailVerificationScreen) reduceAction(action EmailVerificationAction) {
	m := s.model()

	switch action.(type) {
	case EmailVerificationResendClicked:
		s.startLoading(m, EmailVerificationResendRequested{})

	case EmailVerificationResendRequested:
		launch(s.reducer, s.facade.SendEmailVerification, func(result problem.Result[problem.Unit]) {
			result.Fold(func(p problem.Problem) {
				s.failOrSignOut(m, p)
			}, func(problem.Unit) {
				s.set(Resume, m)
				s.emit(ShowSnackbarMessage{Message: MsgVerificationSent})
			})
		})

	case EmailVerificationCheckClicked:
		s.startLoading(m, EmailVerificationCheckRequested{})

	case EmailVerificationCheckRequested:
		launch(s.reducer, s.facade.IsEmailVerified, func(result problem.Result[bool]) {
			result.Fold(func(p problem.Problem) {
				s.failOrSignOut(m, p)
			}, func(verified bool) {
				if !verified {
					s.fail(m, problem.New(problem.EmailNotVerified, MsgEmailNotVerified))
					return
				}
				s.set(Success, m)
				s.emit(Navigate{To: RouteHome, ClearBackStack: true})
			})
		})

	case EmailVerificationSignOutClicked:
		s.startLoading(m, EmailVerificationSignOutRequested{})

	case EmailVerificationSignOutRequested:
		launch(s.reducer, func(ctx context.Context) problem.Result[problem.Unit] {
			return s.facade.SignOut(ctx)
		}, func(result problem.Result[problem.Unit]) {
			signOutDone(s.reducer, m, result)
		})
	}
}

func (s *EmailVerificationScreen) failOrSignOut(m EmailVerificationModel, p problem.Problem) {
	if p.Kind == problem.NullUser {
		s.set(Success, m)
		s.emit(signedOut)
		return
	}
	s.fail(m, p)
}

// signOutDone completes a sign-out step. A session that is already gone
// counts as signed out.
func signOutDone[M, A any](r *reducer[M, A], m M, result problem.Result[problem.Unit]) {
	if p, failed := result.Problem(); failed && p.Kind != problem.AlreadySignedOutUser {
		r.fail(m, p)
		return
	}
	r.set(Success, m)
	r.emit(signedOut)
}

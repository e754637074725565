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

type SplashModel struct{}

type SplashAction interface {
	splashAction()
}

type (
	// SplashStarted is sent when the splash screen is shown, and again to
	// retry after an error.
	SplashStarted   struct{}
	SplashRequested struct{}
)

func (SplashStarted) splashAction()   {}
func (SplashRequested) splashAction() {}

// SplashScreen decides where the application starts.
type SplashScreen struct {
	*reducer[SplashModel, SplashAction]
	facade service.SplashFacade
}

func NewSplashScreen(facade service.SplashFacade, dispatcher workers.Dispatcher, log *logger.Logger) *SplashScreen {
	s := &SplashScreen{
		reducer: newReducer[SplashModel, SplashAction]("splash", SplashModel{}, dispatcher, log),
		facade:  facade,
	}
	s.reduce = s.reduceAction
	return s
}

func (s *SplashScreen) reduceAction(action SplashAction) {
	m := s.model()

	switch action.(type) {
	case SplashStarted:
		s.startLoading(m, SplashRequested{})

	case SplashRequested:
		launch(s.reducer, s.startRoute, func(result problem.Result[Route]) {
			result.Fold(func(p problem.Problem) {
				if p.Kind == problem.NullUser {
					s.set(Success, m)
					s.emit(signedOut)
					return
				}
				s.fail(m, p)
			}, func(route Route) {
				s.set(Success, m)
				s.emit(Navigate{To: route, ClearBackStack: true})
			})
		})
	}
}

func (s *SplashScreen) startRoute(ctx context.Context) problem.Result[Route] {
	if !s.facade.IsSignedIn(ctx) {
		return problem.Success(RouteLogin)
	}
	return problem.Map(s.facade.IsEmailVerified(ctx), func(verified bool) Route {
		if verified {
			return RouteHome
		}
		return RouteEmailVerification
	})
}

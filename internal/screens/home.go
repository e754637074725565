// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package screens

import (
	"context"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/problem"
	"github.com/MKhiriev/sommelier/internal/service"
	"github.com/MKhiriev/sommelier/internal/workers"
	"github.com/MKhiriev/sommelier/models"
)

type HomeModel struct {
	Name     string
	Email    string
	PhotoURL string
	Reviews  []models.Review
	// ErrorMessage is shown in place of the content after a failed load.
	ErrorMessage string
}

type HomeAction interface {
	homeAction()
}

type (
	// HomeStarted is sent when the screen is shown and to retry a failed
	// load.
	HomeStarted          struct{}
	HomeLoadRequested    struct{}
	HomeProfileClicked   struct{}
	HomeAddReviewClicked struct{}
	HomeSignOutClicked   struct{}
	HomeSignOutRequested struct{}
)

func (HomeStarted) homeAction()          {}
func (HomeLoadRequested) homeAction()    {}
func (HomeProfileClicked) homeAction()   {}
func (HomeAddReviewClicked) homeAction() {}
func (HomeSignOutClicked) homeAction()   {}
func (HomeSignOutRequested) homeAction() {}

type HomeScreen struct {
	*reducer[HomeModel, HomeAction]
	facade service.HomeFacade
}

func NewHomeScreen(facade service.HomeFacade, dispatcher workers.Dispatcher, log *logger.Logger) *HomeScreen {
	s := &HomeScreen{
		reducer: newReducer[HomeModel, HomeAction]("home", HomeModel{}, dispatcher, log),
		facade:  facade,
	}
	s.reduce = s.reduceAction
	return s
}

func (s *HomeScreen) reduceAction(action HomeAction) {
	m := s.model()

	switch action.(type) {
	case HomeStarted:
		m.ErrorMessage = ""
		s.startLoading(m, HomeLoadRequested{})

	case HomeLoadRequested:
		launch(s.reducer, s.facade.LoadHome, func(result problem.Result[service.HomeOverview]) {
			result.Fold(func(p problem.Problem) {
				if p.Kind == problem.NullUser {
					s.set(Success, m)
					s.emit(signedOut)
					return
				}
				m.ErrorMessage = p.Message
				s.fail(m, p)
			}, func(overview service.HomeOverview) {
				s.set(Success, HomeModel{
					Name:     overview.Profile.Name,
					Email:    overview.Identity.Email,
					PhotoURL: overview.Profile.PhotoURL,
					Reviews:  overview.Reviews,
				})
			})
		})

	case HomeProfileClicked:
		s.emit(Navigate{To: RouteProfile})

	case HomeAddReviewClicked:
		s.emit(Navigate{To: RouteAddReview})

	case HomeSignOutClicked:
		s.startLoading(m, HomeSignOutRequested{})

	case HomeSignOutRequested:
		launch(s.reducer, func(ctx context.Context) problem.Result[problem.Unit] {
			return s.facade.SignOut(ctx)
		}, func(result problem.Result[problem.Unit]) {
			signOutDone(s.reducer, m, result)
		})
	}
}

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

// MsgUIDCopied confirms that the user id is on the clipboard.
const MsgUIDCopied = "User id copied to clipboard"

type ProfileModel struct {
	UID          string
	Name         string
	Email        string
	PhotoURL     string
	ErrorMessage string
}

type ProfileAction interface {
	profileAction()
}

type (
	ProfileStarted              struct{}
	ProfileLoadRequested        struct{}
	ProfileEditClicked          struct{}
	ProfileDeleteAccountClicked struct{}
	ProfileCopyUIDClicked       struct{}
	ProfileSignOutClicked       struct{}
	ProfileSignOutRequested     struct{}
	ProfileBackClicked          struct{}
)

func (ProfileStarted) profileAction()              {}
func (ProfileLoadRequested) profileAction()        {}
func (ProfileEditClicked) profileAction()          {}
func (ProfileDeleteAccountClicked) profileAction() {}
func (ProfileCopyUIDClicked) profileAction()       {}
func (ProfileSignOutClicked) profileAction()       {}
func (ProfileSignOutRequested) profileAction()     {}
func (ProfileBackClicked) profileAction()          {}

type ProfileScreen struct {
	*reducer[ProfileModel, ProfileAction]
	facade service.ProfileFacade
}

func NewProfileScreen(facade service.ProfileFacade, dispatcher workers.Dispatcher, log *logger.Logger) *ProfileScreen {
	s := &ProfileScreen{
		reducer: newReducer[ProfileModel, ProfileAction]("profile", ProfileModel{}, dispatcher, log),
		facade:  facade,
	}
	s.reduce = s.reduceAction
	return s
}

func (s *ProfileScreen) reduceAction(action ProfileAction) {
	m := s.model()

	switch action.(type) {
	case ProfileStarted:
		m.ErrorMessage = ""
		s.startLoading(m, ProfileLoadRequested{})

	case ProfileLoadRequested:
		launch(s.reducer, s.facade.LoadProfile, func(result problem.Result[models.UserProfile]) {
			result.Fold(func(p problem.Problem) {
				if p.Kind == problem.NullUser {
					s.set(Success, m)
					s.emit(signedOut)
					return
				}
				m.ErrorMessage = p.Message
				s.fail(m, p)
			}, func(profile models.UserProfile) {
				s.set(Success, ProfileModel{
					UID:      profile.UID,
					Name:     profile.Name,
					Email:    profile.Email,
					PhotoURL: profile.PhotoURL,
				})
			})
		})

	case ProfileEditClicked:
		s.emit(Navigate{To: RouteEditProfile})

	case ProfileDeleteAccountClicked:
		s.emit(Navigate{To: RouteDeleteAccount})

	case ProfileCopyUIDClicked:
		if m.UID != "" {
			s.emit(CopyToClipboard{Text: m.UID})
		}

	case ProfileSignOutClicked:
		s.startLoading(m, ProfileSignOutRequested{})

	case ProfileSignOutRequested:
		launch(s.reducer, func(ctx context.Context) problem.Result[problem.Unit] {
			return s.facade.SignOut(ctx)
		}, func(result problem.Result[problem.Unit]) {
			signOutDone(s.reducer, m, result)
		})

	case ProfileBackClicked:
		s.emit(NavigateBack{})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package screens

import (
	"context"
	"strings"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/problem"
	"github.com/MKhiriev/sommelier/internal/service"
	"github.com/MKhiriev/sommelier/internal/validators"
	"github.com/MKhiriev/sommelier/internal/workers"
	"github.com/MKhiriev/sommelier/models"
)

type EditProfileModel struct {
	Name  Field
	Email Field
	// PhotoPath is a local file to upload as the new photo; empty keeps
	// PhotoURL.
	PhotoPath Field
	PhotoURL  string
}

type EditProfileAction interface {
	editProfileAction()
}

type (
	EditProfileStarted          struct{}
	EditProfileLoadRequested    struct{}
	EditProfileNameChanged      struct{ Text string }
	EditProfileEmailChanged     struct{ Text string }
	EditProfilePhotoPathChanged struct{ Text string }
	EditProfileSaveClicked      struct{}
	EditProfileSaveRequested    struct{}
	EditProfileBackClicked      struct{}
)

func (EditProfileStarted) editProfileAction()          {}
func (EditProfileLoadRequested) editProfileAction()    {}
func (EditProfileNameChanged) editProfileAction()      {}
func (EditProfileEmailChanged) editProfileAction()     {}
func (EditProfilePhotoPathChanged) editProfileAction() {}
func (EditProfileSaveClicked) editProfileAction()      {}
func (EditProfileSaveRequested) editProfileAction()    {}
func (EditProfileBackClicked) editProfileAction()      {}

type EditProfileScreen struct {
	*reducer[EditProfileModel, EditProfileAction]
	facade service.EditProfileFacade
}

func NewEditProfileScreen(facade service.EditProfileFacade, dispatcher workers.Dispatcher, log *logger.Logger) *EditProfileScreen {
	s := &EditProfileScreen{
		reducer: newReducer[EditProfileModel, EditProfileAction]("edit-profile", EditProfileModel{}, dispatcher, log),
		facade:  facade,
	}
	s.reduce = s.reduceAction
	return s
}

func (s *EditProfileScreen) reduceAction(action EditProfileAction) {
	m := s.model()

	switch a := action.(type) {
	case EditProfileStarted:
		s.startLoading(m, EditProfileLoadRequested{})

	case EditProfileLoadRequested:
		launch(s.reducer, s.facade.LoadProfile, func(result problem.Result[models.UserProfile]) {
			result.Fold(func(p problem.Problem) {
				if p.Kind == problem.NullUser {
					s.set(Success, m)
					s.emit(signedOut)
					return
				}
				s.fail(m, p)
			}, func(profile models.UserProfile) {
				s.set(Resume, EditProfileModel{
					Name:     NewField(profile.Name),
					Email:    NewField(profile.Email),
					PhotoURL: profile.PhotoURL,
				})
			})
		})

	case EditProfileNameChanged:
		m.Name = NewField(a.Text)
		s.set(Resume, m)

	case EditProfileEmailChanged:
		m.Email = NewField(a.Text)
		s.set(Resume, m)

	case EditProfilePhotoPathChanged:
		m.PhotoPath = NewField(a.Text)
		s.set(Resume, m)

	case EditProfileSaveClicked:
		m.Name = m.Name.check(validators.Name(m.Name.Text))
		m.Email = m.Email.check(validators.Email(m.Email.Text))
		if !allValid(m.Name, m.Email) {
			s.set(Resume, m)
			return
		}
		s.startLoading(m, EditProfileSaveRequested{})

	case EditProfileSaveRequested:
		changes := service.ProfileChanges{
			Name:      strings.TrimSpace(m.Name.Text),
			Email:     strings.TrimSpace(m.Email.Text),
			PhotoPath: strings.TrimSpace(m.PhotoPath.Text),
		}
		launch(s.reducer, func(ctx context.Context) problem.Result[problem.Unit] {
			return s.facade.SaveProfile(ctx, changes)
		}, func(result problem.Result[problem.Unit]) {
			result.Fold(func(p problem.Problem) {
				s.fail(m, p)
			}, func(problem.Unit) {
				s.set(Success, m)
				s.emit(NavigateBack{})
			})
		})

	case EditProfileBackClicked:
		s.emit(NavigateBack{})
	}
}

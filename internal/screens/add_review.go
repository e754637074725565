// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package screens

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/problem"
	"github.com/MKhiriev/sommelier/internal/service"
	"github.com/MKhiriev/sommelier/internal/validators"
	"github.com/MKhiriev/sommelier/internal/workers"
	"github.com/MKhiriev/sommelier/models"
)

type AddReviewModel struct {
	Restaurant Field
	Rating     Field
	Comment    Field
}

type AddReviewAction interface {
	addReviewAction()
}

type (
	AddReviewRestaurantChanged struct{ Text string }
	AddReviewRatingChanged     struct{ Text string }
	AddReviewCommentChanged    struct{ Text string }
	AddReviewSubmitClicked     struct{}
	AddReviewSubmitRequested   struct{}
	AddReviewBackClicked       struct{}
)

func (AddReviewRestaurantChanged) addReviewAction() {}
func (AddReviewRatingChanged) addReviewAction()     {}
func (AddReviewCommentChanged) addReviewAction()    {}
func (AddReviewSubmitClicked) addReviewAction()     {}
func (AddReviewSubmitRequested) addReviewAction()   {}
func (AddReviewBackClicked) addReviewAction()       {}

type AddReviewScreen struct {
	*reducer[AddReviewModel, AddReviewAction]
	facade service.AddReviewFacade
}

func NewAddReviewScreen(facade service.AddReviewFacade, dispatcher workers.Dispatcher, log *logger.Logger) *AddReviewScreen {
	s := &AddReviewScreen{
		reducer: newReducer[AddReviewModel, AddReviewAction]("add-review", AddReviewModel{}, dispatcher, log),
		facade:  facade,
	}
	s.reduce = s.reduceAction
	return s
}

func (s *AddReviewScreen) reduceAction(action AddReviewAction) {
	m := s.model()

	switch a := action.(type) {
	case AddReviewRestaurantChanged:
		m.Restaurant = NewField(a.Text)
		s.set(Resume, m)

	case AddReviewRatingChanged:
		m.Rating = NewField(a.Text)
		s.set(Resume, m)

	case AddReviewCommentChanged:
		m.Comment = NewField(a.Text)
		s.set(Resume, m)

	case AddReviewSubmitClicked:
		m.Restaurant = m.Restaurant.check(validators.Restaurant(m.Restaurant.Text))
		m.Rating = m.Rating.check(validators.Rating(m.Rating.Text))
		m.Comment = m.Comment.check(validators.Comment(m.Comment.Text))
		if !allValid(m.Restaurant, m.Rating, m.Comment) {
			s.set(Resume, m)
			return
		}
		s.startLoading(m, AddReviewSubmitRequested{})

	case AddReviewSubmitRequested:
		// the rating passed validation before Loading was published
		rating, _ := strconv.Atoi(strings.TrimSpace(m.Rating.Text))
		draft := service.ReviewDraft{
			Restaurant: strings.TrimSpace(m.Restaurant.Text),
			Rating:     rating,
			Comment:    strings.TrimSpace(m.Comment.Text),
		}
		launch(s.reducer, func(ctx context.Context) problem.Result[models.Review] {
			return s.facade.SubmitReview(ctx, draft)
		}, func(result problem.Result[models.Review]) {
			result.Fold(func(p problem.Problem) {
				s.fail(m, p)
			}, func(models.Review) {
				s.set(Success, m)
				s.emit(NavigateBack{})
			})
		})

	case AddReviewBackClicked:
		s.emit(NavigateBack{})
	}
}

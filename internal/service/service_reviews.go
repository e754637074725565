// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/store"
	"github.com/MKhiriev/sommelier/internal/utils"
	"github.com/MKhiriev/sommelier/models"
)

type reviewService struct {
	reviews store.ReviewRepository
	ids     uidGenerator
	logger  *logger.Logger
}

func NewReviewService(reviews store.ReviewRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviews: reviews,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

// CreateReview assigns the review a fresh id and stores it. Any id sent by
// the caller is ignored.
func (s *reviewService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	review.ID = s.ids.Generate()
	review.Restaurant = strings.TrimSpace(review.Restaurant)
	review.Comment = strings.TrimSpace(review.Comment)

	created, err := s.reviews.CreateReview(ctx, review)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("author_uid", review.AuthorUID).Msg("review creation failed")
		return models.Review{}, fmt.Errorf("review creation failed: %w", err)
	}
	return created, nil
}

// ListReviews returns the reviews of authorUID, newest first.
func (s *reviewService) ListReviews(ctx context.Context, authorUID string) ([]models.Review, error) {
	if authorUID == "" {
		return nil, ErrInvalidDataProvided
	}

	reviews, err := s.reviews.ListReviewsByAuthor(ctx, authorUID)
	if err != nil {
		return nil, fmt.Errorf("review search failed: %w", err)
	}
	return reviews, nil
}

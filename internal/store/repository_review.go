// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/models"
	"github.com/jackc/pgerrcode"
)

type reviewRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReview stores review (its ID is assigned by the caller) and returns
// it with CreatedAt filled in. An unknown author yields [ErrAccountNotFound].
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertReviewQuery(review)
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		if err := row.Err(); err != nil {
			return err
		}
		return row.Scan(&review.CreatedAt)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.CreateReview").
			Str("author_uid", review.AuthorUID).
			Msg("error creating review")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Review{}, ErrAccountNotFound
		}
		return models.Review{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return review, nil
}

// ListReviewsByAuthor returns the author's reviews, newest first. Returns an
// empty slice when the author has none.
func (r *reviewRepository) ListReviewsByAuthor(ctx context.Context, authorUID string) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectReviewsByAuthorQuery(authorUID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.ListReviewsByAuthor").
			Str("author_uid", authorUID).
			Msg("failed to execute query for listing reviews")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0, 16)
	for rows.Next() {
		var review models.Review
		if scanErr := rows.Scan(
			&review.ID,
			&review.AuthorUID,
			&review.Restaurant,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*reviewRepository.ListReviewsByAuthor").
				Str("author_uid", authorUID).
				Msg("failed to scan review row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.ListReviewsByAuthor").
			Str("author_uid", authorUID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, nil
}

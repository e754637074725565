// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/models"
	"github.com/jackc/pgerrcode"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository] over the "profiles" table.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfile stores a new profile document.
//
// Error handling:
//   - unique_violation (23505) → [ErrProfileAlreadyExists].
//   - foreign_key_violation (23503) → [ErrAccountNotFound].
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.UserProfile) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProfileQuery(profile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Str("uid", profile.UID).Msg("error creating profile")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrProfileAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return ErrAccountNotFound
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// GetProfile returns the profile document of uid or [ErrProfileNotFound].
func (r *profileRepository) GetProfile(ctx context.Context, uid string) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfileQuery(uid)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var profile models.UserProfile
	err = r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		if err := row.Err(); err != nil {
			return err
		}
		return row.Scan(&profile.UID, &profile.Name, &profile.Email, &profile.PhotoURL, &profile.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserProfile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*profileRepository.GetProfile").Str("uid", uid).Msg("error getting profile")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profile, nil
}

// UpdateProfile overwrites name, email and photo of an existing profile.
func (r *profileRepository) UpdateProfile(ctx context.Context, profile models.UserProfile) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(profile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() (execErr error) {
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Str("uid", profile.UID).Msg("error updating profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrProfileNotFound)
}

func (r *profileRepository) DeleteProfile(ctx context.Context, uid string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProfileQuery(uid)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() (execErr error) {
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.DeleteProfile").Str("uid", uid).Msg("error deleting profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrProfileNotFound)
}

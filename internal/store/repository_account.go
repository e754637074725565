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

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles sign-in accounts in the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account and returns it with server-assigned
// fields (EmailVerified, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAccountAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(account)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Account
	err = r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		if err := row.Err(); err != nil {
			return err
		}
		return row.Scan(&created.UID, &created.Email, &created.PasswordHash, &created.EmailVerified, &created.CreatedAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error creating account")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrAccountAlreadyExists
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindAccountByEmail retrieves the account registered with email.
// Returns [ErrAccountNotFound] if there is none.
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findAccount(ctx, "email", email)
}

// FindAccountByUID retrieves the account with the given UID.
// Returns [ErrAccountNotFound] if there is none.
func (r *accountRepository) FindAccountByUID(ctx context.Context, uid string) (models.Account, error) {
	return r.findAccount(ctx, "uid", uid)
}

func (r *accountRepository) findAccount(ctx context.Context, column, value string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountQuery(column, value)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Account
	err = r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		if err := row.Err(); err != nil {
			return err
		}
		return row.Scan(&found.UID, &found.Email, &found.PasswordHash, &found.EmailVerified, &found.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.NoDataFound {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.findAccount").Str("by", column).Msg("error finding account")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateEmail implements [AccountRepository]. The new email starts
// unverified. Returns [ErrAccountAlreadyExists] if another account uses it.
func (r *accountRepository) UpdateEmail(ctx context.Context, uid, email string) error {
	return r.update(ctx, "UpdateEmail", uid, map[string]any{
		"email":          email,
		"email_verified": false,
	})
}

// UpdatePasswordHash implements [AccountRepository].
func (r *accountRepository) UpdatePasswordHash(ctx context.Context, uid, passwordHash string) error {
	return r.update(ctx, "UpdatePasswordHash", uid, map[string]any{
		"password_hash": passwordHash,
	})
}

// MarkEmailVerified implements [AccountRepository].
func (r *accountRepository) MarkEmailVerified(ctx context.Context, uid string) error {
	return r.update(ctx, "MarkEmailVerified", uid, map[string]any{
		"email_verified": true,
	})
}

func (r *accountRepository) update(ctx context.Context, op, uid string, set map[string]any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(uid, set)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() (execErr error) {
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository."+op).Str("uid", uid).Msg("error updating account")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrAccountAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrAccountNotFound)
}

// DeleteAccount implements [AccountRepository]. Profiles and reviews of the
// account are removed by the ON DELETE CASCADE foreign keys.
func (r *accountRepository) DeleteAccount(ctx context.Context, uid string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAccountQuery(uid)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() (execErr error) {
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Str("uid", uid).Msg("error deleting account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrAccountNotFound)
}

// requireAffected returns notFound if the statement touched no rows.
func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

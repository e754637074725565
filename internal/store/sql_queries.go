// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/sommelier/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	accountsTable = "accounts"
	sessionsTable = "sessions"

	// the client keeps exactly one session row
	sessionRowID = 1
)

var (
	psql   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	accountColumns = []string{"uid", "email", "password_hash", "email_verified", "created_at"}
	profileColumns = []string{"uid", "name", "email", "photo_url", "created_at"}
	reviewColumns  = []string{"id", "author_uid", "restaurant", "rating", "comment", "created_at"}
)

// ── accounts ────────────────────────────────────────────────────────────────

func buildInsertAccountQuery(account models.Account) (string, []any, error) {
	return psql.
		Insert(accountsTable).
		Columns("uid", "email", "password_hash").
		Values(account.UID, account.Email, account.PasswordHash).
		Suffix("RETURNING " + strings.Join(accountColumns, ", ")).
		ToSql()
}

func buildSelectAccountQuery(column, value string) (string, []any, error) {
	return psql.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{column: value}).
		ToSql()
}

func buildUpdateAccountQuery(uid string, set map[string]any) (string, []any, error) {
	return psql.
		Update(accountsTable).
		SetMap(set).
		Where(sq.Eq{"uid": uid}).
		ToSql()
}

func buildDeleteAccountQuery(uid string) (string, []any, error) {
	return psql.
		Delete(accountsTable).
		Where(sq.Eq{"uid": uid}).
		ToSql()
}

// ── profiles ────────────────────────────────────────────────────────────────

func buildInsertProfileQuery(profile models.UserProfile) (string, []any, error) {
	return psql.
		Insert(profile.TableName()).
		Columns("uid", "name", "email", "photo_url").
		Values(profile.UID, profile.Name, profile.Email, profile.PhotoURL).
		ToSql()
}

func buildSelectProfileQuery(uid string) (string, []any, error) {
	return psql.
		Select(profileColumns...).
		From(models.UserProfile{}.TableName()).
		Where(sq.Eq{"uid": uid}).
		ToSql()
}

func buildUpdateProfileQuery(profile models.UserProfile) (string, []any, error) {
	return psql.
		Update(profile.TableName()).
		Set("name", profile.Name).
		Set("email", profile.Email).
		Set("photo_url", profile.PhotoURL).
		Where(sq.Eq{"uid": profile.UID}).
		ToSql()
}

func buildDeleteProfileQuery(uid string) (string, []any, error) {
	return psql.
		Delete(models.UserProfile{}.TableName()).
		Where(sq.Eq{"uid": uid}).
		ToSql()
}

// ── reviews ─────────────────────────────────────────────────────────────────

func buildInsertReviewQuery(review models.Review) (string, []any, error) {
	return psql.
		Insert(review.TableName()).
		Columns("id", "author_uid", "restaurant", "rating", "comment").
		Values(review.ID, review.AuthorUID, review.Restaurant, review.Rating, review.Comment).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildSelectReviewsByAuthorQuery(authorUID string) (string, []any, error) {
	return psql.
		Select(reviewColumns...).
		From(models.Review{}.TableName()).
		Where(sq.Eq{"author_uid": authorUID}).
		OrderBy("created_at DESC").
		ToSql()
}

// ── client session (sqlite) ─────────────────────────────────────────────────

func buildSelectSessionQuery() (string, []any, error) {
	return sqlite.
		Select("token").
		From(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildUpsertSessionQuery(token string, savedAt time.Time) (string, []any, error) {
	return sqlite.
		Insert(sessionsTable).
		Columns("id", "token", "saved_at").
		Values(sessionRowID, token, savedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at").
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return sqlite.
		Delete(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

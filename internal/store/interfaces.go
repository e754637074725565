// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/sommelier/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository stores sign-in accounts of the backend.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	FindAccountByUID(ctx context.Context, uid string) (models.Account, error)
	// UpdateEmail replaces the account email and resets its verified flag.
	UpdateEmail(ctx context.Context, uid, email string) error
	UpdatePasswordHash(ctx context.Context, uid, passwordHash string) error
	MarkEmailVerified(ctx context.Context, uid string) error
	// DeleteAccount removes the account together with its profile and reviews.
	DeleteAccount(ctx context.Context, uid string) error
}

// ProfileRepository stores user profile documents keyed by UID.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile models.UserProfile) error
	GetProfile(ctx context.Context, uid string) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, profile models.UserProfile) error
	DeleteProfile(ctx context.Context, uid string) error
}

// ReviewRepository stores restaurant reviews.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	ListReviewsByAuthor(ctx context.Context, authorUID string) ([]models.Review, error)
}

// CodePurpose separates one-time codes issued for different flows.
type CodePurpose string

const (
	PurposeEmailVerification CodePurpose = "verify"
	PurposePasswordReset     CodePurpose = "reset"
)

// CodeStore keeps one-time codes (stored as hashes) mapped to account UIDs.
type CodeStore interface {
	SaveCode(ctx context.Context, purpose CodePurpose, codeHash, uid string, ttl time.Duration) error
	// ConsumeCode returns the UID the code was issued for and invalidates the
	// code. Returns [ErrCodeNotFound] for unknown or expired codes.
	ConsumeCode(ctx context.Context, purpose CodePurpose, codeHash string) (string, error)
}

// TokenDenyList records revoked token ids until the tokens expire.
type TokenDenyList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// FileStorage persists uploaded files and returns their public URLs.
type FileStorage interface {
	SaveFile(ctx context.Context, originalName string, content io.Reader) (string, error)
}

// SessionRepository keeps the client's bearer token between runs.
type SessionRepository interface {
	// LoadToken returns the stored token or an empty string if there is none.
	LoadToken(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

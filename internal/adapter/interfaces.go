// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the sommelier server.
//
// The server plays three remote collaborators and the package exposes one
// interface per collaborator: [AuthProvider] for accounts and sessions,
// [DocumentStore] for profile and review documents, and [FileUploader] for
// photos. [NewHTTPAdapter] returns a single REST implementation of all three.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). The body
// of the error response is kept in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/sommelier/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthProvider manages the account of the device user. The bearer token of
// the current session is persisted through a [SessionStore], so a session
// survives restarts of the client.
type AuthProvider interface {
	// Register creates an account, starts a session for it and returns the
	// new account UID. Returns [ErrConflict] (wrapped) if the email is taken.
	Register(ctx context.Context, credentials models.Credentials) (string, error)

	// SignIn starts a session. Returns [ErrUnauthorized] (wrapped) if the
	// credentials are rejected.
	SignIn(ctx context.Context, credentials models.Credentials) error

	// SignOut revokes the current session on the server and forgets it
	// locally. Returns [ErrNoSession] if there is no session.
	SignOut(ctx context.Context) error

	// IsSignedIn reports whether a session token is held locally.
	IsSignedIn(ctx context.Context) bool

	// CurrentUser fetches the identity of the session's account. Returns
	// [ErrNoSession] without a session; an expired session is forgotten and
	// reported as [ErrUnauthorized].
	CurrentUser(ctx context.Context) (models.UserIdentity, error)

	// SendPasswordResetEmail asks the server to send a password reset code
	// to email. Returns [ErrNotFound] (wrapped) for an unknown email.
	SendPasswordResetEmail(ctx context.Context, email string) error

	// SendEmailVerification asks the server to send a verification link to
	// the session's email address.
	SendEmailVerification(ctx context.Context) error

	// Reauthenticate confirms the credentials of the session's account
	// before a sensitive operation.
	Reauthenticate(ctx context.Context, credentials models.Credentials) error

	// UpdateEmail changes the email address of the session's account. The
	// new address starts unverified.
	UpdateEmail(ctx context.Context, email string) error

	// DeleteCurrentUser deletes the session's account and forgets the
	// session.
	DeleteCurrentUser(ctx context.Context) error
}

// DocumentStore reads and writes the documents of the signed-in user.
// A missing document is reported as [ErrNotFound] (wrapped).
type DocumentStore interface {
	SaveUser(ctx context.Context, profile models.UserProfile) error
	GetUser(ctx context.Context, uid string) (models.UserProfile, error)
	UpdateUser(ctx context.Context, profile models.UserProfile) error
	DeleteUser(ctx context.Context, uid string) error

	// SaveReview stores a review and returns it with its server-assigned id
	// and creation time.
	SaveReview(ctx context.Context, review models.Review) (models.Review, error)

	// ListReviews returns the reviews of authorUID, newest first.
	ListReviews(ctx context.Context, authorUID string) ([]models.Review, error)
}

// FileUploader stores a local file on the server.
type FileUploader interface {
	// Upload sends the file at path and returns its public URL.
	Upload(ctx context.Context, path string) (string, error)
}

// Adapter is the union of the collaborators implemented by the HTTP adapter.
type Adapter interface {
	AuthProvider
	DocumentStore
	FileUploader
}

// SessionStore persists the bearer token of the current session.
type SessionStore interface {
	// LoadToken returns the stored token, or an empty string if there is
	// none.
	LoadToken(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

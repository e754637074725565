// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/sommelier/internal/problem"
	"github.com/MKhiriev/sommelier/models"
)

// Authenticator is the client's view of the remote authentication service.
// Every operation returns a Result; none of them panics or returns an error.
type Authenticator interface {
	RegisterUser(ctx context.Context, email, password string) problem.Result[string]
	SignIn(ctx context.Context, email, password string) problem.Result[problem.Unit]
	// SignOut fails with [problem.AlreadySignedOutUser] without a session.
	SignOut(ctx context.Context) problem.Result[problem.Unit]
	IsSignedIn(ctx context.Context) bool
	IsEmailVerified(ctx context.Context) problem.Result[bool]
	SendPasswordResetEmail(ctx context.Context, email string) problem.Result[problem.Unit]
	SendEmailVerification(ctx context.Context) problem.Result[problem.Unit]
	DeleteCurrentUser(ctx context.Context) problem.Result[problem.Unit]
	Reauthenticate(ctx context.Context, email, password string) problem.Result[problem.Unit]
	GetCurrentUser(ctx context.Context) problem.Result[models.UserIdentity]
	UpdateEmail(ctx context.Context, email string) problem.Result[problem.Unit]
}

// UserDocuments is the client's view of the profile documents. A missing
// document is reported as [problem.NotFoundDocument], any other failed
// request as [problem.RequestFailed].
type UserDocuments interface {
	SaveUser(ctx context.Context, profile models.UserProfile) problem.Result[problem.Unit]
	GetUser(ctx context.Context, uid string) problem.Result[models.UserProfile]
	UpdateUser(ctx context.Context, profile models.UserProfile) problem.Result[problem.Unit]
	DeleteUser(ctx context.Context, uid string) problem.Result[problem.Unit]
}

// ReviewDocuments is the client's view of the review documents.
type ReviewDocuments interface {
	SaveReview(ctx context.Context, review models.Review) problem.Result[models.Review]
	ListReviews(ctx context.Context, authorUID string) problem.Result[[]models.Review]
}

// FileUploads uploads local files and returns their public URLs.
type FileUploads interface {
	Upload(ctx context.Context, path string) problem.Result[string]
}

// ── per-screen facades ──────────────────────────────────────────────────────

type SplashFacade interface {
	IsSignedIn(ctx context.Context) bool
	IsEmailVerified(ctx context.Context) problem.Result[bool]
}

type LoginFacade interface {
	// Login signs in and reports whether the account email is verified.
	Login(ctx context.Context, email, password string) problem.Result[bool]
}

type RegisterFacade interface {
	// Register creates the account and then its profile document. Only the
	// account step decides the outcome.
	Register(ctx context.Context, name, email, password string) problem.Result[problem.Unit]
}

type ForgotPasswordFacade interface {
	SendPasswordResetEmail(ctx context.Context, email string) problem.Result[problem.Unit]
}

type EmailVerificationFacade interface {
	SendEmailVerification(ctx context.Context) problem.Result[problem.Unit]
	IsEmailVerified(ctx context.Context) problem.Result[bool]
	SignOut(ctx context.Context) problem.Result[problem.Unit]
}

// HomeOverview is what the home screen shows.
type HomeOverview struct {
	Identity models.UserIdentity
	Profile  models.UserProfile
	Reviews  []models.Review
}

type HomeFacade interface {
	LoadHome(ctx context.Context) problem.Result[HomeOverview]
	SignOut(ctx context.Context) problem.Result[problem.Unit]
}

type ProfileFacade interface {
	LoadProfile(ctx context.Context) problem.Result[models.UserProfile]
	SignOut(ctx context.Context) problem.Result[problem.Unit]
}

// ProfileChanges are the edits submitted from the edit profile screen. An
// empty PhotoPath keeps the current photo.
type ProfileChanges struct {
	Name      string
	Email     string
	PhotoPath string
}

type EditProfileFacade interface {
	LoadProfile(ctx context.Context) problem.Result[models.UserProfile]
	// SaveProfile uploads the photo, updates the email if it changed and
	// then the profile document. When the email changed, a failure of the
	// document update does not fail the operation.
	SaveProfile(ctx context.Context, changes ProfileChanges) problem.Result[problem.Unit]
}

type DeleteAccountFacade interface {
	DeleteAccount(ctx context.Context, email, password string) problem.Result[problem.Unit]
}

// ReviewDraft is a validated review before it has an author and id.
type ReviewDraft struct {
	Restaurant string
	Rating     int
	Comment    string
}

type AddReviewFacade interface {
	SubmitReview(ctx context.Context, draft ReviewDraft) problem.Result[models.Review]
}

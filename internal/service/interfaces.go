// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/sommelier/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper,UserServiceWrapper,ReviewServiceWrapper

// AuthService owns accounts, sessions and the one-time code flows.
type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.Account, models.Token, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Account, models.Token, error)
	Logout(ctx context.Context, token models.Token) error
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CurrentAccount(ctx context.Context, uid string) (models.Account, error)

	SendPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, confirmation models.PasswordResetConfirmation) error
	SendEmailVerification(ctx context.Context, uid string) error
	VerifyEmail(ctx context.Context, code string) error

	Reauthenticate(ctx context.Context, uid string, credentials models.Credentials) error
	UpdateEmail(ctx context.Context, uid, email string) error
	DeleteAccount(ctx context.Context, uid string) error
}

// UserService manages profile documents.
type UserService interface {
	CreateProfile(ctx context.Context, profile models.UserProfile) error
	GetProfile(ctx context.Context, uid string) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, profile models.UserProfile) error
	DeleteProfile(ctx context.Context, uid string) error
}

// ReviewService manages restaurant reviews.
type ReviewService interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	ListReviews(ctx context.Context, authorUID string) ([]models.Review, error)
}

// FileService stores uploaded files and returns their public URLs.
type FileService interface {
	SaveFile(ctx context.Context, originalName string, content io.Reader) (string, error)
}

// Mailer delivers one-time codes to an email address.
type Mailer interface {
	SendPasswordResetCode(ctx context.Context, email, code string) error
	SendVerificationCode(ctx context.Context, email, code string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// UserServiceWrapper defines middleware composition for UserService.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// ReviewServiceWrapper defines middleware composition for ReviewService.
type ReviewServiceWrapper interface {
	Wrap(ReviewService) ReviewService
}

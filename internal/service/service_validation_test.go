// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/sommelier/internal/mock"
	"github.com/MKhiriev/sommelier/internal/validators"
	"github.com/MKhiriev/sommelier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, models.Credentials{Email: "not-an-email", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)

	_, _, err = svc.Register(ctx, models.Credentials{Email: "ann@example.com", Password: "123"})
	assert.ErrorIs(t, err, validators.ErrInvalidPassword)

	_, _, err = svc.Login(ctx, models.Credentials{Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	assert.ErrorIs(t, svc.SendPasswordReset(ctx, ""), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.VerifyEmail(ctx, " "), validators.ErrEmptyCode)
	assert.ErrorIs(t, svc.UpdateEmail(ctx, "uid-1", "bad@"), validators.ErrInvalidEmail)
	assert.ErrorIs(t, svc.ConfirmPasswordReset(ctx, models.PasswordResetConfirmation{Code: "c", Password: "1"}), validators.ErrInvalidPassword)
}

func TestAuthValidationService_PassesValidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)
	ctx := context.Background()

	credentials := models.Credentials{Email: "ann@example.com", Password: "x"}
	inner.EXPECT().Login(ctx, credentials).Return(models.Account{UID: "uid-1"}, models.Token{}, nil)
	inner.EXPECT().CurrentAccount(ctx, "uid-1").Return(models.Account{UID: "uid-1"}, nil)

	// short passwords are allowed on login
	account, _, err := svc.Login(ctx, credentials)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", account.UID)

	_, err = svc.CurrentAccount(ctx, "uid-1")
	require.NoError(t, err)
}

func TestUserValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockUserService(ctrl)
	svc := NewUserValidationService().Wrap(inner)
	ctx := context.Background()

	assert.ErrorIs(t, svc.CreateProfile(ctx, models.UserProfile{UID: "uid-1", Name: "Al", Email: "al@example.com"}), validators.ErrInvalidName)

	valid := models.UserProfile{UID: "uid-1", Name: "Ann", Email: "ann@example.com"}
	inner.EXPECT().UpdateProfile(ctx, valid).Return(nil)
	require.NoError(t, svc.UpdateProfile(ctx, valid))
}

func TestReviewValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockReviewService(ctrl)
	svc := NewReviewValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, models.Review{AuthorUID: "uid-1", Restaurant: "Noma", Rating: 6, Comment: "Unforgettable dinner"})
	assert.ErrorIs(t, err, validators.ErrInvalidRating)

	review := models.Review{AuthorUID: "uid-1", Restaurant: "Noma", Rating: 4, Comment: "Unforgettable dinner"}
	inner.EXPECT().CreateReview(ctx, review).Return(models.Review{ID: "r-1"}, nil)
	got, err := svc.CreateReview(ctx, review)
	require.NoError(t, err)
	assert.Equal(t, "r-1", got.ID)
}

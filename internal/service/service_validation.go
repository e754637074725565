// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sommelier/internal/validators"
	"github.com/MKhiriev/sommelier/models"
)

// AuthValidationService validates request payloads before they reach the
// wrapped AuthService. Operations without a payload are passed through.
type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{validator: validators.NewRequestValidator()}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}

func (v *AuthValidationService) Register(ctx context.Context, credentials models.Credentials) (models.Account, models.Token, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.Account{}, models.Token{}, invalid(err)
	}
	return v.AuthService.Register(ctx, credentials)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.Account, models.Token, error) {
	// password length rules may have changed since registration
	if err := v.validator.Validate(ctx, credentials, validators.FieldEmail); err != nil {
		return models.Account{}, models.Token{}, invalid(err)
	}
	if credentials.Password == "" {
		return models.Account{}, models.Token{}, ErrInvalidDataProvided
	}
	return v.AuthService.Login(ctx, credentials)
}

func (v *AuthValidationService) SendPasswordReset(ctx context.Context, email string) error {
	if err := v.validator.Validate(ctx, models.EmailRequest{Email: email}); err != nil {
		return invalid(err)
	}
	return v.AuthService.SendPasswordReset(ctx, email)
}

func (v *AuthValidationService) ConfirmPasswordReset(ctx context.Context, confirmation models.PasswordResetConfirmation) error {
	if err := v.validator.Validate(ctx, confirmation); err != nil {
		return invalid(err)
	}
	return v.AuthService.ConfirmPasswordReset(ctx, confirmation)
}

func (v *AuthValidationService) VerifyEmail(ctx context.Context, code string) error {
	if err := v.validator.Validate(ctx, models.VerificationRequest{Code: code}); err != nil {
		return invalid(err)
	}
	return v.AuthService.VerifyEmail(ctx, code)
}

func (v *AuthValidationService) Reauthenticate(ctx context.Context, uid string, credentials models.Credentials) error {
	if err := v.validator.Validate(ctx, credentials, validators.FieldEmail); err != nil {
		return invalid(err)
	}
	if credentials.Password == "" {
		return ErrInvalidDataProvided
	}
	return v.AuthService.Reauthenticate(ctx, uid, credentials)
}

func (v *AuthValidationService) UpdateEmail(ctx context.Context, uid, email string) error {
	if err := v.validator.Validate(ctx, models.EmailRequest{Email: email}); err != nil {
		return invalid(err)
	}
	return v.AuthService.UpdateEmail(ctx, uid, email)
}

// UserValidationService validates profile documents before they are stored.
type UserValidationService struct {
	UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{validator: validators.NewRequestValidator()}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.UserService = inner
	return v
}

func (v *UserValidationService) CreateProfile(ctx context.Context, profile models.UserProfile) error {
	if err := v.validator.Validate(ctx, profile); err != nil {
		return invalid(err)
	}
	return v.UserService.CreateProfile(ctx, profile)
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, profile models.UserProfile) error {
	if err := v.validator.Validate(ctx, profile); err != nil {
		return invalid(err)
	}
	return v.UserService.UpdateProfile(ctx, profile)
}

// ReviewValidationService validates reviews before they are stored.
type ReviewValidationService struct {
	ReviewService
	validator validators.Validator
}

func NewReviewValidationService() ReviewServiceWrapper {
	return &ReviewValidationService{validator: validators.NewRequestValidator()}
}

func (v *ReviewValidationService) Wrap(inner ReviewService) ReviewService {
	v.ReviewService = inner
	return v
}

func (v *ReviewValidationService) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if err := v.validator.Validate(ctx, review); err != nil {
		return models.Review{}, invalid(err)
	}
	return v.ReviewService.CreateReview(ctx, review)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

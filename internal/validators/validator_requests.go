// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strconv"

	"github.com/MKhiriev/sommelier/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUID        = "uid"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldName       = "name"
	FieldAuthorUID  = "author_uid"
	FieldRestaurant = "restaurant"
	FieldRating     = "rating"
	FieldComment    = "comment"
	FieldCode       = "code"
)

// RequestValidator validates the request bodies accepted by the server with
// the same field rules the client applies before sending them.
type RequestValidator struct{}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches to the type-specific method. Supported types are
// models.Credentials, models.UserProfile, models.Review, models.EmailRequest,
// models.VerificationRequest and models.PasswordResetConfirmation, as values or pointers.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.UserProfile:
		return v.validateProfile(value, fields...)
	case *models.UserProfile:
		return v.validateProfile(*value, fields...)

	case models.Review:
		return v.validateReview(value, fields...)
	case *models.Review:
		return v.validateReview(*value, fields...)

	case models.EmailRequest:
		return v.validateCredentials(models.Credentials{Email: value.Email}, FieldEmail)
	case *models.EmailRequest:
		return v.validateCredentials(models.Credentials{Email: value.Email}, FieldEmail)

	case models.VerificationRequest:
		return v.validateVerification(value)
	case *models.VerificationRequest:
		return v.validateVerification(*value)

	case models.PasswordResetConfirmation:
		return v.validatePasswordReset(value)
	case *models.PasswordResetConfirmation:
		return v.validatePasswordReset(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !Email(c.Email).IsValid() {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if !Password(c.Password).IsValid() {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateProfile(p models.UserProfile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUID, FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUID:
			if isBlank(p.UID) {
				return ErrInvalidUID
			}
		case FieldName:
			if !Name(p.Name).IsValid() {
				return ErrInvalidName
			}
		case FieldEmail:
			if !Email(p.Email).IsValid() {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateReview(r models.Review, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAuthorUID, FieldRestaurant, FieldRating, FieldComment}
	}

	for _, f := range fields {
		switch f {
		case FieldAuthorUID:
			if isBlank(r.AuthorUID) {
				return ErrInvalidUID
			}
		case FieldRestaurant:
			if !Restaurant(r.Restaurant).IsValid() {
				return ErrInvalidRestaurant
			}
		case FieldRating:
			if !Rating(strconv.Itoa(r.Rating)).IsValid() {
				return ErrInvalidRating
			}
		case FieldComment:
			if !Comment(r.Comment).IsValid() {
				return ErrInvalidComment
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateVerification(r models.VerificationRequest) error {
	if isBlank(r.Code) {
		return ErrEmptyCode
	}
	return nil
}

func (v *RequestValidator) validatePasswordReset(r models.PasswordResetConfirmation) error {
	if err := v.validateVerification(models.VerificationRequest{Code: r.Code}); err != nil {
		return err
	}
	return v.validateCredentials(models.Credentials{Password: r.Password}, FieldPassword)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/sommelier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReview() models.Review {
	return models.Review{
		AuthorUID:  "uid-1",
		Restaurant: "Noma",
		Rating:     5,
		Comment:    "Unforgettable tasting menu",
	}
}

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestRequestValidator_Credentials(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid value", obj: models.Credentials{Email: "a@b.com", Password: "secret1"}},
		{name: "valid pointer", obj: &models.Credentials{Email: "a@b.com", Password: "secret1"}},
		{name: "bad email", obj: models.Credentials{Email: "a@b", Password: "secret1"}, wantErr: ErrInvalidEmail},
		{name: "short password", obj: models.Credentials{Email: "a@b.com", Password: "123"}, wantErr: ErrInvalidPassword},
		{
			name:   "email only",
			obj:    models.Credentials{Email: "a@b.com"},
			fields: []string{FieldEmail},
		},
		{
			name:    "unknown field",
			obj:     models.Credentials{Email: "a@b.com", Password: "secret1"},
			fields:  []string{"nope"},
			wantErr: ErrUnknownField,
		},
		{name: "email request", obj: models.EmailRequest{Email: "x"}, wantErr: ErrInvalidEmail},
		{name: "email request pointer", obj: &models.EmailRequest{Email: "x@y.org"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_Profile(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	profile := models.UserProfile{UID: "uid-1", Name: "Marie", Email: "marie@example.com"}
	require.NoError(t, v.Validate(ctx, profile))
	require.NoError(t, v.Validate(ctx, &profile))

	noUID := profile
	noUID.UID = ""
	assert.ErrorIs(t, v.Validate(ctx, noUID), ErrInvalidUID)
	assert.NoError(t, v.Validate(ctx, noUID, FieldName, FieldEmail))

	shortName := profile
	shortName.Name = "Mo"
	assert.ErrorIs(t, v.Validate(ctx, shortName), ErrInvalidName)
}

func TestRequestValidator_Review(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validReview()))

	r := validReview()
	r.Rating = 0
	assert.ErrorIs(t, v.Validate(ctx, r), ErrInvalidRating)

	r = validReview()
	r.Restaurant = ""
	assert.ErrorIs(t, v.Validate(ctx, &r), ErrInvalidRestaurant)

	r = validReview()
	r.Comment = "meh"
	assert.ErrorIs(t, v.Validate(ctx, r), ErrInvalidComment)

	r = validReview()
	r.AuthorUID = ""
	assert.ErrorIs(t, v.Validate(ctx, r), ErrInvalidUID)
	assert.NoError(t, v.Validate(ctx, r, FieldRestaurant, FieldRating, FieldComment))
}

func TestRequestValidator_Verification(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.VerificationRequest{}), ErrEmptyCode)
	assert.NoError(t, v.Validate(ctx, &models.VerificationRequest{Code: "123456"}))
}

func TestRequestValidator_PasswordReset(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PasswordResetConfirmation{Code: "abc", Password: "secret1"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.PasswordResetConfirmation{Password: "secret1"}), ErrEmptyCode)
	assert.ErrorIs(t, v.Validate(ctx, models.PasswordResetConfirmation{Code: "abc", Password: "123"}), ErrInvalidPassword)
}

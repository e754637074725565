// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUID        = errors.New("invalid user id")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidRestaurant = errors.New("invalid restaurant")
	ErrInvalidRating     = errors.New("invalid rating")
	ErrInvalidComment    = errors.New("invalid comment")
	ErrEmptyCode         = errors.New("code is required")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenRevoked            = errors.New("token was revoked")

	ErrInvalidCode          = errors.New("code is invalid or expired")
	ErrEmailAlreadyVerified = errors.New("email is already verified")

	ErrEmptyFile           = errors.New("file is empty")
	ErrUnsupportedFileType = errors.New("only jpeg, png and webp images are accepted")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

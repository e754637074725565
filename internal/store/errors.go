// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned when an account with the same email
	// is already registered.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when no account matches the given email or
	// UID.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrProfileAlreadyExists is returned when a profile document for the UID
	// is already stored.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrProfileNotFound is returned when a profile document for the UID does
	// not exist.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrCodeNotFound is returned when a one-time code is unknown, expired or
	// already consumed.
	ErrCodeNotFound = errors.New("code was not found")

	// ErrUnsupportedFileType is returned when a file name does not carry one
	// of the image extensions the file storage serves.
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// Low-level storage operation errors. These are returned (or wrapped) by
// repository methods when an operation fails before any domain logic can be
// applied.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
	ErrWritingFile        = errors.New("failed to write file")
	ErrRedisOperation     = errors.New("redis operation failed")
)

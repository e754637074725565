// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// sommelier server handlers and the client adapter.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The client shows them to the user as the message of the
// corresponding Problem, so the wording is user-facing.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match an account.
	MsgInvalidEmailPassword = "invalid email or password"

	// MsgEmailAlreadyInUse is returned when registering or changing to an
	// email that belongs to another account.
	MsgEmailAlreadyInUse = "email address is already in use"

	// MsgNoSuchAccount is returned when no account matches the request.
	MsgNoSuchAccount = "there is no account with this email"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// expired, revoked or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "session is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires the account UID
	// from the JWT claim but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgForbidden is returned when a user touches a document of another
	// user.
	MsgForbidden = "access to another user's data is forbidden"

	// MsgProfileNotFound is returned when no profile document exists for the
	// requested UID.
	MsgProfileNotFound = "profile not found"

	// MsgProfileAlreadyExists is returned when a profile is saved twice.
	MsgProfileAlreadyExists = "profile already exists"

	// MsgInvalidCode is returned when a verification or password reset code
	// is unknown or expired.
	MsgInvalidCode = "code is invalid or expired"

	// MsgEmailAlreadyVerified is returned when a verification email is
	// requested for a verified account.
	MsgEmailAlreadyVerified = "email is already verified"

	// MsgNoFileProvided is returned when an upload carries no file part.
	MsgNoFileProvided = "no file provided"

	// MsgFileTooLarge is returned when an upload exceeds the size limit.
	MsgFileTooLarge = "file is too large"

	// MsgUnsupportedFileType is returned when an upload is not a jpeg, png or
	// webp image.
	MsgUnsupportedFileType = "only jpeg, png and webp images are accepted"
)

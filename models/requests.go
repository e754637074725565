// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterResponse is returned by the register endpoint.
type RegisterResponse struct {
	UID string `json:"uid"`
}

// EmailRequest carries a single email address (password reset, email
// change).
type EmailRequest struct {
	Email string `json:"email"`
}

// VerificationRequest confirms an email address with the emailed code.
type VerificationRequest struct {
	Code string `json:"code"`
}

// UploadedFile is the public location of a stored file.
type UploadedFile struct {
	URL string `json:"url"`
}

// PasswordResetConfirmation sets a new password with the emailed reset code.
type PasswordResetConfirmation struct {
	Code     string `json:"code"`
	Password string `json:"password"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the backend's password hashing and one-time code
// generation.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher derives and checks password hashes.
type PasswordHasher interface {
	// Hash returns a self-describing encoded hash of password
	// ("$argon2id$v=19$m=...,t=...,p=...$salt$key").
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. An error is
	// returned only for a malformed encodedHash.
	Verify(password, encodedHash string) (bool, error)
}

// CodeGenerator issues random one-time codes for email verification and
// password reset links.
type CodeGenerator interface {
	NewCode() (string, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// stored on the client side.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// GetUID returns the account UID carried in the "sub" claim.
func (t *Token) GetUID() (string, error) {
	uid, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if uid == "" {
		return "", errors.New("token has no subject")
	}

	return uid, nil
}

// RemainingLifetime returns how long the token stays valid after now, or
// zero if it has no expiry or is already expired.
func (t *Token) RemainingLifetime(now time.Time) time.Duration {
	if t.ExpiresAt == nil {
		return 0
	}
	left := t.ExpiresAt.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

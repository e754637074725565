// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials are the email/password pair used to register, sign in and
// reauthenticate.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserIdentity is the authenticated account as known by the auth service.
type UserIdentity struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// Account is the server-side auth record behind a UserIdentity. The password
// hash never leaves the backend.
type Account struct {
	UID           string    `json:"uid"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// Identity returns the public view of the account.
func (a Account) Identity() UserIdentity {
	return UserIdentity{UID: a.UID, Email: a.Email, EmailVerified: a.EmailVerified}
}

// UserProfile is the user document kept in the document store, keyed by UID.
type UserProfile struct {
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with the
// UserProfile model.
func (u UserProfile) TableName() string {
	return "profiles"
}

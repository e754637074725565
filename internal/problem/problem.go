// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package problem defines the closed taxonomy of domain failures returned by
// the client's collaborator facades, and the Result type that carries either
// a Problem or a success value.
package problem

// Kind identifies the cause of a Problem.
type Kind int

const (
	// Generic is the catch-all for unexpected failures.
	Generic Kind = iota
	// NullUser means an operation needed a signed-in user and there is none.
	NullUser
	// RegisterUser means the account could not be created.
	RegisterUser
	// SignIn means the credentials were rejected.
	SignIn
	// NotFoundDocument means the requested document does not exist.
	NotFoundDocument
	// RequestFailed means a document request reached the store and failed.
	RequestFailed
	// AlreadySignedOutUser means sign-out was requested without a session.
	AlreadySignedOutUser
	// EmailNotVerified means the signed-in user has not verified the email.
	EmailNotVerified
	// Reauthenticate means the re-entered credentials were rejected.
	Reauthenticate
	// UploadFile means a file could not be uploaded.
	UploadFile
	// DeleteUser means the account could not be deleted.
	DeleteUser
	// PasswordReset means the password reset email could not be sent.
	PasswordReset
	// EmailVerification means the verification email could not be sent.
	EmailVerification
)

// FallbackMessage is used when a failure carries no message of its own.
const FallbackMessage = "Something went wrong"

var kindNames = map[Kind]string{
	Generic:              "generic",
	NullUser:             "null user",
	RegisterUser:         "register user",
	SignIn:               "sign in",
	NotFoundDocument:     "not found document",
	RequestFailed:        "request failed",
	AlreadySignedOutUser: "already signed out user",
	EmailNotVerified:     "email not verified",
	Reauthenticate:       "reauthenticate",
	UploadFile:           "upload file",
	DeleteUser:           "delete user",
	PasswordReset:        "password reset",
	EmailVerification:    "email verification",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Problem is a domain-level failure reason with a human-readable message.
// Problems are values: they are created once and never mutated.
type Problem struct {
	Kind    Kind
	Message string
}

// New creates a Problem of kind with msg, or FallbackMessage if msg is
// empty.
func New(kind Kind, msg string) Problem {
	if msg == "" {
		msg = FallbackMessage
	}
	return Problem{Kind: kind, Message: msg}
}

// FromError creates a Generic Problem carrying err's message.
func FromError(err error) Problem {
	if err == nil {
		return New(Generic, "")
	}
	return New(Generic, err.Error())
}

// Error implements error so that Problems can travel through error-typed
// paths (logging, errors.As).
func (p Problem) Error() string {
	return p.Kind.String() + ": " + p.Message
}

// Is reports whether target is a Problem of the same Kind.
func (p Problem) Is(target error) bool {
	t, ok := target.(Problem)
	return ok && t.Kind == p.Kind
}

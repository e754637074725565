// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/sommelier/internal/adapter"
	"github.com/MKhiriev/sommelier/internal/problem"
)

const (
	msgNoSignedInUser   = "No user is signed in"
	msgAlreadySignedOut = "User is already signed out"
)

// mapAdapterError translates an adapter error into a Problem. kind is the
// Problem reported for a rejected request of the operation; document
// operations pass [problem.RequestFailed].
//
//   - no local session                         → NullUser
//   - 401 outside sign in and reauthentication → NullUser
//   - 404 of a document request                → NotFoundDocument
//   - any other status error                   → kind, with the server message
//   - transport and unexpected errors          → Generic
func mapAdapterError(err error, kind problem.Kind) problem.Problem {
	switch {
	case errors.Is(err, adapter.ErrNoSession):
		return problem.New(problem.NullUser, msgNoSignedInUser)

	case errors.Is(err, adapter.ErrUnauthorized) && kind != problem.SignIn && kind != problem.Reauthenticate:
		return problem.New(problem.NullUser, adapter.Message(err))

	case errors.Is(err, adapter.ErrNotFound) && kind == problem.RequestFailed:
		return problem.New(problem.NotFoundDocument, adapter.Message(err))

	case adapter.IsStatusError(err):
		return problem.New(kind, adapter.Message(err))
	}

	return problem.FromError(err)
}

func problemOf(kind problem.Kind) func(error) problem.Problem {
	return func(err error) problem.Problem {
		return mapAdapterError(err, kind)
	}
}

// unit adapts an error-only call to [problem.Catch].
func unit(call func() error) func() (problem.Unit, error) {
	return func() (problem.Unit, error) {
		return problem.Unit{}, call()
	}
}

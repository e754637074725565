// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooLarge            = errors.New("request entity too large")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoSession is returned by operations that need a session when the
	// client holds none.
	ErrNoSession = errors.New("no active session")
	// ErrRequestFailed wraps transport failures (connection refused,
	// timeouts, undecodable responses).
	ErrRequestFailed = errors.New("request failed")
)

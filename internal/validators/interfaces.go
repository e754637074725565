// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the field rules shared by the screen reducers
// and the server.
//
// The rule functions (Email, Password, Name, PasswordConfirmation,
// Restaurant, Rating, Comment) return a [Message]: [Empty] for a valid value,
// otherwise the text shown next to the input. The [Validator] interface
// applies the same rules to whole request bodies and reports sentinel
// errors, optionally restricted to named fields.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrMalformedHash      = errors.New("malformed password hash")
	ErrUnsupportedVersion = errors.New("unsupported argon2 version")
)

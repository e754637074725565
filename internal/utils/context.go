// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/MKhiriev/sommelier/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	UIDCtxKey   = contextKey("uid")
	TokenCtxKey = contextKey("token")
)

// GetUIDFromContext returns the account UID stored by the auth middleware.
func GetUIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(UIDCtxKey).(string)
	return uid, ok && uid != ""
}

// GetTokenFromContext returns the parsed bearer token of the request.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}

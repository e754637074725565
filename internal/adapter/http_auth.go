// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/sommelier/internal/utils"
	"github.com/MKhiriev/sommelier/models"
	"github.com/go-resty/resty/v2"
)

// Register implements [AuthProvider]. It POSTs the credentials to
// /api/auth/register and keeps the bearer token from the Authorization
// response header as the new session.
func (h *httpAdapter) Register(ctx context.Context, credentials models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/register")
	if err != nil {
		return "", requestFailed("register", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var registered models.RegisterResponse
	if err = decodeBody(resp, &registered); err != nil {
		return "", err
	}

	if err = h.startSessionFromResponse(ctx, resp); err != nil {
		return "", err
	}
	return registered.UID, nil
}

// SignIn implements [AuthProvider].
func (h *httpAdapter) SignIn(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/login")
	if err != nil {
		return requestFailed("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return h.startSessionFromResponse(ctx, resp)
}

// SignOut implements [AuthProvider]. The local session is forgotten even if
// the server call fails; a token the server already rejects counts as signed
// out.
func (h *httpAdapter) SignOut(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Post("/api/auth/logout")
	h.endSession(ctx)
	if err != nil {
		return requestFailed("logout", err)
	}

	if err = mapHTTPError(resp); err != nil && !errors.Is(err, ErrUnauthorized) {
		return err
	}
	return nil
}

// IsSignedIn implements [AuthProvider].
func (h *httpAdapter) IsSignedIn(ctx context.Context) bool {
	token, err := h.sessionToken(ctx)
	if err != nil {
		h.logger.Err(err).Msg("error reading session token")
		return false
	}
	return token != ""
}

// CurrentUser implements [AuthProvider].
func (h *httpAdapter) CurrentUser(ctx context.Context) (models.UserIdentity, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.UserIdentity{}, err
	}

	resp, err := req.Get("/api/auth/me")
	if err != nil {
		return models.UserIdentity{}, requestFailed("current user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			h.endSession(ctx)
		}
		return models.UserIdentity{}, err
	}

	var identity models.UserIdentity
	if err = decodeBody(resp, &identity); err != nil {
		return models.UserIdentity{}, err
	}
	return identity, nil
}

// SendPasswordResetEmail implements [AuthProvider].
func (h *httpAdapter) SendPasswordResetEmail(ctx context.Context, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EmailRequest{Email: email}).
		Post("/api/auth/password-reset")
	if err != nil {
		return requestFailed("password reset", err)
	}

	return mapHTTPError(resp)
}

// SendEmailVerification implements [AuthProvider].
func (h *httpAdapter) SendEmailVerification(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Post("/api/auth/verification")
	if err != nil {
		return requestFailed("email verification", err)
	}

	return mapHTTPError(resp)
}

// Reauthenticate implements [AuthProvider].
func (h *httpAdapter) Reauthenticate(ctx context.Context, credentials models.Credentials) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/reauthenticate")
	if err != nil {
		return requestFailed("reauthenticate", err)
	}

	return mapHTTPError(resp)
}

// UpdateEmail implements [AuthProvider].
func (h *httpAdapter) UpdateEmail(ctx context.Context, email string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.EmailRequest{Email: email}).
		Put("/api/auth/email")
	if err != nil {
		return requestFailed("update email", err)
	}

	return mapHTTPError(resp)
}

// DeleteCurrentUser implements [AuthProvider].
func (h *httpAdapter) DeleteCurrentUser(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/api/auth/me")
	if err != nil {
		return requestFailed("delete account", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.endSession(ctx)
	return nil
}

func (h *httpAdapter) startSessionFromResponse(ctx context.Context, resp *resty.Response) error {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%w: parse bearer token: %v", ErrRequestFailed, err)
	}

	return h.startSession(ctx, token)
}

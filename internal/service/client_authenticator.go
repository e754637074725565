// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/sommelier/internal/adapter"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/problem"
	"github.com/MKhiriev/sommelier/models"
)

// authenticator implements [Authenticator] over an [adapter.AuthProvider].
type authenticator struct {
	auth   adapter.AuthProvider
	logger *logger.Logger
}

func NewAuthenticator(auth adapter.AuthProvider, logger *logger.Logger) Authenticator {
	return &authenticator{
		auth:   auth,
		logger: logger.ForComponent("authenticator"),
	}
}

func (a *authenticator) RegisterUser(ctx context.Context, email, password string) problem.Result[string] {
	return problem.Catch(func() (string, error) {
		return a.auth.Register(ctx, models.Credentials{Email: email, Password: password})
	}, problemOf(problem.RegisterUser))
}

func (a *authenticator) SignIn(ctx context.Context, email, password string) problem.Result[problem.Unit] {
	return problem.Catch(unit(func() error {
		return a.auth.SignIn(ctx, models.Credentials{Email: email, Password: password})
	}), problemOf(problem.SignIn))
}

func (a *authenticator) SignOut(ctx context.Context) problem.Result[problem.Unit] {
	return problem.Catch(unit(func() error {
		return a.auth.SignOut(ctx)
	}), func(err error) problem.Problem {
		if errors.Is(err, adapter.ErrNoSession) {
			return problem.New(problem.AlreadySignedOutUser, msgAlreadySignedOut)
		}
		return mapAdapterError(err, problem.Generic)
	})
}

func (a *authenticator) IsSignedIn(ctx context.Context) (signedIn bool) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error().Any("panic", r).Msg("recovered panic checking session")
			signedIn = false
		}
	}()

	return a.auth.IsSignedIn(ctx)
}

func (a *authenticator) IsEmailVerified(ctx context.Context) problem.Result[bool] {
	return problem.Map(a.GetCurrentUser(ctx), func(identity models.UserIdentity) bool {
		return identity.EmailVerified
	})
}

func (a *authenticator) SendPasswordResetEmail(ctx context.Context, email string) problem.Result[problem.Unit] {
	return problem.Catch(unit(func() error {
		return a.auth.SendPasswordResetEmail(ctx, email)
	}), problemOf(problem.PasswordReset))
}

func (a *authenticator) SendEmailVerification(ctx context.Context) problem.Result[problem.Unit] {
	return problem.Catch(unit(func() error {
		return a.auth.SendEmailVerification(ctx)
	}), problemOf(problem.EmailVerification))
}

func (a *authenticator) DeleteCurrentUser(ctx context.Context) problem.Result[problem.Unit] {
	return problem.Catch(unit(func() error {
		return a.auth.DeleteCurrentUser(ctx)
	}), problemOf(problem.DeleteUser))
}

func (a *authenticator) Reauthenticate(ctx context.Context, email, password string) problem.Result[problem.Unit] {
	return problem.Catch(unit(func() error {
		return a.auth.Reauthenticate(ctx, models.Credentials{Email: email, Password: password})
	}), problemOf(problem.Reauthenticate))
}

func (a *authenticator) GetCurrentUser(ctx context.Context) problem.Result[models.UserIdentity] {
	return problem.Catch(func() (models.UserIdentity, error) {
		return a.auth.CurrentUser(ctx)
	}, problemOf(problem.Generic))
}

func (a *authenticator) UpdateEmail(ctx context.Context, email string) problem.Result[problem.Unit] {
	return problem.Catch(unit(func() error {
		return a.auth.UpdateEmail(ctx, email)
	}), problemOf(problem.Generic))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/problem"
	"github.com/MKhiriev/sommelier/models"
)

// collaborators is shared by the screen facades.
type collaborators struct {
	auth    Authenticator
	users   UserDocuments
	reviews ReviewDocuments
	files   FileUploads
	logger  *logger.Logger
}

// currentProfile loads the profile document of the signed-in user.
func (c collaborators) currentProfile(ctx context.Context) problem.Result[models.UserProfile] {
	return problem.FlatMap(c.auth.GetCurrentUser(ctx), func(identity models.UserIdentity) problem.Result[models.UserProfile] {
		return c.users.GetUser(ctx, identity.UID)
	})
}

func (c collaborators) signOut(ctx context.Context) problem.Result[problem.Unit] {
	return c.auth.SignOut(ctx)
}

// ── splash ──────────────────────────────────────────────────────────────────

type splashFacade struct{ collaborators }

func (f *splashFacade) IsSignedIn(ctx context.Context) bool {
	return f.auth.IsSignedIn(ctx)
}

func (f *splashFacade) IsEmailVerified(ctx context.Context) problem.Result[bool] {
	return f.auth.IsEmailVerified(ctx)
}

// ── login ───────────────────────────────────────────────────────────────────

type loginFacade struct{ collaborators }

func (f *loginFacade) Login(ctx context.Context, email, password string) problem.Result[bool] {
	return problem.FlatMap(f.auth.SignIn(ctx, email, password), func(problem.Unit) problem.Result[bool] {
		return f.auth.IsEmailVerified(ctx)
	})
}

// ── register ────────────────────────────────────────────────────────────────

type registerFacade struct{ collaborators }

func (f *registerFacade) Register(ctx context.Context, name, email, password string) problem.Result[problem.Unit] {
	registered := f.auth.RegisterUser(ctx, email, password)
	uid, ok := registered.Value()
	if !ok {
		p, _ := registered.Problem()
		return problem.Failure[problem.Unit](p)
	}

	saved := f.users.SaveUser(ctx, models.UserProfile{UID: uid, Name: name, Email: email})
	if p, failed := saved.Problem(); failed {
		f.logger.Warn().
			Str("uid", uid).
			Str("problem", p.Error()).
			Msg("account created but profile document was not saved")
	}

	return problem.Done()
}

// ── forgot password ─────────────────────────────────────────────────────────

type forgotPasswordFacade struct{ collaborators }

func (f *forgotPasswordFacade) SendPasswordResetEmail(ctx context.Context, email string) problem.Result[problem.Unit] {
	return f.auth.SendPasswordResetEmail(ctx, email)
}

// ── email verification ──────────────────────────────────────────────────────

type emailVerificationFacade struct{ collaborators }

func (f *emailVerificationFacade) SendEmailVerification(ctx context.Context) problem.Result[problem.Unit] {
	return f.auth.SendEmailVerification(ctx)
}

func (f *emailVerificationFacade) IsEmailVerified(ctx context.Context) problem.Result[bool] {
	return f.auth.IsEmailVerified(ctx)
}

func (f *emailVerificationFacade) SignOut(ctx context.Context) problem.Result[problem.Unit] {
	return f.signOut(ctx)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/sommelier/internal/problem"
	"github.com/MKhiriev/sommelier/models"
)

// ── home ────────────────────────────────────────────────────────────────────

type homeFacade struct{ collaborators }

// LoadHome tolerates a missing profile document: the overview then carries
// a profile built from the account identity.
func (f *homeFacade) LoadHome(ctx context.Context) problem.Result[HomeOverview] {
	return problem.FlatMap(f.auth.GetCurrentUser(ctx), func(identity models.UserIdentity) problem.Result[HomeOverview] {
		profile := f.users.GetUser(ctx, identity.UID)
		overview := HomeOverview{Identity: identity}

		if p, failed := profile.Problem(); failed {
			if p.Kind != problem.NotFoundDocument {
				return problem.Failure[HomeOverview](p)
			}
			overview.Profile = models.UserProfile{UID: identity.UID, Email: identity.Email}
		} else {
			overview.Profile, _ = profile.Value()
		}

		return problem.Map(f.reviews.ListReviews(ctx, identity.UID), func(reviews []models.Review) HomeOverview {
			overview.Reviews = reviews
			return overview
		})
	})
}

func (f *homeFacade) SignOut(ctx context.Context) problem.Result[problem.Unit] {
	return f.signOut(ctx)
}

// ── profile ─────────────────────────────────────────────────────────────────

type profileFacade struct{ collaborators }

func (f *profileFacade) LoadProfile(ctx context.Context) problem.Result[models.UserProfile] {
	return f.currentProfile(ctx)
}

func (f *profileFacade) SignOut(ctx context.Context) problem.Result[problem.Unit] {
	return f.signOut(ctx)
}

// ── edit profile ────────────────────────────────────────────────────────────

type editProfileFacade struct{ collaborators }

func (f *editProfileFacade) LoadProfile(ctx context.Context) problem.Result[models.UserProfile] {
	return f.currentProfile(ctx)
}

func (f *editProfileFacade) SaveProfile(ctx context.Context, changes ProfileChanges) problem.Result[problem.Unit] {
	return problem.FlatMap(f.currentProfile(ctx), func(profile models.UserProfile) problem.Result[problem.Unit] {
		if changes.PhotoPath != "" {
			uploaded := f.files.Upload(ctx, changes.PhotoPath)
			url, ok := uploaded.Value()
			if !ok {
				p, _ := uploaded.Problem()
				return problem.Failure[problem.Unit](p)
			}
			profile.PhotoURL = url
		}

		emailChanged := changes.Email != profile.Email
		profile.Name = changes.Name
		profile.Email = changes.Email

		if !emailChanged {
			return f.users.UpdateUser(ctx, profile)
		}

		return problem.FlatMap(f.auth.UpdateEmail(ctx, changes.Email), func(problem.Unit) problem.Result[problem.Unit] {
			if p, failed := f.users.UpdateUser(ctx, profile).Problem(); failed {
				f.logger.Warn().
					Str("uid", profile.UID).
					Str("problem", p.Error()).
					Msg("email updated but profile document was not")
			}
			return problem.Done()
		})
	})
}

// ── delete account ──────────────────────────────────────────────────────────

type deleteAccountFacade struct{ collaborators }

// DeleteAccount re-enters the credentials, removes the profile document and
// then the account itself. A profile document that is already gone does not
// stop the deletion.
func (f *deleteAccountFacade) DeleteAccount(ctx context.Context, email, password string) problem.Result[problem.Unit] {
	return problem.FlatMap(f.auth.Reauthenticate(ctx, email, password), func(problem.Unit) problem.Result[problem.Unit] {
		return problem.FlatMap(f.auth.GetCurrentUser(ctx), func(identity models.UserIdentity) problem.Result[problem.Unit] {
			if p, failed := f.users.DeleteUser(ctx, identity.UID).Problem(); failed && p.Kind != problem.NotFoundDocument {
				return problem.Failure[problem.Unit](p)
			}
			return f.auth.DeleteCurrentUser(ctx)
		})
	})
}

// ── add review ──────────────────────────────────────────────────────────────

type addReviewFacade struct{ collaborators }

func (f *addReviewFacade) SubmitReview(ctx context.Context, draft ReviewDraft) problem.Result[models.Review] {
	return problem.FlatMap(f.auth.GetCurrentUser(ctx), func(identity models.UserIdentity) problem.Result[models.Review] {
		return f.reviews.SaveReview(ctx, models.Review{
			AuthorUID:  identity.UID,
			Restaurant: draft.Restaurant,
			Rating:     draft.Rating,
			Comment:    draft.Comment,
		})
	})
}

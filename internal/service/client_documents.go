// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/sommelier/internal/adapter"
	"github.com/MKhiriev/sommelier/internal/problem"
	"github.com/MKhiriev/sommelier/models"
)

// documents implements [UserDocuments] and [ReviewDocuments] over an
// [adapter.DocumentStore].
type documents struct {
	store adapter.DocumentStore
}

func NewUserDocuments(store adapter.DocumentStore) UserDocuments {
	return &documents{store: store}
}

func NewReviewDocuments(store adapter.DocumentStore) ReviewDocuments {
	return &documents{store: store}
}

var documentProblem = problemOf(problem.RequestFailed)

func (d *documents) SaveUser(ctx context.Context, profile models.UserProfile) problem.Result[problem.Unit] {
	return problem.Catch(unit(func() error {
		return d.store.SaveUser(ctx, profile)
	}), documentProblem)
}

func (d *documents) GetUser(ctx context.Context, uid string) problem.Result[models.UserProfile] {
	return problem.Catch(func() (models.UserProfile, error) {
		return d.store.GetUser(ctx, uid)
	}, documentProblem)
}

func (d *documents) UpdateUser(ctx context.Context, profile models.UserProfile) problem.Result[problem.Unit] {
	return problem.Catch(unit(func() error {
		return d.store.UpdateUser(ctx, profile)
	}), documentProblem)
}

func (d *documents) DeleteUser(ctx context.Context, uid string) problem.Result[problem.Unit] {
	return problem.Catch(unit(func() error {
		return d.store.DeleteUser(ctx, uid)
	}), documentProblem)
}

func (d *documents) SaveReview(ctx context.Context, review models.Review) problem.Result[models.Review] {
	return problem.Catch(func() (models.Review, error) {
		return d.store.SaveReview(ctx, review)
	}, documentProblem)
}

func (d *documents) ListReviews(ctx context.Context, authorUID string) problem.Result[[]models.Review] {
	return problem.Catch(func() ([]models.Review, error) {
		return d.store.ListReviews(ctx, authorUID)
	}, documentProblem)
}

// fileUploads implements [FileUploads] over an [adapter.FileUploader].
type fileUploads struct {
	uploader adapter.FileUploader
}

func NewFileUploads(uploader adapter.FileUploader) FileUploads {
	return &fileUploads{uploader: uploader}
}

func (f *fileUploads) Upload(ctx context.Context, path string) problem.Result[string] {
	return problem.Catch(func() (string, error) {
		return f.uploader.Upload(ctx, path)
	}, func(err error) problem.Problem {
		p := mapAdapterError(err, problem.UploadFile)
		if p.Kind == problem.Generic {
			// a missing local file or a dropped connection is still an upload failure
			return problem.New(problem.UploadFile, p.Message)
		}
		return p
	})
}

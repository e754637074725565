// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/sommelier/models"
)

// SaveUser implements [DocumentStore]: POST /api/users.
func (h *httpAdapter) SaveUser(ctx context.Context, profile models.UserProfile) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Post("/api/users")
	if err != nil {
		return requestFailed("save user", err)
	}

	return mapHTTPError(resp)
}

// GetUser implements [DocumentStore]: GET /api/users/{uid}.
func (h *httpAdapter) GetUser(ctx context.Context, uid string) (models.UserProfile, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.UserProfile{}, err
	}

	resp, err := req.
		SetPathParam("uid", uid).
		Get("/api/users/{uid}")
	if err != nil {
		return models.UserProfile{}, requestFailed("get user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	var profile models.UserProfile
	if err = decodeBody(resp, &profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// UpdateUser implements [DocumentStore]: PUT /api/users/{uid}.
func (h *httpAdapter) UpdateUser(ctx context.Context, profile models.UserProfile) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("uid", profile.UID).
		SetBody(profile).
		Put("/api/users/{uid}")
	if err != nil {
		return requestFailed("update user", err)
	}

	return mapHTTPError(resp)
}

// DeleteUser implements [DocumentStore]: DELETE /api/users/{uid}.
func (h *httpAdapter) DeleteUser(ctx context.Context, uid string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("uid", uid).
		Delete("/api/users/{uid}")
	if err != nil {
		return requestFailed("delete user", err)
	}

	return mapHTTPError(resp)
}

// SaveReview implements [DocumentStore]: POST /api/reviews.
func (h *httpAdapter) SaveReview(ctx context.Context, review models.Review) (models.Review, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Review{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(review).
		Post("/api/reviews")
	if err != nil {
		return models.Review{}, requestFailed("save review", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Review{}, err
	}

	var saved models.Review
	if err = decodeBody(resp, &saved); err != nil {
		return models.Review{}, err
	}
	return saved, nil
}

// ListReviews implements [DocumentStore]: GET /api/reviews?author={uid}.
func (h *httpAdapter) ListReviews(ctx context.Context, authorUID string) ([]models.Review, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParam("author", authorUID).
		Get("/api/reviews")
	if err != nil {
		return nil, requestFailed("list reviews", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err = decodeBody(resp, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

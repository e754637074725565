// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/sommelier/internal/app"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/utils"
	"github.com/MKhiriev/sommelier/models"
)

// createReview stores a review written by the authenticated account; the
// author in the body is ignored.
func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	review.AuthorUID = uid

	saved, err := h.services.ReviewService.CreateReview(r.Context(), review)
	if err != nil {
		writeError(w, r, err, "review creation failed")
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.services.ReviewService.ListReviews(r.Context(), r.URL.Query().Get("author"))
	if err != nil {
		writeError(w, r, err, "review search failed")
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

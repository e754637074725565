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
	"github.com/go-chi/chi/v5"
)

// Profile documents are private: every route only serves the document of
// the authenticated account.

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if profile.UID != uid {
		writeError(w, r, ErrForbidden, "profile of another user")
		return
	}

	if err := h.services.UserService.CreateProfile(r.Context(), profile); err != nil {
		writeError(w, r, err, "profile creation failed")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireOwner(w, r)
	if !ok {
		return
	}

	profile, err := h.services.UserService.GetProfile(r.Context(), uid)
	if err != nil {
		writeError(w, r, err, "profile lookup failed")
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireOwner(w, r)
	if !ok {
		return
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if profile.UID != "" && profile.UID != uid {
		writeError(w, r, ErrForbidden, "profile uid does not match the path")
		return
	}
	profile.UID = uid

	if err := h.services.UserService.UpdateProfile(r.Context(), profile); err != nil {
		writeError(w, r, err, "profile update failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireOwner(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.DeleteProfile(r.Context(), uid); err != nil {
		writeError(w, r, err, "profile deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requireOwner checks that the {uid} path parameter names the
// authenticated account.
func requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := requireUID(w, r)
	if !ok {
		return "", false
	}

	if chi.URLParam(r, "uid") != uid {
		writeError(w, r, ErrForbidden, "profile of another user")
		return "", false
	}
	return uid, true
}

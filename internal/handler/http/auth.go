// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/sommelier/internal/app"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/utils"
	"github.com/MKhiriev/sommelier/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	account, token, err := h.services.AuthService.Register(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	log.Info().Str("uid", account.UID).Msg("account registered")

	setBearer(w, token)
	utils.WriteJSON(w, models.RegisterResponse{UID: account.UID}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	account, token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	log.Debug().Str("uid", account.UID).Msg("user successfully logged in")

	setBearer(w, token)
	utils.WriteJSON(w, account.Identity(), http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), token); err != nil {
		writeError(w, r, err, "logout failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}

	account, err := h.services.AuthService.CurrentAccount(r.Context(), uid)
	if err != nil {
		writeError(w, r, err, "current account lookup failed")
		return
	}

	utils.WriteJSON(w, account.Identity(), http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}

	if err := h.services.AuthService.DeleteAccount(r.Context(), uid); err != nil {
		writeError(w, r, err, "account deletion failed")
		return
	}

	logger.FromRequest(r).Info().Str("uid", uid).Msg("account deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sendPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.SendPasswordReset(r.Context(), req.Email); err != nil {
		writeError(w, r, err, "password reset failed")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) confirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var confirmation models.PasswordResetConfirmation
	if err := json.NewDecoder(r.Body).Decode(&confirmation); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ConfirmPasswordReset(r.Context(), confirmation); err != nil {
		writeError(w, r, err, "password reset confirmation failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sendEmailVerification(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}

	if err := h.services.AuthService.SendEmailVerification(r.Context(), uid); err != nil {
		writeError(w, r, err, "sending email verification failed")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// verifyEmail is the target of the link in the verification mail, so it
// answers with plain text.
func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.VerifyEmail(r.Context(), r.URL.Query().Get("code")); err != nil {
		writeError(w, r, err, "email verification failed")
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("email verified"))
}

func (h *Handler) reauthenticate(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Reauthenticate(r.Context(), uid, credentials); err != nil {
		writeError(w, r, err, "reauthentication failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateEmail(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}

	var req models.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.UpdateEmail(r.Context(), uid, req.Email); err != nil {
		writeError(w, r, err, "email update failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func setBearer(w http.ResponseWriter, token models.Token) {
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
}

// requireUID returns the account UID put into the context by the auth
// middleware, answering 401 when there is none.
func requireUID(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := utils.GetUIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no uid in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return "", false
	}
	return uid, true
}

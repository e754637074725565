// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/sommelier/internal/app"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/service"
	"github.com/MKhiriev/sommelier/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrWrongCredentials, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrInvalidCode, http.StatusBadRequest, app.MsgInvalidCode},
	{service.ErrEmailAlreadyVerified, http.StatusConflict, app.MsgEmailAlreadyVerified},
	{service.ErrEmptyFile, http.StatusBadRequest, app.MsgNoFileProvided},
	{ErrNoFileProvided, http.StatusBadRequest, app.MsgNoFileProvided},
	{service.ErrUnsupportedFileType, http.StatusUnsupportedMediaType, app.MsgUnsupportedFileType},
	{ErrForbidden, http.StatusForbidden, app.MsgForbidden},

	{store.ErrAccountAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyInUse},
	{store.ErrAccountNotFound, http.StatusNotFound, app.MsgNoSuchAccount},
	{store.ErrProfileAlreadyExists, http.StatusConflict, app.MsgProfileAlreadyExists},
	{store.ErrProfileNotFound, http.StatusNotFound, app.MsgProfileNotFound},
	{store.ErrCodeNotFound, http.StatusBadRequest, app.MsgInvalidCode},
	{store.ErrUnsupportedFileType, http.StatusUnsupportedMediaType, app.MsgUnsupportedFileType},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, app.MsgFileTooLarge
	}

	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the status and user-facing message
// it maps to.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, body := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	http.Error(w, body, status)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/sommelier/internal/utils"
	"github.com/MKhiriev/sommelier/models"
)

const (
	maxUploadSize       = 10 << 20
	multipartMemoryUsed = 1 << 20
	uploadFormField     = "file"
)

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(multipartMemoryUsed); err != nil {
		var tooLarge *http.MaxBytesError
		if !errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: %w", ErrNoFileProvided, err)
		}
		writeError(w, r, err, "error parsing multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrNoFileProvided, err), "no file in upload")
		return
	}
	defer file.Close()

	url, err := h.services.FileService.SaveFile(r.Context(), header.Filename, file)
	if err != nil {
		writeError(w, r, err, "saving file failed")
		return
	}

	utils.WriteJSON(w, models.UploadedFile{URL: url}, http.StatusCreated)
}

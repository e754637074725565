// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/sommelier/models"
)

// Upload implements [FileUploader]. The file is sent as the "file" part of a
// multipart POST /api/files.
func (h *httpAdapter) Upload(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("upload %q: %w", path, err)
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	resp, err := req.
		SetFile("file", path).
		Post("/api/files")
	if err != nil {
		return "", requestFailed("upload file", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var uploaded models.UploadedFile
	if err = decodeBody(resp, &uploaded); err != nil {
		return "", err
	}
	return uploaded.URL, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/store"
)

// sniffLen is the prefix http.DetectContentType looks at.
const sniffLen = 512

// photoExtensions are the only uploads accepted. The extension is taken from
// the sniffed content, never from the client's file name, so stored files
// cannot be served back as markup or script.
var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type fileService struct {
	files  store.FileStorage
	logger *logger.Logger
}

func NewFileService(files store.FileStorage, logger *logger.Logger) FileService {
	return &fileService{
		files:  files,
		logger: logger,
	}
}

func (s *fileService) SaveFile(ctx context.Context, originalName string, content io.Reader) (string, error) {
	if content == nil {
		return "", ErrEmptyFile
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(content, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("reading uploaded file: %w", err)
	}
	if n == 0 {
		return "", ErrEmptyFile
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := photoExtensions[contentType]
	if !ok {
		logger.FromContext(ctx).Warn().
			Str("name", originalName).
			Str("content_type", contentType).
			Msg("rejected upload")
		return "", ErrUnsupportedFileType
	}

	url, err := s.files.SaveFile(ctx, "photo"+ext, io.MultiReader(bytes.NewReader(head), content))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("name", originalName).Msg("saving file failed")
		return "", fmt.Errorf("saving file failed: %w", err)
	}
	return url, nil
}

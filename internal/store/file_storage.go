// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/utils"
)

// diskFileStorage is the default implementation of [FileStorage]. Files are
// written into a single directory under generated names and served from
// publicURL by the HTTP server.
type diskFileStorage struct {
	dir       string
	publicURL string
	names     *utils.UUIDGenerator
}

// NewDiskFileStorage creates the files directory if needed.
func NewDiskFileStorage(cfg config.Files) (FileStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create files dir: %w", ErrWritingFile, err)
	}

	return &diskFileStorage{
		dir:       cfg.Dir,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		names:     utils.NewUUIDGenerator(),
	}, nil
}

// servedExtensions are the extensions the public files mount may serve.
var servedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// SaveFile writes content under a fresh name that keeps the image extension
// of originalName and returns the public URL of the file. Other extensions
// are refused with [ErrUnsupportedFileType]. A partially written file is
// removed.
func (s *diskFileStorage) SaveFile(ctx context.Context, originalName string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	ext := strings.ToLower(filepath.Ext(originalName))
	if !servedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}

	name := s.names.Generate() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*diskFileStorage.SaveFile").Msg("error creating file")
		return "", fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	if _, err = io.Copy(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		log.Err(err).Str("func", "*diskFileStorage.SaveFile").Msg("error writing file")
		return "", fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	log.Debug().Str("file", name).Msg("file saved")
	return s.publicURL + "/" + name, nil
}

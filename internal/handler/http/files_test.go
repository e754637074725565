// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/sommelier/internal/app"
	"github.com/MKhiriev/sommelier/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeFile(dir, name, content string) error {
	return os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
}

// multipartBody builds an upload with one part named field.
func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func newUploadRequest(body io.Reader, contentType string) *http.Request {
	req := newAuthedRequest(http.MethodPost, "/api/files", "")
	req.Body = io.NopCloser(body)
	req.Header.Set("Content-Type", contentType)
	return req
}

func TestUploadFile_Success(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn()
	env.files.EXPECT().SaveFile(gomock.Any(), "photo.png", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, content io.Reader) (string, error) {
			b, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, "png-bytes", string(b))
			return "http://localhost:8080/files/abc.png", nil
		})

	body, contentType := multipartBody(t, "file", "photo.png", []byte("png-bytes"))
	rec := env.do(newUploadRequest(body, contentType))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"url":"http://localhost:8080/files/abc.png"}`, rec.Body.String())
}

func TestUploadFile_UnsupportedType(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn()
	env.files.EXPECT().SaveFile(gomock.Any(), "page.html", gomock.Any()).
		Return("", service.ErrUnsupportedFileType)

	body, contentType := multipartBody(t, "file", "page.html", []byte("<html><script>alert(1)</script></html>"))
	rec := env.do(newUploadRequest(body, contentType))

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Equal(t, errorBody(app.MsgUnsupportedFileType), rec.Body.String())
}

func TestUploadFile_NoFilePart(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn()

	body, contentType := multipartBody(t, "avatar", "photo.png", []byte("png-bytes"))
	rec := env.do(newUploadRequest(body, contentType))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errorBody(app.MsgNoFileProvided), rec.Body.String())
}

func TestUploadFile_NotMultipart(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn()

	rec := env.do(newUploadRequest(strings.NewReader(`{}`), "application/json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadFile_TooLarge(t *testing.T) {
	env := newTestEnv(t)
	env.signedIn()

	body, contentType := multipartBody(t, "file", "huge.bin", bytes.Repeat([]byte("x"), maxUploadSize+1))
	rec := env.do(newUploadRequest(body, contentType))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, errorBody(app.MsgFileTooLarge), rec.Body.String())
}

func TestUploadFile_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	body, contentType := multipartBody(t, "file", "photo.png", []byte("png-bytes"))
	req := newUploadRequest(body, contentType)
	req.Header.Del("Authorization")

	rec := env.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		statusCode int
		wantBody   string
	}{
		{
			name:       "object",
			data:       map[string]string{"uid": "u-1"},
			statusCode: http.StatusCreated,
			wantBody:   `{"uid":"u-1"}`,
		},
		{
			name:       "empty list",
			data:       []string{},
			statusCode: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "nil",
			data:       nil,
			statusCode: http.StatusOK,
			wantBody:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			require.NoError(t, WriteJSON(rec, tt.data, tt.statusCode))

			assert.Equal(t, tt.statusCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteJSON(rec, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal response body")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}

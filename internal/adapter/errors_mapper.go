// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrTooLarge,
	http.StatusBadGateway:            ErrBadGateway,
	http.StatusInternalServerError:   ErrInternalServerError,
}

// mapHTTPError returns nil for a 2xx response and otherwise a sentinel error
// wrapped with the response body, e.g. "not found: profile not found".
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, body)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

// Message extracts the server's message from an adapter error, e.g.
// "profile not found" from "not found: profile not found". Errors that carry
// no server message are returned as they are.
func Message(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, sentinel := range statusErrors {
		if errors.Is(err, sentinel) {
			if _, body, ok := strings.Cut(msg, sentinel.Error()+": "); ok {
				return body
			}
		}
	}
	return msg
}

// IsStatusError reports whether err was produced from a non-2xx response
// with a known status.
func IsStatusError(err error) bool {
	for _, sentinel := range statusErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

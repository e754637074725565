// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/utils"
	"github.com/go-resty/resty/v2"
)

type httpAdapter struct {
	client   *utils.HTTPClient
	sessions SessionStore

	mu          sync.Mutex
	token       string
	tokenLoaded bool

	logger *logger.Logger
}

// NewHTTPAdapter constructs the REST implementation of [Adapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. The session token is read from sessions on first use.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAdapter(adapterCfg config.ClientAdapter, sessions SessionStore, logger *logger.Logger) (Adapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		sessions: sessions,
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// sessionToken returns the current token, loading it from the session store
// on first use.
func (h *httpAdapter) sessionToken(ctx context.Context) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.tokenLoaded {
		token, err := h.sessions.LoadToken(ctx)
		if err != nil {
			return "", fmt.Errorf("load session token: %w", err)
		}
		h.token = token
		h.tokenLoaded = true
	}

	return h.token, nil
}

func (h *httpAdapter) startSession(ctx context.Context, token string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.sessions.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	h.token = token
	h.tokenLoaded = true
	return nil
}

func (h *httpAdapter) endSession(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = ""
	h.tokenLoaded = true
	if err := h.sessions.ClearToken(ctx); err != nil {
		h.logger.Err(err).Msg("error clearing session token")
	}
}

// authedRequest builds a request carrying the session token. It returns
// ErrNoSession if the client holds no session.
func (h *httpAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.sessionToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNoSession
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func decodeBody(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrRequestFailed, err)
	}
	return nil
}

func requestFailed(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrRequestFailed, op, err)
}

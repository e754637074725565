// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/mock"
	"github.com/MKhiriev/sommelier/internal/service"
	"github.com/MKhiriev/sommelier/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUID         = "0190a6e2-7b1c-7000-8000-000000000001"
	testSignedToken = "signed.jwt.token"
)

// testEnv is a Handler over gomock services, reached through the real
// router so that the middleware chain runs as in production.
type testEnv struct {
	auth    *mock.MockAuthService
	users   *mock.MockUserService
	reviews *mock.MockReviewService
	files   *mock.MockFileService
	appInfo *mock.MockAppInfoService

	filesDir string
	handler  *Handler
	router   http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		auth:     mock.NewMockAuthService(ctrl),
		users:    mock.NewMockUserService(ctrl),
		reviews:  mock.NewMockReviewService(ctrl),
		files:    mock.NewMockFileService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		filesDir: t.TempDir(),
	}

	services := &service.Services{
		AuthService:    env.auth,
		UserService:    env.users,
		ReviewService:  env.reviews,
		FileService:    env.files,
		AppInfoService: env.appInfo,
	}
	cfg := config.StructuredConfig{
		Storage: config.Storage{Files: config.Files{Dir: env.filesDir}},
	}

	env.handler = NewHandler(services, cfg, logger.Nop())
	env.router = env.handler.Init()
	return env
}

func tokenFor(uid string) models.Token {
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{Subject: uid, ID: "jti-1"},
		SignedString:     testSignedToken,
	}
}

// signedIn makes the bearer token of authed requests valid for testUID.
func (e *testEnv) signedIn() {
	e.auth.EXPECT().ParseToken(gomock.Any(), testSignedToken).Return(tokenFor(testUID), nil).AnyTimes()
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func newRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func newAuthedRequest(method, path, body string) *http.Request {
	req := newRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+testSignedToken)
	return req
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// errorBody is what http.Error writes for msg.
func errorBody(msg string) string {
	return msg + "\n"
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresConfig(t *testing.T) {
	svc := &service.Services{}
	cfg := config.StructuredConfig{
		Storage: config.Storage{Files: config.Files{Dir: "/srv/files"}},
		Server:  config.Server{MetricsAddress: ":9100"},
	}

	h := NewHandler(svc, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, "/srv/files", h.filesDir)
	assert.False(t, h.metricsOnAPI)
}

func TestNewHandler_MetricsOnAPIWithoutDedicatedAddress(t *testing.T) {
	h := NewHandler(&service.Services{}, config.StructuredConfig{}, logger.Nop())

	assert.True(t, h.metricsOnAPI)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

var expectedRoutes = []struct {
	method string
	path   string
}{
	// public; an empty body is rejected with 400, not 404/405
	{http.MethodPost, "/api/auth/register"},
	{http.MethodPost, "/api/auth/login"},
	{http.MethodPost, "/api/auth/password-reset"},
	{http.MethodPost, "/api/auth/password-reset/confirm"},
	// authorized; the auth middleware answers 401
	{http.MethodPost, "/api/auth/logout"},
	{http.MethodGet, "/api/auth/me"},
	{http.MethodDelete, "/api/auth/me"},
	{http.MethodPost, "/api/auth/verification"},
	{http.MethodPost, "/api/auth/reauthenticate"},
	{http.MethodPut, "/api/auth/email"},
	{http.MethodPost, "/api/users"},
	{http.MethodGet, "/api/users/" + testUID},
	{http.MethodPut, "/api/users/" + testUID},
	{http.MethodDelete, "/api/users/" + testUID},
	{http.MethodPost, "/api/reviews"},
	{http.MethodGet, "/api/reviews"},
	{http.MethodPost, "/api/files"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := env.do(newRequest(tc.method, tc.path, ""))

			assert.NotEqual(t, http.StatusNotFound, rec.Code, "route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code, "method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(newRequest(http.MethodGet, "/api/nonexistent", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(newRequest(http.MethodPost, "/api/version/", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_ServesStoredFiles(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, writeFile(env.filesDir, "photo.png", "png-bytes"))

	rec := env.do(newRequest(http.MethodGet, "/files/photo.png", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestInit_ServesMetrics(t *testing.T) {
	env := newTestEnv(t)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
	env.do(newRequest(http.MethodGet, "/api/version/", ""))

	rec := env.do(newRequest(http.MethodGet, "/metrics", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	// chi reports route patterns without the trailing slash
	assert.Contains(t, rec.Body.String(), `sommelier_http_requests_total{method="GET",route="/api/version",status="200"}`)
}

func TestMetricsRouter(t *testing.T) {
	rec := httptest.NewRecorder()
	MetricsRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

// ─────────────────────────────────────────────
// version
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	env := newTestEnv(t)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := env.do(newRequest(http.MethodGet, "/api/version/", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

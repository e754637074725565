// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/password-reset", h.sendPasswordReset)
		r.Post("/api/auth/password-reset/confirm", h.confirmPasswordReset)
		r.Get("/api/auth/verify", h.verifyEmail)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)
			r.Post("/api/auth/logout", h.logout)
			r.Get("/api/auth/me", h.currentUser)
			r.Delete("/api/auth/me", h.deleteAccount)
			r.Post("/api/auth/verification", h.sendEmailVerification)
			r.Post("/api/auth/reauthenticate", h.reauthenticate)
			r.Put("/api/auth/email", h.updateEmail)

			r.Post("/api/users", h.createProfile)
			r.Get("/api/users/{uid}", h.getProfile)
			r.Put("/api/users/{uid}", h.updateProfile)
			r.Delete("/api/users/{uid}", h.deleteProfile)

			r.Post("/api/reviews", h.createReview)
			r.Get("/api/reviews", h.listReviews)
		})

		// multipart bodies are not gzip-encoded
		r.Post("/api/files", h.uploadFile)
	})

	router.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(h.filesDir))))

	if h.metricsOnAPI {
		router.Handle("/metrics", promhttp.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// MetricsRouter serves only /metrics, for a dedicated metrics address.
func MetricsRouter() *chi.Mux {
	RegisterMetrics()

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Handle("/metrics", promhttp.Handler())
	return router
}

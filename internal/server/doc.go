// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the backend's HTTP listeners.
//
// The API router always gets a listener; the prometheus endpoint gets its
// own when a metrics address is configured. All listeners stop together on
// SIGTERM, SIGINT or SIGQUIT, or as soon as one of them fails.
package server

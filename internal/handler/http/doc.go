// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the sommelier backend.
//
// It wires the chi router, the request handlers for accounts, profile
// documents, reviews and files, and the middleware chain: trace ids, access
// logging, prometheus metrics, gzip, bearer token authentication and the
// method check. Handlers decode the request, delegate to the service layer
// and map service and store sentinels to HTTP statuses.
package http

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI next to the workers that reduce screen actions and
// perform network calls, and stops both when either of them ends.
package client

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/sommelier/internal/screens"

// stateMsg carries a new screen state to the page that observed it.
type stateMsg struct {
	target page
	state  any
}

// effectMsg carries an effect emitted by the screen of source.
type effectMsg struct {
	source page
	effect screens.Effect
}

// clearSnackbarMsg hides the snackbar if it is still the one numbered seq.
type clearSnackbarMsg struct {
	seq int
}

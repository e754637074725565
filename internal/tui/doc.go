// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui hosts the client screens in a bubbletea program.
//
// Every screen reducer of package screens is shown by a page. A page owns a
// [lifecycle.Owner] that is active only while the page is on top of the
// navigation stack, so effects emitted while the page is hidden wait until
// it is shown again. Observer callbacks run on the client's main loop and
// reach the program through a mailbox; the program never blocks on them.
package tui

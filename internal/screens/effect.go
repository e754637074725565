// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package screens

// Route names a screen the UI can navigate to.
type Route int

const (
	RouteSplash Route = iota
	RouteLogin
	RouteRegister
	RouteForgotPassword
	RouteEmailVerification
	RouteHome
	RouteProfile
	RouteEditProfile
	RouteDeleteAccount
	RouteAddReview
)

var routeNames = map[Route]string{
	RouteSplash:            "splash",
	RouteLogin:             "login",
	RouteRegister:          "register",
	RouteForgotPassword:    "forgot-password",
	RouteEmailVerification: "email-verification",
	RouteHome:              "home",
	RouteProfile:           "profile",
	RouteEditProfile:       "edit-profile",
	RouteDeleteAccount:     "delete-account",
	RouteAddReview:         "add-review",
}

func (r Route) String() string {
	if name, ok := routeNames[r]; ok {
		return name
	}
	return "unknown"
}

// Effect is a one-shot instruction to the UI.
type Effect interface {
	effect()
}

// Navigate opens the screen To. With ClearBackStack the UI forgets every
// screen opened before, as after signing in or out.
type Navigate struct {
	To             Route
	ClearBackStack bool
}

// NavigateBack closes the current screen.
type NavigateBack struct{}

// ShowSnackbarError shows a transient error message.
type ShowSnackbarError struct {
	Message string
}

// ShowSnackbarMessage shows a transient informational message.
type ShowSnackbarMessage struct {
	Message string
}

// CopyToClipboard asks the UI to put Text on the system clipboard.
type CopyToClipboard struct {
	Text string
}

// Trigger asks the UI to send Action back to the reducer. It separates the
// synchronous validation from the network step so that the Loading state is
// on screen before the call starts.
type Trigger[A any] struct {
	Action A
}

func (Navigate) effect()            {}
func (NavigateBack) effect()        {}
func (ShowSnackbarError) effect()   {}
func (ShowSnackbarMessage) effect() {}
func (CopyToClipboard) effect()     {}
func (Trigger[A]) effect()          {}

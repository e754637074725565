// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/screens"
	"github.com/MKhiriev/sommelier/internal/service"
	"github.com/MKhiriev/sommelier/internal/workers"
)

// pageFactory builds a fresh page, with a fresh screen, for route. It
// returns nil for routes it does not know.
type pageFactory func(route screens.Route) page

func newPageFactory(services *service.ClientServices, dispatcher workers.Dispatcher, log *logger.Logger) pageFactory {
	return func(route screens.Route) page {
		switch route {
		case screens.RouteSplash:
			return newSplashPage(screens.NewSplashScreen(services.Splash, dispatcher, log))
		case screens.RouteLogin:
			return newLoginPage(screens.NewLoginScreen(services.Login, dispatcher, log))
		case screens.RouteRegister:
			return newRegisterPage(screens.NewRegisterScreen(services.Register, dispatcher, log))
		case screens.RouteForgotPassword:
			return newForgotPasswordPage(screens.NewForgotPasswordScreen(services.ForgotPassword, dispatcher, log))
		case screens.RouteEmailVerification:
			return newEmailVerificationPage(screens.NewEmailVerificationScreen(services.EmailVerification, dispatcher, log))
		case screens.RouteHome:
			return newHomePage(screens.NewHomeScreen(services.Home, dispatcher, log))
		case screens.RouteProfile:
			return newProfilePage(screens.NewProfileScreen(services.Profile, dispatcher, log))
		case screens.RouteEditProfile:
			return newEditProfilePage(screens.NewEditProfileScreen(services.EditProfile, dispatcher, log))
		case screens.RouteDeleteAccount:
			return newDeleteAccountPage(screens.NewDeleteAccountScreen(services.DeleteAccount, dispatcher, log))
		case screens.RouteAddReview:
			return newAddReviewPage(screens.NewAddReviewScreen(services.AddReview, dispatcher, log))
		default:
			return nil
		}
	}
}

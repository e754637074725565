// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/sommelier/internal/screens"
)

type (
	loginLayout             = pageLayout[screens.LoginModel, screens.LoginAction]
	registerLayout          = pageLayout[screens.RegisterModel, screens.RegisterAction]
	forgotPasswordLayout    = pageLayout[screens.ForgotPasswordModel, screens.ForgotPasswordAction]
	emailVerificationLayout = pageLayout[screens.EmailVerificationModel, screens.EmailVerificationAction]
	splashLayout            = pageLayout[screens.SplashModel, screens.SplashAction]
)

func newSplashPage(screen screens.Screen[screens.SplashModel, screens.SplashAction]) page {
	return newScreenPage(screens.RouteSplash, screen, splashLayout{
		title: "SOMMELIER",
		start: []screens.SplashAction{screens.SplashStarted{}},
		bindings: []binding[screens.SplashAction]{
			{key: keys.retry, action: screens.SplashStarted{}},
		},
		body: func(s screens.State[screens.SplashModel]) string {
			if s.Phase == screens.Error {
				return "Could not restore your session."
			}
			return "Restoring your session..."
		},
	})
}

func newLoginPage(screen screens.Screen[screens.LoginModel, screens.LoginAction]) page {
	return newScreenPage(screens.RouteLogin, screen, loginLayout{
		title: "SIGN IN",
		fields: []inputField[screens.LoginModel, screens.LoginAction]{
			{
				label:   "Email",
				value:   func(m screens.LoginModel) screens.Field { return m.Email },
				changed: func(s string) screens.LoginAction { return screens.LoginEmailChanged{Text: s} },
			},
			{
				label:   "Password",
				masked:  true,
				value:   func(m screens.LoginModel) screens.Field { return m.Password },
				changed: func(s string) screens.LoginAction { return screens.LoginPasswordChanged{Text: s} },
			},
		},
		submit: func() screens.LoginAction { return screens.LoginClicked{} },
		bindings: []binding[screens.LoginAction]{
			{key: keys.forgotPassword, action: screens.LoginForgotPasswordClicked{}},
			{key: keys.signUp, action: screens.LoginSignUpClicked{}},
		},
	})
}

func newRegisterPage(screen screens.Screen[screens.RegisterModel, screens.RegisterAction]) page {
	return newScreenPage(screens.RouteRegister, screen, registerLayout{
		title: "CREATE ACCOUNT",
		fields: []inputField[screens.RegisterModel, screens.RegisterAction]{
			{
				label:   "Name",
				value:   func(m screens.RegisterModel) screens.Field { return m.Name },
				changed: func(s string) screens.RegisterAction { return screens.RegisterNameChanged{Text: s} },
			},
			{
				label:   "Email",
				value:   func(m screens.RegisterModel) screens.Field { return m.Email },
				changed: func(s string) screens.RegisterAction { return screens.RegisterEmailChanged{Text: s} },
			},
			{
				label:   "Password",
				masked:  true,
				value:   func(m screens.RegisterModel) screens.Field { return m.Password },
				changed: func(s string) screens.RegisterAction { return screens.RegisterPasswordChanged{Text: s} },
			},
			{
				label:   "Repeat",
				masked:  true,
				value:   func(m screens.RegisterModel) screens.Field { return m.Confirmation },
				changed: func(s string) screens.RegisterAction { return screens.RegisterConfirmationChanged{Text: s} },
			},
		},
		submit: func() screens.RegisterAction { return screens.RegisterClicked{} },
		bindings: []binding[screens.RegisterAction]{
			{key: keys.back, action: screens.RegisterBackClicked{}},
		},
	})
}

func newForgotPasswordPage(screen screens.Screen[screens.ForgotPasswordModel, screens.ForgotPasswordAction]) page {
	return newScreenPage(screens.RouteForgotPassword, screen, forgotPasswordLayout{
		title: "RESET PASSWORD",
		fields: []inputField[screens.ForgotPasswordModel, screens.ForgotPasswordAction]{
			{
				label:   "Email",
				value:   func(m screens.ForgotPasswordModel) screens.Field { return m.Email },
				changed: func(s string) screens.ForgotPasswordAction { return screens.ForgotPasswordEmailChanged{Text: s} },
			},
		},
		submit: func() screens.ForgotPasswordAction { return screens.ForgotPasswordSendClicked{} },
		bindings: []binding[screens.ForgotPasswordAction]{
			{key: keys.back, action: screens.ForgotPasswordBackClicked{}},
		},
		body: func(screens.State[screens.ForgotPasswordModel]) string {
			return helpStyle.Render("We will email you a code to set a new password.")
		},
	})
}

func newEmailVerificationPage(screen screens.Screen[screens.EmailVerificationModel, screens.EmailVerificationAction]) page {
	return newScreenPage(screens.RouteEmailVerification, screen, emailVerificationLayout{
		title: "VERIFY YOUR EMAIL",
		bindings: []binding[screens.EmailVerificationAction]{
			{key: keys.resend, action: screens.EmailVerificationResendClicked{}},
			{key: keys.check, action: screens.EmailVerificationCheckClicked{}},
			{key: keys.signOut, action: screens.EmailVerificationSignOutClicked{}},
		},
		body: func(screens.State[screens.EmailVerificationModel]) string {
			return "Confirm the verification code we sent to your email address,\nthen come back and check."
		},
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/sommelier/internal/adapter"
	"github.com/MKhiriev/sommelier/internal/logger"
)

// ClientServices groups the per-screen facades of the client application.
type ClientServices struct {
	Splash            SplashFacade
	Login             LoginFacade
	Register          RegisterFacade
	ForgotPassword    ForgotPasswordFacade
	EmailVerification EmailVerificationFacade
	Home              HomeFacade
	Profile           ProfileFacade
	EditProfile       EditProfileFacade
	DeleteAccount     DeleteAccountFacade
	AddReview         AddReviewFacade
}

// NewClientServices wires the facades over the remote adapter.
func NewClientServices(remote adapter.Adapter, logger *logger.Logger) *ClientServices {
	return NewClientServicesFrom(
		NewAuthenticator(remote, logger),
		NewUserDocuments(remote),
		NewReviewDocuments(remote),
		NewFileUploads(remote),
		logger,
	)
}

// NewClientServicesFrom wires the facades over explicit collaborators.
func NewClientServicesFrom(auth Authenticator, users UserDocuments, reviews ReviewDocuments, files FileUploads, logger *logger.Logger) *ClientServices {
	c := collaborators{
		auth:    auth,
		users:   users,
		reviews: reviews,
		files:   files,
		logger:  logger.ForComponent("facades"),
	}

	return &ClientServices{
		Splash:            &splashFacade{c},
		Login:             &loginFacade{c},
		Register:          &registerFacade{c},
		ForgotPassword:    &forgotPasswordFacade{c},
		EmailVerification: &emailVerificationFacade{c},
		Home:              &homeFacade{c},
		Profile:           &profileFacade{c},
		EditProfile:       &editProfileFacade{c},
		DeleteAccount:     &deleteAccountFacade{c},
		AddReview:         &addReviewFacade{c},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/sommelier/internal/screens"
)

type (
	homeLayout          = pageLayout[screens.HomeModel, screens.HomeAction]
	profileLayout       = pageLayout[screens.ProfileModel, screens.ProfileAction]
	editProfileLayout   = pageLayout[screens.EditProfileModel, screens.EditProfileAction]
	deleteAccountLayout = pageLayout[screens.DeleteAccountModel, screens.DeleteAccountAction]
	addReviewLayout     = pageLayout[screens.AddReviewModel, screens.AddReviewAction]
)

const reviewLineWidth = 60

func newHomePage(screen screens.Screen[screens.HomeModel, screens.HomeAction]) page {
	return newScreenPage(screens.RouteHome, screen, homeLayout{
		title: "HOME",
		start: []screens.HomeAction{screens.HomeStarted{}},
		bindings: []binding[screens.HomeAction]{
			{key: keys.addReview, action: screens.HomeAddReviewClicked{}},
			{key: keys.profile, action: screens.HomeProfileClicked{}},
			{key: keys.retry, action: screens.HomeStarted{}},
			{key: keys.signOut, action: screens.HomeSignOutClicked{}},
		},
		body: renderHome,
	})
}

func renderHome(s screens.State[screens.HomeModel]) string {
	m := s.Model
	if m.ErrorMessage != "" {
		return errorStyle.Render(m.ErrorMessage)
	}
	if s.Phase != screens.Success {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hello, %s (%s)\n\n", valueOrDash(m.Name), valueOrDash(m.Email))

	if len(m.Reviews) == 0 {
		b.WriteString(helpStyle.Render("No reviews yet. Press a to write the first one."))
		return b.String()
	}

	b.WriteString("Your reviews:\n")
	for _, r := range m.Reviews {
		line := fmt.Sprintf("%s %s: %s", stars(r.Rating), r.Restaurant, r.Comment)
		b.WriteString("  ")
		b.WriteString(fitText(line, reviewLineWidth))
		b.WriteString("\n")
	}
	return b.String()
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func newProfilePage(screen screens.Screen[screens.ProfileModel, screens.ProfileAction]) page {
	return newScreenPage(screens.RouteProfile, screen, profileLayout{
		title: "PROFILE",
		start: []screens.ProfileAction{screens.ProfileStarted{}},
		bindings: []binding[screens.ProfileAction]{
			{key: keys.back, action: screens.ProfileBackClicked{}},
			{key: keys.edit, action: screens.ProfileEditClicked{}},
			{key: keys.copyUID, action: screens.ProfileCopyUIDClicked{}},
			{key: keys.deleteAccount, action: screens.ProfileDeleteAccountClicked{}},
			{key: keys.signOut, action: screens.ProfileSignOutClicked{}},
		},
		body: func(s screens.State[screens.ProfileModel]) string {
			m := s.Model
			if m.ErrorMessage != "" {
				return errorStyle.Render(m.ErrorMessage)
			}
			return padLabel("Name") + valueOrDash(m.Name) + "\n" +
				padLabel("Email") + valueOrDash(m.Email) + "\n" +
				padLabel("Photo") + valueOrDash(m.PhotoURL) + "\n" +
				padLabel("User ID") + valueOrDash(m.UID)
		},
	})
}

func newEditProfilePage(screen screens.Screen[screens.EditProfileModel, screens.EditProfileAction]) page {
	return newScreenPage(screens.RouteEditProfile, screen, editProfileLayout{
		title: "EDIT PROFILE",
		start: []screens.EditProfileAction{screens.EditProfileStarted{}},
		fields: []inputField[screens.EditProfileModel, screens.EditProfileAction]{
			{
				label:   "Name",
				value:   func(m screens.EditProfileModel) screens.Field { return m.Name },
				changed: func(s string) screens.EditProfileAction { return screens.EditProfileNameChanged{Text: s} },
			},
			{
				label:   "Email",
				value:   func(m screens.EditProfileModel) screens.Field { return m.Email },
				changed: func(s string) screens.EditProfileAction { return screens.EditProfileEmailChanged{Text: s} },
			},
			{
				label:   "Photo file",
				value:   func(m screens.EditProfileModel) screens.Field { return m.PhotoPath },
				changed: func(s string) screens.EditProfileAction { return screens.EditProfilePhotoPathChanged{Text: s} },
			},
		},
		submit: func() screens.EditProfileAction { return screens.EditProfileSaveClicked{} },
		bindings: []binding[screens.EditProfileAction]{
			{key: keys.back, action: screens.EditProfileBackClicked{}},
		},
		body: func(s screens.State[screens.EditProfileModel]) string {
			return padLabel("Photo") + valueOrDash(s.Model.PhotoURL)
		},
	})
}

func newDeleteAccountPage(screen screens.Screen[screens.DeleteAccountModel, screens.DeleteAccountAction]) page {
	return newScreenPage(screens.RouteDeleteAccount, screen, deleteAccountLayout{
		title: "DELETE ACCOUNT",
		fields: []inputField[screens.DeleteAccountModel, screens.DeleteAccountAction]{
			{
				label:   "Email",
				value:   func(m screens.DeleteAccountModel) screens.Field { return m.Email },
				changed: func(s string) screens.DeleteAccountAction { return screens.DeleteAccountEmailChanged{Text: s} },
			},
			{
				label:   "Password",
				masked:  true,
				value:   func(m screens.DeleteAccountModel) screens.Field { return m.Password },
				changed: func(s string) screens.DeleteAccountAction { return screens.DeleteAccountPasswordChanged{Text: s} },
			},
		},
		submit: func() screens.DeleteAccountAction { return screens.DeleteAccountClicked{} },
		bindings: []binding[screens.DeleteAccountAction]{
			{key: keys.back, action: screens.DeleteAccountBackClicked{}},
		},
		body: func(screens.State[screens.DeleteAccountModel]) string {
			return errorStyle.Render("This removes your account and profile. It cannot be undone.")
		},
	})
}

func newAddReviewPage(screen screens.Screen[screens.AddReviewModel, screens.AddReviewAction]) page {
	return newScreenPage(screens.RouteAddReview, screen, addReviewLayout{
		title: "NEW REVIEW",
		fields: []inputField[screens.AddReviewModel, screens.AddReviewAction]{
			{
				label:   "Restaurant",
				value:   func(m screens.AddReviewModel) screens.Field { return m.Restaurant },
				changed: func(s string) screens.AddReviewAction { return screens.AddReviewRestaurantChanged{Text: s} },
			},
			{
				label:   "Rating 1-5",
				value:   func(m screens.AddReviewModel) screens.Field { return m.Rating },
				changed: func(s string) screens.AddReviewAction { return screens.AddReviewRatingChanged{Text: s} },
			},
			{
				label:   "Comment",
				value:   func(m screens.AddReviewModel) screens.Field { return m.Comment },
				changed: func(s string) screens.AddReviewAction { return screens.AddReviewCommentChanged{Text: s} },
			},
		},
		submit: func() screens.AddReviewAction { return screens.AddReviewSubmitClicked{} },
		bindings: []binding[screens.AddReviewAction]{
			{key: keys.back, action: screens.AddReviewBackClicked{}},
		},
	})
}

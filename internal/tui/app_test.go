// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/problem"
	"github.com/MKhiriev/sommelier/internal/screens"
	"github.com/MKhiriev/sommelier/internal/service"
	"github.com/MKhiriev/sommelier/internal/workers"
	"github.com/MKhiriev/sommelier/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend implements every facade the pages need.
type fakeBackend struct {
	signedIn bool
	verified bool
	login    problem.Result[bool]
	profile  models.UserProfile
	reviews  []models.Review
	signOuts int

	loginEmail, loginPassword string
}

func (f *fakeBackend) IsSignedIn(context.Context) bool { return f.signedIn }
func (f *fakeBackend) IsEmailVerified(context.Context) problem.Result[bool] {
	return problem.Success(f.verified)
}
func (f *fakeBackend) Login(_ context.Context, email, password string) problem.Result[bool] {
	f.loginEmail, f.loginPassword = email, password
	return f.login
}
func (f *fakeBackend) Register(context.Context, string, string, string) problem.Result[problem.Unit] {
	return problem.Done()
}
func (f *fakeBackend) SendPasswordResetEmail(context.Context, string) problem.Result[problem.Unit] {
	return problem.Done()
}
func (f *fakeBackend) SendEmailVerification(context.Context) problem.Result[problem.Unit] {
	return problem.Done()
}
func (f *fakeBackend) SignOut(context.Context) problem.Result[problem.Unit] {
	f.signOuts++
	return problem.Done()
}
func (f *fakeBackend) LoadHome(context.Context) problem.Result[service.HomeOverview] {
	return problem.Success(service.HomeOverview{
		Identity: models.UserIdentity{UID: f.profile.UID, Email: f.profile.Email},
		Profile:  f.profile,
		Reviews:  f.reviews,
	})
}
func (f *fakeBackend) LoadProfile(context.Context) problem.Result[models.UserProfile] {
	return problem.Success(f.profile)
}
func (f *fakeBackend) SaveProfile(context.Context, service.ProfileChanges) problem.Result[problem.Unit] {
	return problem.Done()
}
func (f *fakeBackend) DeleteAccount(context.Context, string, string) problem.Result[problem.Unit] {
	return problem.Done()
}
func (f *fakeBackend) SubmitReview(_ context.Context, draft service.ReviewDraft) problem.Result[models.Review] {
	return problem.Success(models.Review{Restaurant: draft.Restaurant, Rating: draft.Rating, Comment: draft.Comment})
}

func (f *fakeBackend) services() *service.ClientServices {
	return &service.ClientServices{
		Splash:            f,
		Login:             f,
		Register:          f,
		ForgotPassword:    f,
		EmailVerification: f,
		Home:              f,
		Profile:           f,
		EditProfile:       f,
		DeleteAccount:     f,
		AddReview:         f,
	}
}

// harness drives a RootModel without a running program. Screen actions are
// reduced inline and mailbox messages are fed back by settle.
type harness struct {
	t       *testing.T
	root    RootModel
	copied  []string
	copyErr error
}

func newHarness(t *testing.T, backend *fakeBackend, start screens.Route) *harness {
	t.Helper()

	h := &harness{t: t}
	factory := newPageFactory(backend.services(), workers.Immediate(), logger.Nop())
	h.root = newRootModel(context.Background(), factory, start, h.copyText, models.NewAppBuildInfo("1.2.3", "2026-10-19", "abc123"), logger.Nop())
	h.settle()
	return h
}

func (h *harness) copyText(text string) error {
	if h.copyErr != nil {
		return h.copyErr
	}
	h.copied = append(h.copied, text)
	return nil
}

func (h *harness) settle() {
	for {
		msg, ok := h.root.mail.pop()
		if !ok {
			return
		}
		h.update(mailMsg{msg: msg})
	}
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	m, cmd := h.root.Update(msg)
	h.root = m.(RootModel)
	return cmd
}

func (h *harness) press(k tea.KeyMsg) tea.Cmd {
	cmd := h.update(k)
	h.settle()
	return cmd
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.press(runes(string(r)))
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
	ctrlB    = tea.KeyMsg{Type: tea.KeyCtrlB}
	ctrlN    = tea.KeyMsg{Type: tea.KeyCtrlN}
)

func (h *harness) routes() []screens.Route {
	var routes []screens.Route
	for _, p := range h.root.stack {
		routes = append(routes, p.Route())
	}
	return routes
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

var annProfile = models.UserProfile{UID: "uid-ann", Name: "Ann", Email: "ann@example.com"}

// ─────────────────────────────────────────────
// start
// ─────────────────────────────────────────────

func TestStart_SignedOut_OpensLogin(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, screens.RouteSplash)

	assert.Equal(t, []screens.Route{screens.RouteLogin}, h.routes())
	assert.Contains(t, h.root.View(), "SIGN IN")
}

func TestStart_SignedInAndVerified_ShowsHome(t *testing.T) {
	backend := &fakeBackend{
		signedIn: true,
		verified: true,
		profile:  annProfile,
		reviews:  []models.Review{{Restaurant: "Noma", Rating: 5, Comment: "Unforgettable"}},
	}
	h := newHarness(t, backend, screens.RouteSplash)

	assert.Equal(t, []screens.Route{screens.RouteHome}, h.routes())
	view := h.root.View()
	assert.Contains(t, view, "Hello, Ann")
	assert.Contains(t, view, "Noma")
}

func TestStart_SignedInNotVerified_ShowsVerification(t *testing.T) {
	h := newHarness(t, &fakeBackend{signedIn: true}, screens.RouteSplash)

	assert.Equal(t, []screens.Route{screens.RouteEmailVerification}, h.routes())
}

// ─────────────────────────────────────────────
// forms
// ─────────────────────────────────────────────

func TestLogin_SubmitsTypedCredentials(t *testing.T) {
	backend := &fakeBackend{login: problem.Success(true), profile: annProfile}
	h := newHarness(t, backend, screens.RouteLogin)

	h.typeText("ann@example.com")
	h.press(tabKey)
	h.typeText("secret1")
	h.press(enterKey)

	assert.Equal(t, "ann@example.com", backend.loginEmail)
	assert.Equal(t, "secret1", backend.loginPassword)
	assert.Equal(t, []screens.Route{screens.RouteHome}, h.routes())
}

func TestLogin_InvalidInput_ShowsFieldErrors(t *testing.T) {
	backend := &fakeBackend{login: problem.Success(true)}
	h := newHarness(t, backend, screens.RouteLogin)

	h.typeText("ann")
	h.press(enterKey)

	assert.Empty(t, backend.loginEmail)
	view := h.root.View()
	assert.Contains(t, view, "Email is not valid")
	assert.Contains(t, view, "Password can't be empty")
	assert.NotContains(t, view, "secret")
}

func TestLogin_Failure_ShowsSnackbar(t *testing.T) {
	backend := &fakeBackend{login: problem.Failure[bool](problem.New(problem.Generic, "The password is invalid"))}
	h := newHarness(t, backend, screens.RouteLogin)

	h.typeText("ann@example.com")
	h.press(tabKey)
	h.typeText("secret1")
	h.press(enterKey)

	assert.Equal(t, []screens.Route{screens.RouteLogin}, h.routes())
	assert.Contains(t, h.root.View(), "The password is invalid")
}

func TestEditProfile_LoadedProfileFillsInputs(t *testing.T) {
	h := newHarness(t, &fakeBackend{profile: annProfile}, screens.RouteEditProfile)

	view := h.root.View()
	assert.Contains(t, view, "Ann")
	assert.Contains(t, view, "ann@example.com")
}

// ─────────────────────────────────────────────
// navigation
// ─────────────────────────────────────────────

func TestNavigation_PushAndBack(t *testing.T) {
	h := newHarness(t, &fakeBackend{signedIn: true, verified: true, profile: annProfile}, screens.RouteSplash)

	h.press(runes("p"))
	require.Equal(t, []screens.Route{screens.RouteHome, screens.RouteProfile}, h.routes())
	assert.Contains(t, h.root.View(), "uid-ann")

	h.press(escKey)
	assert.Equal(t, []screens.Route{screens.RouteHome}, h.routes())
}

func TestNavigation_SignOutClearsStack(t *testing.T) {
	backend := &fakeBackend{signedIn: true, verified: true, profile: annProfile}
	h := newHarness(t, backend, screens.RouteSplash)

	h.press(runes("p"))
	h.press(runes("o"))

	assert.Equal(t, 1, backend.signOuts)
	assert.Equal(t, []screens.Route{screens.RouteLogin}, h.routes())
}

func TestNavigation_BackFromLastPageQuits(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, screens.RouteRegister)

	h.update(escKey)
	msg, ok := h.root.mail.pop()
	require.True(t, ok)

	cmd := h.update(mailMsg{msg: msg})

	assert.Empty(t, h.routes())
	assert.True(t, isQuit(t, cmd))
}

func TestPasswordAndVerificationPages_MentionCode(t *testing.T) {
	for _, route := range []screens.Route{screens.RouteForgotPassword, screens.RouteEmailVerification} {
		h := newHarness(t, &fakeBackend{}, route)

		view := h.root.View()
		assert.Contains(t, view, "code")
		assert.NotContains(t, view, "link")
	}
}

func TestNavigation_LoginToRegister(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, screens.RouteLogin)

	h.press(ctrlN)

	assert.Equal(t, []screens.Route{screens.RouteLogin, screens.RouteRegister}, h.routes())
}

func TestEffectOfClosedPage_Dropped(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, screens.RouteLogin)

	h.press(ctrlN)
	register := h.root.top()
	h.press(escKey)
	require.Equal(t, []screens.Route{screens.RouteLogin}, h.routes())

	h.update(mailMsg{msg: effectMsg{source: register, effect: screens.Navigate{To: screens.RouteHome}}})

	assert.Equal(t, []screens.Route{screens.RouteLogin}, h.routes())
}

// ─────────────────────────────────────────────
// clipboard and snackbar
// ─────────────────────────────────────────────

func TestProfile_CopyUID(t *testing.T) {
	h := newHarness(t, &fakeBackend{profile: annProfile}, screens.RouteProfile)

	h.press(runes("c"))

	assert.Equal(t, []string{"uid-ann"}, h.copied)
	assert.Contains(t, h.root.View(), "Copied to the clipboard")
}

func TestProfile_CopyUID_ClipboardUnavailable(t *testing.T) {
	h := newHarness(t, &fakeBackend{profile: annProfile}, screens.RouteProfile)
	h.copyErr = errors.New("no clipboard utilities available")

	h.press(runes("c"))

	assert.Empty(t, h.copied)
	assert.Contains(t, h.root.View(), "Could not copy to the clipboard")
}

func TestSnackbar_ClearedOnlyByItsOwnTimer(t *testing.T) {
	h := newHarness(t, &fakeBackend{profile: annProfile}, screens.RouteProfile)

	h.press(runes("c"))
	first := h.root.snackbar.seq
	h.press(runes("c"))

	h.update(clearSnackbarMsg{seq: first})
	assert.Contains(t, h.root.View(), "Copied to the clipboard")

	h.update(clearSnackbarMsg{seq: h.root.snackbar.seq})
	assert.NotContains(t, h.root.View(), "Copied to the clipboard")
}

// ─────────────────────────────────────────────
// global keys
// ─────────────────────────────────────────────

func TestBuildInfoWindow(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, screens.RouteLogin)

	h.press(ctrlB)
	view := h.root.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")

	// keys do not reach the page while the window is open
	h.press(runes("x"))
	h.press(escKey)
	assert.NotContains(t, h.root.View(), "abc123")
	assert.Equal(t, []screens.Route{screens.RouteLogin}, h.routes())
}

func TestCtrlC_QuitsAndClosesPages(t *testing.T) {
	h := newHarness(t, &fakeBackend{}, screens.RouteLogin)

	cmd := h.press(ctrlC)

	assert.True(t, isQuit(t, cmd))
	assert.True(t, h.root.quitByUser)
	assert.Empty(t, h.routes())
}

func TestNew_RequiresCollaborators(t *testing.T) {
	_, err := New(nil, workers.Immediate(), models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)

	ui, err := New((&fakeBackend{}).services(), workers.Immediate(), models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, ui)
}

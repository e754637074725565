// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package screens

import (
	"context"
	"testing"

	"github.com/MKhiriev/sommelier/internal/lifecycle"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/problem"
	"github.com/MKhiriev/sommelier/internal/service"
	"github.com/MKhiriev/sommelier/internal/validators"
	"github.com/MKhiriev/sommelier/internal/workers"
	"github.com/MKhiriev/sommelier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder records what an active UI host would receive from a screen.
type recorder[M any] struct {
	owner   *lifecycle.Owner
	states  []State[M]
	effects []Effect
}

func observe[M, A any](t *testing.T, s Screen[M, A]) *recorder[M] {
	t.Helper()
	p := &recorder[M]{owner: lifecycle.NewOwner()}
	p.owner.Activate()
	s.ObserveState(p.owner, func(st State[M]) { p.states = append(p.states, st) })
	s.ObserveEffect(p.owner, func(e Effect) { p.effects = append(p.effects, e) })
	t.Cleanup(p.owner.Destroy)

	p.reset()
	return p
}

func (p *recorder[M]) reset() {
	p.states = nil
	p.effects = nil
}

func (p *recorder[M]) last() State[M] {
	if len(p.states) == 0 {
		var zero State[M]
		return zero
	}
	return p.states[len(p.states)-1]
}

func (p *recorder[M]) phases() []Phase {
	phases := make([]Phase, 0, len(p.states))
	for _, st := range p.states {
		phases = append(phases, st.Phase)
	}
	return phases
}

// manualDispatcher runs main-loop work inline and holds background work
// until flush.
type manualDispatcher struct {
	pending []func()
}

func (d *manualDispatcher) Main(fn func())       { fn() }
func (d *manualDispatcher) Background(fn func()) { d.pending = append(d.pending, fn) }

func (d *manualDispatcher) flush() {
	pending := d.pending
	d.pending = nil
	for _, fn := range pending {
		fn()
	}
}

func (d *manualDispatcher) flushReversed() {
	pending := d.pending
	d.pending = nil
	for i := len(pending) - 1; i >= 0; i-- {
		pending[i]()
	}
}

func immediate() workers.Dispatcher { return workers.Immediate() }

func failure[T any](kind problem.Kind, msg string) problem.Result[T] {
	return problem.Failure[T](problem.New(kind, msg))
}

// ── fakes ────────────────────────────────────────────────────────────────────

type fakeLogin struct {
	result          problem.Result[bool]
	calls           int
	email, password string
}

func (f *fakeLogin) Login(_ context.Context, email, password string) problem.Result[bool] {
	f.calls++
	f.email, f.password = email, password
	return f.result
}

type fakeSplash struct {
	signedIn bool
	verified problem.Result[bool]
}

func (f *fakeSplash) IsSignedIn(context.Context) bool                      { return f.signedIn }
func (f *fakeSplash) IsEmailVerified(context.Context) problem.Result[bool] { return f.verified }

type fakeForgotPassword struct {
	result problem.Result[problem.Unit]
	email  string
}

func (f *fakeForgotPassword) SendPasswordResetEmail(_ context.Context, email string) problem.Result[problem.Unit] {
	f.email = email
	return f.result
}

type fakeEmailVerification struct {
	send     problem.Result[problem.Unit]
	verified problem.Result[bool]
	signOut  problem.Result[problem.Unit]
}

func (f *fakeEmailVerification) SendEmailVerification(context.Context) problem.Result[problem.Unit] {
	return f.send
}
func (f *fakeEmailVerification) IsEmailVerified(context.Context) problem.Result[bool] {
	return f.verified
}
func (f *fakeEmailVerification) SignOut(context.Context) problem.Result[problem.Unit] {
	return f.signOut
}

type fakeHome struct {
	overview problem.Result[service.HomeOverview]
	signOut  problem.Result[problem.Unit]
}

func (f *fakeHome) LoadHome(context.Context) problem.Result[service.HomeOverview] { return f.overview }
func (f *fakeHome) SignOut(context.Context) problem.Result[problem.Unit]          { return f.signOut }

type fakeProfile struct {
	profile problem.Result[models.UserProfile]
	signOut problem.Result[problem.Unit]
}

func (f *fakeProfile) LoadProfile(context.Context) problem.Result[models.UserProfile] {
	return f.profile
}
func (f *fakeProfile) SignOut(context.Context) problem.Result[problem.Unit] { return f.signOut }

type fakeEditProfile struct {
	profile problem.Result[models.UserProfile]
	save    problem.Result[problem.Unit]
	changes []service.ProfileChanges
}

func (f *fakeEditProfile) LoadProfile(context.Context) problem.Result[models.UserProfile] {
	return f.profile
}
func (f *fakeEditProfile) SaveProfile(_ context.Context, changes service.ProfileChanges) problem.Result[problem.Unit] {
	f.changes = append(f.changes, changes)
	return f.save
}

type fakeDeleteAccount struct {
	result problem.Result[problem.Unit]
	calls  int
}

func (f *fakeDeleteAccount) DeleteAccount(context.Context, string, string) problem.Result[problem.Unit] {
	f.calls++
	return f.result
}

type fakeAddReview struct {
	result problem.Result[models.Review]
	drafts []service.ReviewDraft
}

func (f *fakeAddReview) SubmitReview(_ context.Context, draft service.ReviewDraft) problem.Result[models.Review] {
	f.drafts = append(f.drafts, draft)
	return f.result
}

// ── shared properties ────────────────────────────────────────────────────────

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "initial", Initial.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "unknown", Phase(99).String())
	assert.Equal(t, "edit-profile", RouteEditProfile.String())
	assert.Equal(t, "unknown", Route(99).String())
}

func TestScreens_StartInInitial(t *testing.T) {
	s := NewLoginScreen(&fakeLogin{}, immediate(), logger.Nop())
	assert.Equal(t, Initial, s.State().Phase)
	assert.Equal(t, LoginModel{}, s.State().Model)
}

func TestTextChange_YieldsResumeWithText_NoEffect(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{"login email", func(t *testing.T) {
			s := NewLoginScreen(&fakeLogin{}, immediate(), logger.Nop())
			p := observe[LoginModel, LoginAction](t, s)
			s.SendAction(LoginEmailChanged{Text: "a@a.com"})
			assert.Equal(t, State[LoginModel]{Phase: Resume, Model: LoginModel{Email: NewField("a@a.com")}}, p.last())
			assert.Empty(t, p.effects)
		}},
		{"register confirmation", func(t *testing.T) {
			s := NewRegisterScreen(nil, immediate(), logger.Nop())
			p := observe[RegisterModel, RegisterAction](t, s)
			s.SendAction(RegisterConfirmationChanged{Text: "secret1"})
			assert.Equal(t, Resume, p.last().Phase)
			assert.Equal(t, "secret1", p.last().Model.Confirmation.Text)
			assert.Empty(t, p.effects)
		}},
		{"forgot password email", func(t *testing.T) {
			s := NewForgotPasswordScreen(nil, immediate(), logger.Nop())
			p := observe[ForgotPasswordModel, ForgotPasswordAction](t, s)
			s.SendAction(ForgotPasswordEmailChanged{Text: "x"})
			assert.Equal(t, "x", p.last().Model.Email.Text)
			assert.Empty(t, p.effects)
		}},
		{"edit profile photo", func(t *testing.T) {
			s := NewEditProfileScreen(nil, immediate(), logger.Nop())
			p := observe[EditProfileModel, EditProfileAction](t, s)
			s.SendAction(EditProfilePhotoPathChanged{Text: "/tmp/me.png"})
			assert.Equal(t, "/tmp/me.png", p.last().Model.PhotoPath.Text)
			assert.Empty(t, p.effects)
		}},
		{"delete account password", func(t *testing.T) {
			s := NewDeleteAccountScreen(nil, immediate(), logger.Nop())
			p := observe[DeleteAccountModel, DeleteAccountAction](t, s)
			s.SendAction(DeleteAccountPasswordChanged{Text: "pw"})
			assert.Equal(t, "pw", p.last().Model.Password.Text)
			assert.Empty(t, p.effects)
		}},
		{"add review comment", func(t *testing.T) {
			s := NewAddReviewScreen(nil, immediate(), logger.Nop())
			p := observe[AddReviewModel, AddReviewAction](t, s)
			s.SendAction(AddReviewCommentChanged{Text: "Lovely"})
			assert.Equal(t, "Lovely", p.last().Model.Comment.Text)
			assert.Empty(t, p.effects)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.check)
	}
}

func TestTextChange_ClearsPriorFieldError(t *testing.T) {
	s := NewLoginScreen(&fakeLogin{}, immediate(), logger.Nop())
	p := observe[LoginModel, LoginAction](t, s)

	s.SendAction(LoginClicked{})
	require.True(t, p.last().Model.Email.IsError)

	s.SendAction(LoginEmailChanged{Text: "a"})
	assert.Equal(t, NewField("a"), p.last().Model.Email)
	assert.True(t, p.last().Model.Password.IsError, "other fields keep their errors")
}

func TestSubmit_AllInvalid_MarksEveryField_NoEffect(t *testing.T) {
	t.Run("login", func(t *testing.T) {
		s := NewLoginScreen(&fakeLogin{}, immediate(), logger.Nop())
		p := observe[LoginModel, LoginAction](t, s)
		s.SendAction(LoginClicked{})

		m := p.last().Model
		assert.Equal(t, Resume, p.last().Phase)
		assert.Equal(t, Field{Message: validators.BlankEmail, IsError: true}, m.Email)
		assert.Equal(t, Field{Message: validators.BlankPassword, IsError: true}, m.Password)
		assert.Empty(t, p.effects)
	})

	t.Run("register", func(t *testing.T) {
		s := NewRegisterScreen(nil, immediate(), logger.Nop())
		p := observe[RegisterModel, RegisterAction](t, s)
		s.SendAction(RegisterNameChanged{Text: "Al"})
		s.SendAction(RegisterEmailChanged{Text: "abc.com.com"})
		s.SendAction(RegisterPasswordChanged{Text: "123"})
		s.SendAction(RegisterConfirmationChanged{Text: "1234"})
		p.reset()
		s.SendAction(RegisterClicked{})

		m := p.last().Model
		assert.Equal(t, Resume, p.last().Phase)
		assert.Equal(t, validators.InvalidName, m.Name.Message)
		assert.Equal(t, validators.InvalidEmail, m.Email.Message)
		assert.Equal(t, validators.InvalidPassword, m.Password.Message)
		assert.Equal(t, validators.PasswordConfirmationNotMatch, m.Confirmation.Message)
		assert.True(t, m.Name.IsError && m.Email.IsError && m.Password.IsError && m.Confirmation.IsError)
		assert.Empty(t, p.effects)
	})

	t.Run("add review", func(t *testing.T) {
		s := NewAddReviewScreen(nil, immediate(), logger.Nop())
		p := observe[AddReviewModel, AddReviewAction](t, s)
		s.SendAction(AddReviewRatingChanged{Text: "9"})
		s.SendAction(AddReviewCommentChanged{Text: "meh"})
		p.reset()
		s.SendAction(AddReviewSubmitClicked{})

		m := p.last().Model
		assert.Equal(t, validators.BlankRestaurant, m.Restaurant.Message)
		assert.Equal(t, validators.InvalidRating, m.Rating.Message)
		assert.Equal(t, validators.ShortComment, m.Comment.Message)
		assert.Empty(t, p.effects)
	})

	t.Run("delete account", func(t *testing.T) {
		s := NewDeleteAccountScreen(nil, immediate(), logger.Nop())
		p := observe[DeleteAccountModel, DeleteAccountAction](t, s)
		s.SendAction(DeleteAccountClicked{})

		assert.Equal(t, validators.BlankEmail, p.last().Model.Email.Message)
		assert.Equal(t, validators.BlankPassword, p.last().Model.Password.Message)
		assert.Empty(t, p.effects)
	})

	t.Run("edit profile", func(t *testing.T) {
		s := NewEditProfileScreen(nil, immediate(), logger.Nop())
		p := observe[EditProfileModel, EditProfileAction](t, s)
		s.SendAction(EditProfileSaveClicked{})

		assert.Equal(t, validators.BlankName, p.last().Model.Name.Message)
		assert.Equal(t, validators.BlankEmail, p.last().Model.Email.Message)
		assert.Empty(t, p.effects)
	})
}

func TestSubmit_AllValid_OneLoadingThenOneTrigger(t *testing.T) {
	t.Run("login", func(t *testing.T) {
		facade := &fakeLogin{}
		s := NewLoginScreen(facade, immediate(), logger.Nop())
		p := observe[LoginModel, LoginAction](t, s)
		s.SendAction(LoginEmailChanged{Text: "test@example.com"})
		s.SendAction(LoginPasswordChanged{Text: "secret1"})
		p.reset()

		s.SendAction(LoginClicked{})

		assert.Equal(t, []Phase{Loading}, p.phases())
		assert.Equal(t, []Effect{Trigger[LoginAction]{Action: LoginRequested{}}}, p.effects)
		assert.Zero(t, facade.calls, "the call waits for the trigger")
	})

	t.Run("forgot password", func(t *testing.T) {
		s := NewForgotPasswordScreen(&fakeForgotPassword{}, immediate(), logger.Nop())
		p := observe[ForgotPasswordModel, ForgotPasswordAction](t, s)
		s.SendAction(ForgotPasswordEmailChanged{Text: "test@example.com"})
		p.reset()

		s.SendAction(ForgotPasswordSendClicked{})

		assert.Equal(t, []Phase{Loading}, p.phases())
		assert.Equal(t, []Effect{Trigger[ForgotPasswordAction]{Action: ForgotPasswordRequested{}}}, p.effects)
	})

	t.Run("add review", func(t *testing.T) {
		s := NewAddReviewScreen(&fakeAddReview{}, immediate(), logger.Nop())
		p := observe[AddReviewModel, AddReviewAction](t, s)
		s.SendAction(AddReviewRestaurantChanged{Text: "Noma"})
		s.SendAction(AddReviewRatingChanged{Text: "5"})
		s.SendAction(AddReviewCommentChanged{Text: "Unforgettable dinner"})
		p.reset()

		s.SendAction(AddReviewSubmitClicked{})

		assert.Equal(t, []Phase{Loading}, p.phases())
		assert.Equal(t, []Effect{Trigger[AddReviewAction]{Action: AddReviewSubmitRequested{}}}, p.effects)
	})
}

// ── effect delivery ──────────────────────────────────────────────────────────

func TestEffect_EmittedWhileHostInactive_DeliveredOnceOnActivation(t *testing.T) {
	s := NewLoginScreen(&fakeLogin{}, immediate(), logger.Nop())
	owner := lifecycle.NewOwner()

	var effects []Effect
	s.ObserveEffect(owner, func(e Effect) { effects = append(effects, e) })

	s.SendAction(LoginSignUpClicked{})
	s.SendAction(LoginForgotPasswordClicked{})
	assert.Empty(t, effects)

	owner.Activate()
	owner.Deactivate()
	owner.Activate()

	assert.Equal(t, []Effect{Navigate{To: RouteForgotPassword}}, effects)
}

func TestClose_DropsResultsInFlight(t *testing.T) {
	d := &manualDispatcher{}
	facade := &fakeLogin{result: problem.Success(true)}
	s := NewLoginScreen(facade, d, logger.Nop())
	p := observe[LoginModel, LoginAction](t, s)

	s.SendAction(LoginEmailChanged{Text: "test@example.com"})
	s.SendAction(LoginPasswordChanged{Text: "secret1"})
	s.SendAction(LoginClicked{})
	s.SendAction(LoginRequested{})
	p.reset()

	s.Close()
	d.flush()

	assert.Equal(t, 1, facade.calls)
	assert.Empty(t, p.states)
	assert.Empty(t, p.effects)

	s.SendAction(LoginSignUpClicked{})
	assert.Empty(t, p.effects, "actions after Close are ignored")
}

func TestOverlappingRequests_LastCompletionWins(t *testing.T) {
	d := &manualDispatcher{}
	facade := &fakeAddReview{result: problem.Success(models.Review{ID: "r-1"})}
	s := NewAddReviewScreen(facade, d, logger.Nop())
	p := observe[AddReviewModel, AddReviewAction](t, s)

	s.SendAction(AddReviewSubmitRequested{})
	s.SendAction(AddReviewSubmitRequested{})
	d.flushReversed()

	assert.Len(t, facade.drafts, 2)
	assert.Equal(t, []Effect{NavigateBack{}}, p.effects[len(p.effects)-1:])
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/mock"
	"github.com/MKhiriev/sommelier/internal/store"
	"github.com/MKhiriev/sommelier/internal/utils"
	"github.com/MKhiriev/sommelier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "sommelier-test"
)

type fixedUIDs string

func (f fixedUIDs) Generate() string { return string(f) }

type authMocks struct {
	accounts  *mock.MockAccountRepository
	codes     *mock.MockCodeStore
	denyList  *mock.MockTokenDenyList
	hasher    *mock.MockPasswordHasher
	generator *mock.MockCodeGenerator
	mailer    *mock.MockMailer
}

// newTestAuthSvc builds an authService wired to mocks.
func newTestAuthSvc(t *testing.T) (*authService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := authMocks{
		accounts:  mock.NewMockAccountRepository(ctrl),
		codes:     mock.NewMockCodeStore(ctrl),
		denyList:  mock.NewMockTokenDenyList(ctrl),
		hasher:    mock.NewMockPasswordHasher(ctrl),
		generator: mock.NewMockCodeGenerator(ctrl),
		mailer:    mock.NewMockMailer(ctrl),
	}

	svc := NewAuthService(AuthDependencies{
		Accounts:  m.accounts,
		Codes:     m.codes,
		DenyList:  m.denyList,
		Hasher:    m.hasher,
		Generator: m.generator,
		Mailer:    m.mailer,
	}, config.App{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Hour,
		CodeTTL:       15 * time.Minute,
	}, logger.Nop()).(*authService)
	svc.uids = fixedUIDs("uid-1")

	return svc, m
}

var annCredentials = models.Credentials{Email: "Ann@Example.com ", Password: "secret1"}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	created := models.Account{UID: "uid-1", Email: "ann@example.com", PasswordHash: "$argon2id$hash"}

	gomock.InOrder(
		m.hasher.EXPECT().Hash("secret1").Return("$argon2id$hash", nil),
		m.accounts.EXPECT().CreateAccount(ctx, models.Account{
			UID:          "uid-1",
			Email:        "ann@example.com",
			PasswordHash: "$argon2id$hash",
		}).Return(created, nil),
	)

	account, token, err := svc.Register(ctx, annCredentials)
	require.NoError(t, err)
	assert.Equal(t, created, account)

	uid, err := token.GetUID()
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
	assert.NotEmpty(t, token.SignedString)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	m.accounts.EXPECT().CreateAccount(ctx, gomock.Any()).Return(models.Account{}, store.ErrAccountAlreadyExists)

	_, _, err := svc.Register(ctx, annCredentials)
	assert.ErrorIs(t, err, store.ErrAccountAlreadyExists)
}

func TestAuthService_Register_EmptyCredentials(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, _, err := svc.Register(context.Background(), models.Credentials{Email: "ann@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	stored := models.Account{UID: "uid-1", Email: "ann@example.com", PasswordHash: "hash"}
	m.accounts.EXPECT().FindAccountByEmail(ctx, "ann@example.com").Return(stored, nil)
	m.hasher.EXPECT().Verify("secret1", "hash").Return(true, nil)

	account, token, err := svc.Login(ctx, annCredentials)
	require.NoError(t, err)
	assert.Equal(t, stored, account)
	assert.NotEmpty(t, token.ID)
}

func TestAuthService_Login_UnknownEmailAndWrongPassword_LookTheSame(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.accounts.EXPECT().FindAccountByEmail(ctx, "ann@example.com").Return(models.Account{}, store.ErrAccountNotFound)
	_, _, err := svc.Login(ctx, annCredentials)
	assert.ErrorIs(t, err, ErrWrongCredentials)

	m.accounts.EXPECT().FindAccountByEmail(ctx, "ann@example.com").Return(models.Account{UID: "uid-1", PasswordHash: "hash"}, nil)
	m.hasher.EXPECT().Verify("secret1", "hash").Return(false, nil)
	_, _, err = svc.Login(ctx, annCredentials)
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.accounts.EXPECT().FindAccountByEmail(ctx, gomock.Any()).Return(models.Account{}, store.ErrExecutingQuery)

	_, _, err := svc.Login(ctx, annCredentials)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrWrongCredentials)
}

// ── tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_ParseToken(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := utils.GenerateJWTToken(testIssuer, "uid-1", time.Hour, testSignKey)
	require.NoError(t, err)

	m.denyList.EXPECT().IsRevoked(ctx, token.ID).Return(false, nil)
	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, token.ID, parsed.ID)

	m.denyList.EXPECT().IsRevoked(ctx, token.ID).Return(true, nil)
	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	foreign, err := utils.GenerateJWTToken("someone-else", "uid-1", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Logout_RevokesForRemainingLifetime(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := utils.GenerateJWTToken(testIssuer, "uid-1", time.Hour, testSignKey)
	require.NoError(t, err)
	now := time.Now()
	svc.now = func() time.Time { return now }

	m.denyList.EXPECT().Revoke(ctx, token.ID, token.RemainingLifetime(now)).Return(nil)

	require.NoError(t, svc.Logout(ctx, token))
}

func TestAuthService_Logout_NoTokenID(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	assert.ErrorIs(t, svc.Logout(context.Background(), models.Token{}), ErrTokenIsExpiredOrInvalid)
}

// ── codes ────────────────────────────────────────────────────────────────────

func TestAuthService_SendPasswordReset_StoresHashedCode(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		m.accounts.EXPECT().FindAccountByEmail(ctx, "ann@example.com").Return(models.Account{UID: "uid-1", Email: "ann@example.com"}, nil),
		m.generator.EXPECT().NewCode().Return("plain-code", nil),
		m.codes.EXPECT().SaveCode(ctx, store.PurposePasswordReset, utils.HashString("plain-code", testSignKey), "uid-1", 15*time.Minute).Return(nil),
		m.mailer.EXPECT().SendPasswordResetCode(ctx, "ann@example.com", "plain-code").Return(nil),
	)

	require.NoError(t, svc.SendPasswordReset(ctx, "ann@example.com"))
}

func TestAuthService_SendPasswordReset_UnknownEmail(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.accounts.EXPECT().FindAccountByEmail(ctx, "nobody@example.com").Return(models.Account{}, store.ErrAccountNotFound)

	assert.ErrorIs(t, svc.SendPasswordReset(ctx, "nobody@example.com"), store.ErrAccountNotFound)
}

func TestAuthService_ConfirmPasswordReset(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		m.codes.EXPECT().ConsumeCode(ctx, store.PurposePasswordReset, utils.HashString("plain-code", testSignKey)).Return("uid-1", nil),
		m.hasher.EXPECT().Hash("newsecret").Return("new-hash", nil),
		m.accounts.EXPECT().UpdatePasswordHash(ctx, "uid-1", "new-hash").Return(nil),
	)

	require.NoError(t, svc.ConfirmPasswordReset(ctx, models.PasswordResetConfirmation{Code: "plain-code", Password: "newsecret"}))
}

func TestAuthService_ConfirmPasswordReset_UnknownCode(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.codes.EXPECT().ConsumeCode(ctx, store.PurposePasswordReset, gomock.Any()).Return("", store.ErrCodeNotFound)

	err := svc.ConfirmPasswordReset(ctx, models.PasswordResetConfirmation{Code: "stale", Password: "newsecret"})
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestAuthService_SendEmailVerification(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.accounts.EXPECT().FindAccountByUID(ctx, "uid-1").Return(models.Account{UID: "uid-1", Email: "ann@example.com"}, nil)
	m.generator.EXPECT().NewCode().Return("verify-code", nil)
	m.codes.EXPECT().SaveCode(ctx, store.PurposeEmailVerification, gomock.Any(), "uid-1", 15*time.Minute).Return(nil)
	m.mailer.EXPECT().SendVerificationCode(ctx, "ann@example.com", "verify-code").Return(nil)

	require.NoError(t, svc.SendEmailVerification(ctx, "uid-1"))
}

func TestAuthService_SendEmailVerification_AlreadyVerified(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.accounts.EXPECT().FindAccountByUID(ctx, "uid-1").Return(models.Account{UID: "uid-1", EmailVerified: true}, nil)

	assert.ErrorIs(t, svc.SendEmailVerification(ctx, "uid-1"), ErrEmailAlreadyVerified)
}

func TestAuthService_VerifyEmail(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.codes.EXPECT().ConsumeCode(ctx, store.PurposeEmailVerification, utils.HashString("verify-code", testSignKey)).Return("uid-1", nil)
	m.accounts.EXPECT().MarkEmailVerified(ctx, "uid-1").Return(nil)

	require.NoError(t, svc.VerifyEmail(ctx, "verify-code"))
}

func TestAuthService_GeneratorFailure(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.accounts.EXPECT().FindAccountByEmail(ctx, gomock.Any()).Return(models.Account{UID: "uid-1"}, nil)
	m.generator.EXPECT().NewCode().Return("", errors.New("entropy exhausted"))

	err := svc.SendPasswordReset(ctx, "ann@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code generation failed")
}

// ── account management ───────────────────────────────────────────────────────

func TestAuthService_Reauthenticate(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.accounts.EXPECT().FindAccountByEmail(ctx, "ann@example.com").Return(models.Account{UID: "uid-1", PasswordHash: "hash"}, nil).Times(2)
	m.hasher.EXPECT().Verify("secret1", "hash").Return(true, nil).Times(2)

	require.NoError(t, svc.Reauthenticate(ctx, "uid-1", annCredentials))
	assert.ErrorIs(t, svc.Reauthenticate(ctx, "uid-2", annCredentials), ErrWrongCredentials)
}

func TestAuthService_UpdateEmail_Normalizes(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.accounts.EXPECT().UpdateEmail(ctx, "uid-1", "anna@example.com").Return(nil)
	require.NoError(t, svc.UpdateEmail(ctx, "uid-1", " Anna@Example.com"))

	m.accounts.EXPECT().UpdateEmail(ctx, "uid-1", "bob@example.com").Return(store.ErrAccountAlreadyExists)
	assert.ErrorIs(t, svc.UpdateEmail(ctx, "uid-1", "bob@example.com"), store.ErrAccountAlreadyExists)
}

func TestAuthService_DeleteAccount(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.accounts.EXPECT().DeleteAccount(ctx, "uid-1").Return(store.ErrAccountNotFound)

	assert.ErrorIs(t, svc.DeleteAccount(ctx, "uid-1"), store.ErrAccountNotFound)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/crypto"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/store"
	"github.com/MKhiriev/sommelier/internal/utils"
	"github.com/MKhiriev/sommelier/models"
)

// uidGenerator issues account UIDs.
type uidGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// Passwords are kept as argon2id hashes; one-time codes are kept as HMAC
// hashes under the token sign key, so neither store ever sees them in clear.
type authService struct {
	accounts  store.AccountRepository
	codes     store.CodeStore
	denyList  store.TokenDenyList
	hasher    crypto.PasswordHasher
	generator crypto.CodeGenerator
	mailer    Mailer
	uids      uidGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// codeTTL is how long a verification or reset code stays usable.
	codeTTL time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// AuthDependencies are the collaborators of the auth service.
type AuthDependencies struct {
	Accounts  store.AccountRepository
	Codes     store.CodeStore
	DenyList  store.TokenDenyList
	Hasher    crypto.PasswordHasher
	Generator crypto.CodeGenerator
	Mailer    Mailer
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(deps AuthDependencies, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accounts:      deps.Accounts,
		codes:         deps.Codes,
		denyList:      deps.DenyList,
		hasher:        deps.Hasher,
		generator:     deps.Generator,
		mailer:        deps.Mailer,
		uids:          utils.NewUUIDGenerator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		codeTTL:       cfg.CodeTTL,
		now:           time.Now,
		logger:        logger,
	}
}

// Register creates a new account and issues a token for it.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided if the email or password is empty.
//   - A wrapped store.ErrAccountAlreadyExists if the email is taken.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.Account, models.Token, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.Account{}, models.Token{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	account, err := a.accounts.CreateAccount(ctx, models.Account{
		UID:          a.uids.Generate(),
		Email:        normalizeEmail(credentials.Email),
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("account creation ended with error")
		return models.Account{}, models.Token{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	token, err := a.createToken(account.UID)
	if err != nil {
		return models.Account{}, models.Token{}, err
	}

	return account, token, nil
}

// Login authenticates an account by email and password and issues a token.
// An unknown email and a wrong password are both reported as
// ErrWrongCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Account, models.Token, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.Account{}, models.Token{}, ErrInvalidDataProvided
	}

	account, err := a.checkCredentials(ctx, credentials)
	if err != nil {
		return models.Account{}, models.Token{}, err
	}

	token, err := a.createToken(account.UID)
	if err != nil {
		return models.Account{}, models.Token{}, err
	}

	return account, token, nil
}

// Logout puts the token's id on the deny list until the token expires.
func (a *authService) Logout(ctx context.Context, token models.Token) error {
	log := logger.FromContext(ctx)

	if token.ID == "" {
		return ErrTokenIsExpiredOrInvalid
	}

	if err := a.denyList.Revoke(ctx, token.ID, token.RemainingLifetime(a.now())); err != nil {
		log.Err(err).Str("jti", token.ID).Msg("token revocation failed")
		return fmt.Errorf("token revocation failed: %w", err)
	}

	return nil
}

// ParseToken validates a raw JWT string and checks the deny list.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid. A revoked token is reported as ErrTokenRevoked
// wrapped in ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	revoked, err := a.denyList.IsRevoked(ctx, token.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("jti", token.ID).Msg("deny list lookup failed")
		return models.Token{}, fmt.Errorf("deny list lookup failed: %w", err)
	}
	if revoked {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, ErrTokenRevoked)
	}

	return token, nil
}

func (a *authService) CurrentAccount(ctx context.Context, uid string) (models.Account, error) {
	account, err := a.accounts.FindAccountByUID(ctx, uid)
	if err != nil {
		return models.Account{}, fmt.Errorf("account search by uid failed: %w", err)
	}
	return account, nil
}

// SendPasswordReset mails a reset code to the account registered with email.
// Returns a wrapped store.ErrAccountNotFound for an unknown email.
func (a *authService) SendPasswordReset(ctx context.Context, email string) error {
	account, err := a.accounts.FindAccountByEmail(ctx, normalizeEmail(email))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("account search by email failed")
		return fmt.Errorf("account search by email failed: %w", err)
	}

	code, err := a.issueCode(ctx, store.PurposePasswordReset, account.UID)
	if err != nil {
		return err
	}

	return a.mailer.SendPasswordResetCode(ctx, account.Email, code)
}

// ConfirmPasswordReset consumes the reset code and sets the new password.
func (a *authService) ConfirmPasswordReset(ctx context.Context, confirmation models.PasswordResetConfirmation) error {
	log := logger.FromContext(ctx)

	uid, err := a.consumeCode(ctx, store.PurposePasswordReset, confirmation.Code)
	if err != nil {
		return err
	}

	passwordHash, err := a.hasher.Hash(confirmation.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.accounts.UpdatePasswordHash(ctx, uid, passwordHash); err != nil {
		log.Err(err).Str("uid", uid).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// SendEmailVerification mails a verification code to the account's email.
// Returns ErrEmailAlreadyVerified if there is nothing to verify.
func (a *authService) SendEmailVerification(ctx context.Context, uid string) error {
	account, err := a.CurrentAccount(ctx, uid)
	if err != nil {
		return err
	}
	if account.EmailVerified {
		return ErrEmailAlreadyVerified
	}

	code, err := a.issueCode(ctx, store.PurposeEmailVerification, account.UID)
	if err != nil {
		return err
	}

	return a.mailer.SendVerificationCode(ctx, account.Email, code)
}

// VerifyEmail consumes the verification code and marks the email verified.
func (a *authService) VerifyEmail(ctx context.Context, code string) error {
	uid, err := a.consumeCode(ctx, store.PurposeEmailVerification, code)
	if err != nil {
		return err
	}

	if err = a.accounts.MarkEmailVerified(ctx, uid); err != nil {
		logger.FromContext(ctx).Err(err).Str("uid", uid).Msg("marking email verified failed")
		return fmt.Errorf("marking email verified failed: %w", err)
	}

	return nil
}

// Reauthenticate checks that credentials belong to the account uid.
func (a *authService) Reauthenticate(ctx context.Context, uid string, credentials models.Credentials) error {
	account, err := a.checkCredentials(ctx, credentials)
	if err != nil {
		return err
	}
	if account.UID != uid {
		logger.FromContext(ctx).Warn().Str("uid", uid).Msg("reauthentication with credentials of another account")
		return ErrWrongCredentials
	}
	return nil
}

// UpdateEmail changes the account's email; the new address starts
// unverified.
func (a *authService) UpdateEmail(ctx context.Context, uid, email string) error {
	if err := a.accounts.UpdateEmail(ctx, uid, normalizeEmail(email)); err != nil {
		logger.FromContext(ctx).Err(err).Str("uid", uid).Msg("email update failed")
		return fmt.Errorf("email update failed: %w", err)
	}
	return nil
}

// DeleteAccount removes the account together with its profile and reviews.
func (a *authService) DeleteAccount(ctx context.Context, uid string) error {
	if err := a.accounts.DeleteAccount(ctx, uid); err != nil {
		logger.FromContext(ctx).Err(err).Str("uid", uid).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}
	return nil
}

func (a *authService) checkCredentials(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := a.accounts.FindAccountByEmail(ctx, normalizeEmail(credentials.Email))
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Warn().Str("email", credentials.Email).Msg("no account for email")
		return models.Account{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	ok, err := a.hasher.Verify(credentials.Password, account.PasswordHash)
	if err != nil {
		log.Err(err).Str("uid", account.UID).Msg("stored password hash is malformed")
		return models.Account{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Warn().Str("uid", account.UID).Msg("wrong password")
		return models.Account{}, ErrWrongCredentials
	}

	return account, nil
}

// createToken issues a signed JWT for the account uid.
func (a *authService) createToken(uid string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, uid, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

func (a *authService) issueCode(ctx context.Context, purpose store.CodePurpose, uid string) (string, error) {
	log := logger.FromContext(ctx)

	code, err := a.generator.NewCode()
	if err != nil {
		log.Err(err).Msg("code generation failed")
		return "", fmt.Errorf("code generation failed: %w", err)
	}

	if err = a.codes.SaveCode(ctx, purpose, utils.HashString(code, a.tokenSignKey), uid, a.codeTTL); err != nil {
		log.Err(err).Str("uid", uid).Str("purpose", string(purpose)).Msg("saving code failed")
		return "", fmt.Errorf("saving code failed: %w", err)
	}

	return code, nil
}

func (a *authService) consumeCode(ctx context.Context, purpose store.CodePurpose, code string) (string, error) {
	uid, err := a.codes.ConsumeCode(ctx, purpose, utils.HashString(code, a.tokenSignKey))
	if errors.Is(err, store.ErrCodeNotFound) {
		return "", ErrInvalidCode
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("purpose", string(purpose)).Msg("consuming code failed")
		return "", fmt.Errorf("consuming code failed: %w", err)
	}
	return uid, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

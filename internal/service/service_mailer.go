// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/sommelier/internal/logger"
)

// logMailer writes the codes to the server log instead of sending mail.
type logMailer struct {
	logger *logger.Logger
}

func NewLogMailer(logger *logger.Logger) Mailer {
	return &logMailer{logger: logger.ForComponent("mailer")}
}

func (m *logMailer) SendPasswordResetCode(ctx context.Context, email, code string) error {
	m.logger.Info().Str("to", email).Str("code", code).Msg("password reset code issued")
	return nil
}

func (m *logMailer) SendVerificationCode(ctx context.Context, email, code string) error {
	m.logger.Info().Str("to", email).Str("code", code).Msg("email verification code issued")
	return nil
}

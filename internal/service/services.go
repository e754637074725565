// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/crypto"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/store"
)

// Services groups the backend services used by the HTTP handlers. Services
// that accept client payloads are wrapped with validation.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	ReviewService  ReviewService
	FileService    FileService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	auth := NewAuthService(AuthDependencies{
		Accounts:  storages.AccountRepository,
		Codes:     storages.CodeStore,
		DenyList:  storages.TokenDenyList,
		Hasher:    crypto.NewArgon2Hasher(),
		Generator: crypto.NewCodeGenerator(),
		Mailer:    NewLogMailer(logger),
	}, cfg.App, logger)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(auth),
		UserService:    NewUserValidationService().Wrap(NewUserService(storages.ProfileRepository, logger)),
		ReviewService:  NewReviewValidationService().Wrap(NewReviewService(storages.ReviewRepository, logger)),
		FileService:    NewFileService(storages.FileStorage, logger),
		AppInfoService: appInfo,
	}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/MKhiriev/sommelier/internal/store"
	"github.com/MKhiriev/sommelier/models"
)

type userService struct {
	profiles store.ProfileRepository
	logger   *logger.Logger
}

func NewUserService(profiles store.ProfileRepository, logger *logger.Logger) UserService {
	return &userService{
		profiles: profiles,
		logger:   logger,
	}
}

func (s *userService) CreateProfile(ctx context.Context, profile models.UserProfile) error {
	if err := s.profiles.CreateProfile(ctx, profile); err != nil {
		logger.FromContext(ctx).Err(err).Str("uid", profile.UID).Msg("profile creation failed")
		return fmt.Errorf("profile creation failed: %w", err)
	}
	return nil
}

func (s *userService) GetProfile(ctx context.Context, uid string) (models.UserProfile, error) {
	profile, err := s.profiles.GetProfile(ctx, uid)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("profile search failed: %w", err)
	}
	return profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, profile models.UserProfile) error {
	if err := s.profiles.UpdateProfile(ctx, profile); err != nil {
		logger.FromContext(ctx).Err(err).Str("uid", profile.UID).Msg("profile update failed")
		return fmt.Errorf("profile update failed: %w", err)
	}
	return nil
}

func (s *userService) DeleteProfile(ctx context.Context, uid string) error {
	if err := s.profiles.DeleteProfile(ctx, uid); err != nil {
		logger.FromContext(ctx).Err(err).Str("uid", uid).Msg("profile deletion failed")
		return fmt.Errorf("profile deletion failed: %w", err)
	}
	return nil
}

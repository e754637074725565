// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups the backend repositories and stores.
type Storages struct {
	AccountRepository AccountRepository
	ProfileRepository ProfileRepository
	ReviewRepository  ReviewRepository
	CodeStore         CodeStore
	TokenDenyList     TokenDenyList
	FileStorage       FileStorage

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL and Redis, applies migrations and
// prepares the files directory.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	redisClient, err := NewConnectRedis(ctx, cfg.Redis, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("redis connection error: %w", err)
	}

	files, err := NewDiskFileStorage(cfg.Files)
	if err != nil {
		_ = db.Close()
		_ = redisClient.Close()
		return nil, err
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		ProfileRepository: NewProfileRepository(db, logger),
		ReviewRepository:  NewReviewRepository(db, logger),
		CodeStore:         NewRedisCodeStore(redisClient),
		TokenDenyList:     NewRedisDenyList(redisClient),
		FileStorage:       files,
		db:                db,
		redis:             redisClient,
	}, nil
}

// Close releases the database and redis connections.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	return errors.Join(errs...)
}

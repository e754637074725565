// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	codeKeyPrefix    = "sommelier:code:"
	revokedKeyPrefix = "sommelier:revoked:"
)

// NewConnectRedis opens a go-redis client and pings the server.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping: %w", ErrRedisOperation, err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

// redisCodeStore implements [CodeStore]. Codes live under
// "sommelier:code:<purpose>:<hash>" and expire with their TTL.
type redisCodeStore struct {
	client *redis.Client
}

func NewRedisCodeStore(client *redis.Client) CodeStore {
	return &redisCodeStore{client: client}
}

func (s *redisCodeStore) key(purpose CodePurpose, codeHash string) string {
	return codeKeyPrefix + string(purpose) + ":" + codeHash
}

func (s *redisCodeStore) SaveCode(ctx context.Context, purpose CodePurpose, codeHash, uid string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(purpose, codeHash), uid, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisCodeStore.SaveCode").Msg("error saving code")
		return fmt.Errorf("%w: save code: %w", ErrRedisOperation, err)
	}
	return nil
}

// ConsumeCode reads and deletes the code in one GETDEL, so a code is
// redeemed at most once.
func (s *redisCodeStore) ConsumeCode(ctx context.Context, purpose CodePurpose, codeHash string) (string, error) {
	uid, err := s.client.GetDel(ctx, s.key(purpose, codeHash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCodeNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*redisCodeStore.ConsumeCode").Msg("error consuming code")
		return "", fmt.Errorf("%w: consume code: %w", ErrRedisOperation, err)
	}
	return uid, nil
}

// redisDenyList implements [TokenDenyList].
type redisDenyList struct {
	client *redis.Client
}

func NewRedisDenyList(client *redis.Client) TokenDenyList {
	return &redisDenyList{client: client}
}

// Revoke keeps tokenID on the list for ttl, the remaining lifetime of the
// token. Already expired tokens are not recorded.
func (d *redisDenyList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := d.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisDenyList.Revoke").Msg("error revoking token")
		return fmt.Errorf("%w: revoke token: %w", ErrRedisOperation, err)
	}
	return nil
}

func (d *redisDenyList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: check revoked token: %w", ErrRedisOperation, err)
	}
	return n > 0, nil
}

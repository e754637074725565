// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortenRetryDelays(t *testing.T) {
	t.Helper()
	saved := retryDelays
	retryDelays = []time.Duration{time.Millisecond, time.Millisecond}
	t.Cleanup(func() { retryDelays = saved })
}

func TestWithRetry(t *testing.T) {
	shortenRetryDelays(t)

	transient := pgError(pgerrcode.DeadlockDetected)
	permanent := pgError(pgerrcode.UniqueViolation)

	tests := []struct {
		name      string
		errs      []error
		wantCalls int
		wantErr   error
	}{
		{name: "success first try", errs: []error{nil}, wantCalls: 1},
		{name: "transient then success", errs: []error{transient, nil}, wantCalls: 2},
		{name: "permanent not retried", errs: []error{permanent}, wantCalls: 1, wantErr: permanent},
		{name: "gives up after delays", errs: []error{transient, transient, transient, transient}, wantCalls: 3, wantErr: transient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &DB{errorClassificator: NewPostgresErrorClassifier(), logger: logger.Nop()}

			calls := 0
			err := db.withRetry(context.Background(), func() error {
				err := tt.errs[calls]
				calls++
				return err
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestWithRetry_NoClassifier(t *testing.T) {
	db := &DB{logger: logger.Nop()}

	calls := 0
	err := db.withRetry(context.Background(), func() error {
		calls++
		return pgError(pgerrcode.DeadlockDetected)
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier(), logger: logger.Nop()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := db.withRetry(ctx, func() error {
		return pgError(pgerrcode.ConnectionFailure)
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UndefinedTable)))
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, "", postgresError(errors.New("plain")))
}

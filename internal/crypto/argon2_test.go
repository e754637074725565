// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHasher keeps argon2 cheap in tests.
func newTestHasher() *argon2Hasher {
	return &argon2Hasher{argonTime: 1, argonMemory: 1024, argonThreads: 1, argonKeyLen: 32, saltLen: 16}
}

func TestHash_Format(t *testing.T) {
	encoded, err := newTestHasher().Hash("secret1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$"))
	assert.Len(t, strings.Split(encoded, "$"), 6)
}

func TestHash_SaltedPerCall(t *testing.T) {
	h := newTestHasher()

	a, err := h.Hash("secret1")
	require.NoError(t, err)
	b, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerify(t *testing.T) {
	h := newTestHasher()
	encoded, err := h.Hash("secret1")
	require.NoError(t, err)

	ok, err := h.Verify("secret1", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("secret2", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_UsesEncodedParameters(t *testing.T) {
	encoded, err := newTestHasher().Hash("secret1")
	require.NoError(t, err)

	// a hasher with different defaults still verifies older hashes
	ok, err := NewArgon2Hasher().Verify("secret1", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_Malformed(t *testing.T) {
	h := newTestHasher()

	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{name: "empty", encoded: "", wantErr: ErrMalformedHash},
		{name: "wrong algorithm", encoded: "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$a2V5", wantErr: ErrMalformedHash},
		{name: "bad version", encoded: "$argon2id$v=x$m=1,t=1,p=1$c2FsdA$a2V5", wantErr: ErrMalformedHash},
		{name: "other version", encoded: "$argon2id$v=16$m=1,t=1,p=1$c2FsdA$a2V5", wantErr: ErrUnsupportedVersion},
		{name: "bad params", encoded: "$argon2id$v=19$m=a,t=1,p=1$c2FsdA$a2V5", wantErr: ErrMalformedHash},
		{name: "bad salt", encoded: "$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5", wantErr: ErrMalformedHash},
		{name: "empty key", encoded: "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$", wantErr: ErrMalformedHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify("secret1", tt.encoded)
			require.ErrorIs(t, err, tt.wantErr)
			assert.False(t, ok)
		})
	}
}

func TestCodeGenerator(t *testing.T) {
	g := NewCodeGenerator()

	a, err := g.NewCode()
	require.NoError(t, err)
	b, err := g.NewCode()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "+")
	assert.NotContains(t, a, "/")
}

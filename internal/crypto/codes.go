// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"io"
)

type randomCodeGenerator struct {
	size int
}

// NewCodeGenerator returns a [CodeGenerator] producing URL-safe codes of 24
// random bytes.
func NewCodeGenerator() CodeGenerator {
	return &randomCodeGenerator{size: 24}
}

func (g *randomCodeGenerator) NewCode() (string, error) {
	buf := make([]byte, g.size)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	uid := "0190b7a4-0000-7000-8000-000000000001"

	token, err := GenerateJWTToken(issuer, uid, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Issuer)
	}
	if token.Subject != uid {
		t.Errorf("expected subject %s, got %s", uid, token.Subject)
	}
	if token.ID == "" {
		t.Error("expected non-empty token id")
	}
}

func TestGenerateJWTToken_UniqueIDs(t *testing.T) {
	a, _ := GenerateJWTToken("iss", "uid", time.Hour, "key")
	b, _ := GenerateJWTToken("iss", "uid", time.Hour, "key")

	if a.ID == b.ID {
		t.Error("expected distinct token ids")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		uid      string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "uid", time.Hour, "key"},
		{"empty uid", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "uid", 0, "key"},
		{"empty key", "iss", "uid", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.uid, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "uid-456", 5*time.Minute, "secret-key")

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	uid, err := parsedToken.GetUID()
	if err != nil || uid != "uid-456" {
		t.Errorf("expected uid-456, got %q (%v)", uid, err)
	}
	if parsedToken.ID != genToken.ID {
		t.Errorf("expected token id %s, got %s", genToken.ID, parsedToken.ID)
	}
	if parsedToken.String() != genToken.SignedString {
		t.Error("expected signed string to be kept")
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "uid", time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "uid", -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expired token error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "uid", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Errorf("expected abc.def.ghi, got %q (%v)", token, err)
	}

	for _, header := range []string{"", "Bearer", "Bearer ", "a b c"} {
		if _, err = ParseBearerToken(header); err == nil {
			t.Errorf("expected error for %q", header)
		}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "ipv6", input: "[::1]:8443", want: NetAddress{Host: "::1", Port: 8443}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "port is not a number", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "hostname", input: "sommelier.example:8080", wantErr: true},
		{name: "too many colons", input: "127.0.0.1:80:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, NetAddress{}, addr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		addr NetAddress
		want string
	}{
		{addr: NetAddress{}, want: ""},
		{addr: NetAddress{Host: "localhost", Port: 8080}, want: "localhost:8080"},
		{addr: NetAddress{Port: 9090}, want: ":9090"},
		{addr: NetAddress{Host: "::1", Port: 8443}, want: "[::1]:8443"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.String())
		})
	}
}

func TestParseFlags_Server(t *testing.T) {
	cfg, err := parseFlags("sommelier-server", []string{
		"-a", "localhost:8080",
		"-metrics-address", "127.0.0.1:9090",
		"-d", "postgres://sommelier@localhost/sommelier",
		"-f", "/srv/photos",
		"-files-url", "http://localhost:8080/files",
		"-redis-address", "localhost:6379",
		"-redis-password", "secret",
		"-redis-db", "1",
		"-token-sign-key", "sign-key",
		"-token-issuer", "sommelier",
		"-token-duration", "2h",
		"-code-ttl", "10m",
		"-request-timeout", "15s",
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.MetricsAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://sommelier@localhost/sommelier", cfg.Storage.DB.DSN)
	assert.Equal(t, Files{Dir: "/srv/photos", PublicURL: "http://localhost:8080/files"}, cfg.Storage.Files)
	assert.Equal(t, Redis{Address: "localhost:6379", Password: "secret", DB: 1}, cfg.Storage.Redis)
	assert.Equal(t, App{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "sommelier",
		TokenDuration: 2 * time.Hour,
		CodeTTL:       10 * time.Minute,
	}, cfg.App)
}

func TestParseFlags_Client(t *testing.T) {
	cfg, err := parseFlags("sommelier-client", []string{
		"-s", "http://localhost:8080",
		"-adapter-timeout", "5s",
		"-session-dsn", "file:session.db",
		"-pool-size", "4",
		"-queue-size", "64",
		"-config", "/etc/sommelier.json",
	})

	require.NoError(t, err)
	assert.Equal(t, Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 5 * time.Second}, cfg.Adapter)
	assert.Equal(t, "file:session.db", cfg.Storage.Session.DSN)
	assert.Equal(t, Workers{PoolSize: 4, QueueSize: 64}, cfg.Workers)
	assert.Equal(t, "/etc/sommelier.json", cfg.JSONFilePath)
	assert.Empty(t, cfg.Server.HTTPAddress)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags("sommelier", nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "bad address", args: []string{"-a", "nowhere"}},
		{name: "bad duration", args: []string{"-code-ttl", "soon"}},
		{name: "bad number", args: []string{"-pool-size", "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags("sommelier", tt.args)

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

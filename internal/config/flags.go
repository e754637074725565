// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads a partial [StructuredConfig] from the command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-metrics-address metrics server address in format [host]:[port]
//	-d database DSN
//	-f file storage directory
//	-files-url public base URL of stored files
//	-redis-address redis address
//	-redis-password redis password
//	-redis-db redis database number
//	-session-dsn client session database DSN
//	-s server base URL used by the client
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-code-ttl one-time code lifetime (e.g., "15m")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-adapter-timeout client request timeout (e.g., "10s")
//	-pool-size client background pool size
//	-queue-size client background queue size
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[0], os.Args[1:])
}

func parseFlags(name string, args []string) (*StructuredConfig, error) {
	var (
		cfg                           StructuredConfig
		serverAddress, metricsAddress NetAddress
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&metricsAddress, "metrics-address", "Metrics net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Files.Dir, "f", "", "File storage directory")
	fs.StringVar(&cfg.Storage.Files.PublicURL, "files-url", "", "Public base URL of stored files")
	fs.StringVar(&cfg.Storage.Redis.Address, "redis-address", "", "Redis address")
	fs.StringVar(&cfg.Storage.Redis.Password, "redis-password", "", "Redis password")
	fs.IntVar(&cfg.Storage.Redis.DB, "redis-db", 0, "Redis database number")
	fs.StringVar(&cfg.Storage.Session.DSN, "session-dsn", "", "Client session database DSN")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "s", "", "Server base URL")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.App.CodeTTL, "code-ttl", 0, "One-time code lifetime (e.g., 15m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.IntVar(&cfg.Workers.PoolSize, "pool-size", 0, "Background pool size")
	fs.IntVar(&cfg.Workers.QueueSize, "queue-size", 0, "Background queue size")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.MetricsAddress = metricsAddress.String()

	return &cfg, nil
}

// String returns host:port, or an empty string for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty, "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

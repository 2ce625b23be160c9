// Package config handles configuration for the event authentication server:
// defaults, an optional JSON file, environment variables and command-line
// flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP API.
//   - EndpointAddrGRPC: bind address for the gRPC health endpoint; empty disables it.
//   - DatabaseDSN: identity store DSN. postgres:// uses pgx, sqlite:/file: uses
//     SQLite, empty keeps identities in memory.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - TokenValidityDuration: lifetime of issued tokens.
//   - BcryptCost: bcrypt work factor for new password hashes.
//   - LogLevel: debug, info, warn or error.
//   - ShutdownTimeout: how long in-flight requests get on shutdown.
//   - CORSAllowOrigin: value of Access-Control-Allow-Origin.
type Config struct {
	EndpointAddrHTTP      string
	EndpointAddrGRPC      string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	BcryptCost            int
	LogLevel              string
	ShutdownTimeout       time.Duration
	CORSAllowOrigin       string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.EndpointAddrGRPC = ""
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.BcryptCost = 10
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
	c.CORSAllowOrigin = "*"
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.EndpointAddrHTTP) == "" {
		errs = append(errs, errors.New("http address is empty"))
	}
	if c.SecretKey == "" {
		errs = append(errs, errors.New("secret key is empty"))
	}
	if c.TokenValidityDuration <= 0 {
		errs = append(errs, fmt.Errorf("token validity must be positive, got %s", c.TokenValidityDuration))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("bcrypt cost must be in [%d..%d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost))
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("shutdown timeout is negative"))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

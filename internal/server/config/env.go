package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by parseEnv.
const (
	EnvHTTPAddr    = "EVENTAUTH_HTTP_ADDR"
	EnvGRPCAddr    = "EVENTAUTH_GRPC_ADDR"
	EnvDatabaseDSN = "DATABASE_DSN"
	EnvSecretKey   = "JWT_SECRET"
	EnvTokenTTL    = "EVENTAUTH_TOKEN_TTL"
	EnvBcryptCost  = "EVENTAUTH_BCRYPT_COST"
	EnvLogLevel    = "EVENTAUTH_LOG_LEVEL"
	EnvCORSOrigin  = "EVENTAUTH_CORS_ORIGIN"
)

// parseEnv overlays values from the process environment. Only variables
// that are set are applied; malformed numbers or durations panic.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(EnvHTTPAddr); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv(EnvGRPCAddr); ok {
		config.EndpointAddrGRPC = v
	}
	if v, ok := os.LookupEnv(EnvDatabaseDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(EnvSecretKey); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		config.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvCORSOrigin); ok {
		config.CORSAllowOrigin = v
	}

	if v, ok := os.LookupEnv(EnvTokenTTL); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvTokenTTL, err))
		}
		config.TokenValidityDuration = d
	}

	if v, ok := os.LookupEnv(EnvBcryptCost); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvBcryptCost, err))
		}
		config.BcryptCost = n
	}
}

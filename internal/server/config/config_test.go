package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable parseEnv reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvHTTPAddr, EnvGRPCAddr, EnvDatabaseDSN, EnvSecretKey, EnvTokenTTL, EnvBcryptCost, EnvLogLevel, EnvCORSOrigin} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":5000", c.EndpointAddrHTTP)
	assert.Equal(t, "", c.EndpointAddrGRPC)
	assert.Equal(t, "", c.DatabaseDSN)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, 10, c.BcryptCost)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "*", c.CORSAllowOrigin)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	clearEnv(t)

	c := LoadConfig()
	require.NotNil(t, c)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *c)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	clearEnv(t)

	path := writeTempJSON(t, t.TempDir(), "cfg.json", map[string]any{
		"endpoint_addr_http": ":7000",
		"secret_key":         "from-json",
		"bcrypt_cost":        11,
	})
	t.Setenv(EnvSecretKey, "from-env")
	os.Args = []string{"testbin", "-c", path, "-b", "12"}

	c := LoadConfig()

	assert.Equal(t, ":7000", c.EndpointAddrHTTP, "json overrides default")
	assert.Equal(t, "from-env", c.SecretKey, "env overrides json")
	assert.Equal(t, 12, c.BcryptCost, "flag overrides json")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults ok", mutate: func(c *Config) {}},
		{name: "empty address", mutate: func(c *Config) { c.EndpointAddrHTTP = " " }, wantErr: "http address is empty"},
		{name: "empty secret", mutate: func(c *Config) { c.SecretKey = "" }, wantErr: "secret key is empty"},
		{name: "zero validity", mutate: func(c *Config) { c.TokenValidityDuration = 0 }, wantErr: "token validity must be positive"},
		{name: "cost too low", mutate: func(c *Config) { c.BcryptCost = 3 }, wantErr: "bcrypt cost must be in"},
		{name: "cost too high", mutate: func(c *Config) { c.BcryptCost = 32 }, wantErr: "bcrypt cost must be in"},
		{name: "negative shutdown", mutate: func(c *Config) { c.ShutdownTimeout = -time.Second }, wantErr: "shutdown timeout is negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

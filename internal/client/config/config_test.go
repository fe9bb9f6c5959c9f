package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ".", c.StorageDir)
	assert.Equal(t, BackendFile, c.Backend)
	assert.False(t, c.ExclusiveCreate)
	assert.False(t, c.FoldUserCase)
	assert.True(t, c.FoldProfessionCase)
	assert.Equal(t, "plain", c.SecretScheme)
	assert.Equal(t, 3, c.MaxAttempts)
	assert.Equal(t, time.Second, c.LoginInterval)
	assert.Equal(t, 3, c.LoginBurst)
	assert.Equal(t, 80, c.ConsoleWidth)
	assert.Equal(t, 40, c.MenuWidth)
	assert.True(t, c.ClearScreen)
	assert.True(t, c.MaskPassword)
	assert.Equal(t, "snaphire.log", c.LogFile)
	assert.Equal(t, "info", c.LogLevel)

	require.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsWithoutArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"snaphire"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, defaults(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults ok", mutate: func(c *Config) {}},
		{name: "memory backend ok", mutate: func(c *Config) { c.Backend = BackendMemory }},
		{name: "unlimited attempts ok", mutate: func(c *Config) { c.MaxAttempts = 0 }},
		{name: "argon2id ok", mutate: func(c *Config) { c.SecretScheme = "argon2id" }},
		{name: "unknown backend", mutate: func(c *Config) { c.Backend = "postgres" }, wantErr: `unknown backend "postgres"`},
		{name: "unknown scheme", mutate: func(c *Config) { c.SecretScheme = "rot13" }, wantErr: `unknown secret scheme "rot13"`},
		{name: "unknown level", mutate: func(c *Config) { c.LogLevel = "chatty" }, wantErr: `unknown log level "chatty"`},
		{name: "negative attempts", mutate: func(c *Config) { c.MaxAttempts = -1 }, wantErr: "max attempts"},
		{name: "negative interval", mutate: func(c *Config) { c.LoginInterval = -time.Second }, wantErr: "login interval"},
		{name: "zero burst", mutate: func(c *Config) { c.LoginBurst = 0 }, wantErr: "login burst"},
		{name: "zero width", mutate: func(c *Config) { c.MenuWidth = 0 }, wantErr: "widths must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_JoinsAllProblems(t *testing.T) {
	c := defaults()
	c.Backend = "x"
	c.LogLevel = "y"

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
	assert.Contains(t, err.Error(), "unknown log level")
}

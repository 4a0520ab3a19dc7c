package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "SNAPSHOT_PATH", "SOURCE_TIMEOUT", "API_URL", "DEBOUNCE_INTERVAL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadFromFile(t *testing.T) {
	assert := require.New(t)
	clearEnv(t)

	cfg, err := Load("test")
	assert.NoError(err)

	assert.Equal("8081", cfg.GetPort())
	assert.Empty(cfg.GetDatabaseURL())
	assert.Empty(cfg.GetSnapshotPath())
	assert.Equal(500*time.Millisecond, cfg.GetSourceTimeout())
	assert.Equal("http://localhost:8081", cfg.GetAPIURL())
	assert.Equal(20*time.Millisecond, cfg.GetDebounceInterval())
	assert.Equal("debug", cfg.GetLogLevel())
}

func TestLoadUsesEnvFromEnvironment(t *testing.T) {
	assert := require.New(t)
	clearEnv(t)
	t.Setenv("ENV", "test")

	cfg, err := Load("")
	assert.NoError(err)
	assert.Equal("8081", cfg.GetPort())
}

func TestDefaultsWithoutConfigFile(t *testing.T) {
	assert := require.New(t)
	clearEnv(t)

	cfg, err := Load("does-not-exist")
	assert.NoError(err)

	assert.Equal(defaultPort, cfg.GetPort())
	assert.Equal(defaultSourceTimeout, cfg.GetSourceTimeout())
	assert.Equal(defaultAPIURL, cfg.GetAPIURL())
	assert.Equal(defaultDebounceInterval, cfg.GetDebounceInterval())
	assert.Equal(defaultLogLevel, cfg.GetLogLevel())
}

func TestEnvOverridesFile(t *testing.T) {
	type testCase struct {
		name     string
		key      string
		value    string
		check    func(cfg *Config) any
		expected any
	}

	testCases := []testCase{
		{name: "port", key: "PORT", value: "9000", check: func(cfg *Config) any { return cfg.GetPort() }, expected: "9000"},
		{name: "database url", key: "DATABASE_URL", value: "postgres://localhost/advocates", check: func(cfg *Config) any { return cfg.GetDatabaseURL() }, expected: "postgres://localhost/advocates"},
		{name: "debounce", key: "DEBOUNCE_INTERVAL", value: "150ms", check: func(cfg *Config) any { return cfg.GetDebounceInterval() }, expected: 150 * time.Millisecond},
		{name: "invalid debounce falls back to default", key: "DEBOUNCE_INTERVAL", value: "soon", check: func(cfg *Config) any { return cfg.GetDebounceInterval() }, expected: defaultDebounceInterval},
		{name: "source timeout", key: "SOURCE_TIMEOUT", value: "3s", check: func(cfg *Config) any { return cfg.GetSourceTimeout() }, expected: 3 * time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := require.New(t)
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			cfg, err := Load("test")
			assert.NoError(err)
			assert.Equal(tc.expected, tc.check(cfg))
		})
	}
}

func TestSetOverridesEverything(t *testing.T) {
	assert := require.New(t)
	clearEnv(t)
	t.Setenv("API_URL", "http://from-env")

	cfg, err := Load("test")
	assert.NoError(err)

	cfg.Set("API_URL", "http://from-flag")
	assert.Equal("http://from-flag", cfg.GetAPIURL())
}

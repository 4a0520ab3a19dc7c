package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultPort             = "8080"
	defaultAPIURL           = "http://localhost:8080"
	defaultDebounceInterval = 300 * time.Millisecond
	defaultSourceTimeout    = 2 * time.Second
	defaultLogLevel         = "info"
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

// Set overrides a key for the lifetime of the process. CLI flags use it to win over env and file values.
func (c *Config) Set(key string, value any) {
	c.config.Set(key, value)
}

func (c *Config) GetPort() string {
	return c.getString("PORT", "server.port", defaultPort)
}

// GetDatabaseURL returns an empty string when no postgres record source is configured.
func (c *Config) GetDatabaseURL() string {
	return c.getString("DATABASE_URL", "database.url", "")
}

// GetSnapshotPath returns an empty string when no snapshot record source is configured.
func (c *Config) GetSnapshotPath() string {
	return c.getString("SNAPSHOT_PATH", "database.snapshot_path", "")
}

func (c *Config) GetSourceTimeout() time.Duration {
	return c.getDuration("SOURCE_TIMEOUT", "database.timeout", defaultSourceTimeout)
}

func (c *Config) GetAPIURL() string {
	return c.getString("API_URL", "client.api_url", defaultAPIURL)
}

func (c *Config) GetDebounceInterval() time.Duration {
	return c.getDuration("DEBOUNCE_INTERVAL", "client.debounce", defaultDebounceInterval)
}

func (c *Config) GetLogLevel() string {
	return c.getString("LOG_LEVEL", "log.level", defaultLogLevel)
}

func (c *Config) getString(envKey string, fileKey string, fallback string) string {
	value := c.config.GetString(envKey)
	if len(value) == 0 {
		value = c.config.GetString(fileKey)
	}
	if len(value) == 0 {
		value = fallback
	}

	return value
}

func (c *Config) getDuration(envKey string, fileKey string, fallback time.Duration) time.Duration {
	key := envKey
	if len(c.config.GetString(key)) == 0 {
		key = fileKey
	}
	if len(c.config.GetString(key)) == 0 {
		return fallback
	}

	value := c.config.GetDuration(key)
	if value <= 0 {
		slog.Warn("invalid duration in config, using default", "key", key, "default", fallback.String())
		return fallback
	}

	return value
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}

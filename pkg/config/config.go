package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all server settings. Values are resolved in three layers:
// built-in defaults, then an optional TOML file pointed at by
// STANDUP_CONFIG, then environment variables.
type Config struct {
	Port string `toml:"port"`

	DBHost     string `toml:"db_host"`
	DBPort     string `toml:"db_port"`
	DBUser     string `toml:"db_user"`
	DBPassword string `toml:"db_password"`
	DBName     string `toml:"db_name"`

	GithubClientID     string `toml:"github_client_id"`
	GithubClientSecret string `toml:"github_client_secret"`

	// AgentBin is the text-generation CLI executable
	AgentBin string `toml:"agent_bin"`

	SessionTTLHours  int `toml:"session_ttl_hours"`
	DailyTimeoutSec  int `toml:"daily_timeout_sec"`
	WeeklyTimeoutSec int `toml:"weekly_timeout_sec"`

	LogLevel string `toml:"log_level"`
}

func defaults() Config {
	return Config{
		Port:             "8080",
		DBHost:           "localhost",
		DBPort:           "5432",
		DBUser:           "postgres",
		DBPassword:       "password",
		DBName:           "standup",
		AgentBin:         "claude",
		SessionTTLHours:  24 * 30,
		DailyTimeoutSec:  120,
		WeeklyTimeoutSec: 180,
		LogLevel:         "info",
	}
}

// Load resolves the configuration from defaults, the optional TOML file and
// the environment.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("STANDUP_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.GithubClientID = getEnv("GITHUB_CLIENT_ID", cfg.GithubClientID)
	cfg.GithubClientSecret = getEnv("GITHUB_CLIENT_SECRET", cfg.GithubClientSecret)
	cfg.AgentBin = getEnv("AGENT_BIN", cfg.AgentBin)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	return cfg, nil
}

// DSN builds the postgres connection string
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

func (c Config) DailyTimeout() time.Duration {
	return time.Duration(c.DailyTimeoutSec) * time.Second
}

func (c Config) WeeklyTimeout() time.Duration {
	return time.Duration(c.WeeklyTimeoutSec) * time.Second
}

// getEnv fetches an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Package config centralizes configuration for the insightdb MCP server.
//
// All settings load from environment variables with sensible defaults,
// so the server works out of the box when launched by an MCP host with
// a bare command entry.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration for the server.
type Config struct {
	// DBPath is the SQLite database file. The parent directory is
	// created on startup if it doesn't exist.
	DBPath string

	// AnthropicAPIKey enables memo summarization when non-empty.
	// Without it the memo renders with the deterministic template.
	AnthropicAPIKey string

	// Model is the Anthropic model used for memo synthesis.
	Model string

	// SummaryTimeout caps the memo synthesis call. The API itself
	// imposes no deadline, so the caller must.
	SummaryTimeout time.Duration

	// SummaryMaxTokens caps the synthesized memo length.
	SummaryMaxTokens int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		DBPath:           getEnv("INSIGHTDB_PATH", defaultDBPath()),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		Model:            getEnv("INSIGHTDB_MODEL", "claude-sonnet-4-20250514"),
		SummaryTimeout:   getEnvDuration("INSIGHTDB_SUMMARY_TIMEOUT", 30*time.Second),
		SummaryMaxTokens: getEnvInt("INSIGHTDB_MAX_TOKENS", 4096),
	}

	return cfg, cfg.Validate()
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("INSIGHTDB_PATH must not be empty")
	}
	if c.SummaryTimeout <= 0 {
		return fmt.Errorf("INSIGHTDB_SUMMARY_TIMEOUT must be positive, got %s", c.SummaryTimeout)
	}
	if c.SummaryMaxTokens < 1 || c.SummaryMaxTokens > 64000 {
		return fmt.Errorf("INSIGHTDB_MAX_TOKENS must be 1-64000, got %d", c.SummaryMaxTokens)
	}
	return nil
}

// SummarizerEnabled reports whether memo synthesis is configured.
func (c *Config) SummarizerEnabled() bool {
	return c.AnthropicAPIKey != ""
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory — an MCP host may run
		// the server without a resolvable home.
		return "insightdb.db"
	}
	return filepath.Join(home, "insightdb", "insightdb.db")
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

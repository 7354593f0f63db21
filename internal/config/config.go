// Package config provides configuration loading and validation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds the application configuration. Values come from the
// environment, optionally overridden by a JSON file.
type Config struct {
	// Credentials
	GroqAPIKey       string `json:"groq_api_key,omitempty"`
	GeminiAPIKey     string `json:"gemini_api_key,omitempty"`
	LinkedInEmail    string `json:"linkedin_email,omitempty"`
	LinkedInPassword string `json:"linkedin_password,omitempty"`

	// Behavior
	LLMProvider string        `json:"llm_provider,omitempty"` // "groq" (default) or "gemini"
	CacheDir    string        `json:"cache_dir,omitempty"`
	CacheTTL    time.Duration `json:"-"`
	Port        int           `json:"port,omitempty"`
	Headless    bool          `json:"headless,omitempty"`
	Debug       bool          `json:"debug,omitempty"`
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		LLMProvider: "groq",
		CacheDir:    "cache",
		CacheTTL:    4 * time.Hour,
		Port:        8000,
		Headless:    true,
	}
}

// FromEnv builds a configuration from environment variables on top of
// the defaults. Call godotenv beforehand if a .env file should count.
func FromEnv() Config {
	cfg := Defaults()

	cfg.GroqAPIKey = os.Getenv("GROQ_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.LinkedInEmail = os.Getenv("LINKEDIN_EMAIL")
	cfg.LinkedInPassword = os.Getenv("LINKEDIN_PASSWORD")

	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLMProvider = v
	}
	if v := os.Getenv("CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.CacheTTL = ttl
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("HEADLESS"); v != "" {
		if headless, err := strconv.ParseBool(v); err == nil {
			cfg.Headless = headless
		}
	}
	if v := os.Getenv("DEBUG_MODE"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = debug
		}
	}

	return cfg
}

// LoadFile reads a JSON config file and overlays it on cfg.
func LoadFile(cfg Config, path string) (Config, error) {
	if path == "" {
		return cfg, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return cfg, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration can actually drive a search.
// Credentials are checked up front so a misconfigured deployment fails
// at startup, not in the middle of a browser session.
func (c *Config) Validate() error {
	if c.LinkedInEmail == "" || c.LinkedInPassword == "" {
		return fmt.Errorf("config error: LINKEDIN_EMAIL and LINKEDIN_PASSWORD must be set")
	}

	switch c.LLMProvider {
	case "groq", "":
		if c.GroqAPIKey == "" {
			return fmt.Errorf("config error: GROQ_API_KEY must be set")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("config error: GEMINI_API_KEY must be set")
		}
	default:
		return fmt.Errorf("config error: unknown LLM provider %q", c.LLMProvider)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: invalid port %d", c.Port)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("config error: cache TTL must be non-negative")
	}

	return nil
}

// APIKey returns the key for the configured provider.
func (c *Config) APIKey() string {
	if c.LLMProvider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.GroqAPIKey
}

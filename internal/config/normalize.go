package config

import (
	"fmt"
	"os"
	"strings"

	"gw2inventory/internal/language"
)

// apiKeyEnvVars are consulted in order when api.api_key is unset.
var apiKeyEnvVars = []string{"GW2_API_KEY", "API_KEY"}

func (c *Config) normalize() error {
	c.normalizeAPI()
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeUI()
	return c.normalizeLogging()
}

func (c *Config) normalizeAPI() {
	c.API.Key = strings.TrimSpace(c.API.Key)
	if c.API.Key == "" {
		for _, name := range apiKeyEnvVars {
			if value, ok := os.LookupEnv(name); ok && strings.TrimSpace(value) != "" {
				c.API.Key = strings.TrimSpace(value)
				break
			}
		}
	}
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultBaseURL
	}
	c.API.Language = strings.ToLower(strings.TrimSpace(c.API.Language))
	if code, ok := language.Normalize(c.API.Language); ok {
		c.API.Language = code
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = defaultTimeoutSeconds
	}
}

func (c *Config) normalizeCache() error {
	var err error
	if strings.TrimSpace(c.Cache.Path) == "" {
		c.Cache.Path = defaultCachePath
	}
	if c.Cache.Path, err = expandPath(strings.TrimSpace(c.Cache.Path)); err != nil {
		return fmt.Errorf("cache.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeUI() {
	if c.UI.TickMillis <= 0 {
		c.UI.TickMillis = defaultTickMillis
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

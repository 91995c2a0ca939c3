package config

import (
	"fmt"
	"net/url"
	"strings"

	"gw2inventory/internal/failures"
	"gw2inventory/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAPI() error {
	if c.API.Key == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = defaultConfigPath
		}
		return failures.Wrap(failures.ErrConfiguration, "config", "api.api_key",
			fmt.Sprintf("required; set GW2_API_KEY, put API_KEY in .env, or edit %s (create with 'gw2inventory config init')", defaultPath), nil)
	}
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return failures.Wrap(failures.ErrConfiguration, "config", "api.base_url", "must be an absolute URL", err)
	}
	if c.API.Language != "" {
		if _, ok := language.Normalize(c.API.Language); !ok {
			return failures.Wrap(failures.ErrConfiguration, "config", "api.language",
				fmt.Sprintf("unsupported value %q (use one of %s)", c.API.Language, strings.Join(language.Codes(), ", ")), nil)
		}
	}
	if c.API.TimeoutSeconds <= 0 {
		return failures.Wrap(failures.ErrConfiguration, "config", "api.timeout_seconds", "must be positive", nil)
	}
	return nil
}

func (c *Config) validateCache() error {
	if strings.TrimSpace(c.Cache.Path) == "" {
		return failures.Wrap(failures.ErrConfiguration, "config", "cache.path", "must be set", nil)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return failures.Wrap(failures.ErrConfiguration, "config", "logging.level",
			fmt.Sprintf("unsupported value %q (use debug, info, warn, or error)", c.Logging.Level), nil)
	}
}

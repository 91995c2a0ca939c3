package config

const (
	defaultConfigPath         = "~/.config/gw2inventory/config.toml"
	projectConfigName         = "gw2inventory.toml"
	defaultBaseURL            = "https://api.guildwars2.com/v2"
	defaultLanguage           = "en"
	defaultTimeoutSeconds     = 30
	defaultCachePath          = "~/.gw2_inventory_cache.json"
	defaultTickMillis         = 250
	defaultSelectAllByDefault = true
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			BaseURL:        defaultBaseURL,
			Language:       defaultLanguage,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Cache: Cache{
			Path: defaultCachePath,
		},
		UI: UI{
			TickMillis:         defaultTickMillis,
			SelectAllByDefault: defaultSelectAllByDefault,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Dir:    defaultLogDir(),
		},
	}
}

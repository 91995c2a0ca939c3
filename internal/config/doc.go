// Package config loads, normalizes, and validates gw2inventory configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// GW2_API_KEY and API_KEY. A missing API key is reported as a configuration
// error so the CLI can print a setup hint instead of contacting the API.
package config

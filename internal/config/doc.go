// Package config loads the sixcities client configuration.
//
// # Overview
//
// Configuration comes from three layers, later layers winning:
//
//  1. Built-in defaults
//  2. The TOML file (explicit path, or ~/.config/sixcities/config.toml)
//  3. A .env file in the working directory and the process environment
//
// A missing config file is not an error. The client works out of the box
// against the public six-cities API.
//
// # TOML Format
//
//	api_url = "https://15.design.htmlacademy.pro/six-cities"
//	timeout = "5s"
//	token_path = "~/.config/sixcities/token.toml"
//	log_file = "~/.local/state/sixcities/sixcities.log"
//	log_level = "info"      # debug, info, warn, error
//	log_format = "tint"     # tint, text, json
//	refresh_interval = "0s" # background offers refresh; 0 disables
//
// Every field is optional. Durations use time.ParseDuration syntax.
//
// # Environment Overrides
//
//   - SIXCITIES_API_URL
//   - SIXCITIES_TIMEOUT
//   - SIXCITIES_TOKEN_PATH
//   - SIXCITIES_LOG_LEVEL
//
// # Path Expansion
//
// token_path and log_file accept a leading tilde, expanded to the user's
// home directory. Relative paths are made absolute against the current
// directory.
//
// # Error Handling
//
// Load returns errors for unreadable files, malformed TOML, malformed
// durations and negative durations. Errors are prefixed with the stage that
// failed ("open config", "read config", "parse config").
package config

// Package config loads certcheck's startup configuration.
//
// # Resolution Order
//
// Values are layered, later layers winning:
//
//  1. Built-in defaults
//  2. ~/.config/certcheck/config.toml (or the path passed to Load)
//  3. CERTCHECK_* environment variables (optionally seeded from a .env file
//     by LoadDotEnv)
//  4. Command-line flags, applied by the caller
//
// A missing config file is not an error. Empty or whitespace-only values fall
// back to the defaults.
//
// # Default Values
//
//   - Dataset: ~/.local/share/certcheck/users.csv
//   - Lookup delay: 500ms
//   - Fetch timeout: 10s
//   - Log file: ~/.local/state/certcheck/certcheck.log
//   - Log level: info
//
// # TOML Format
//
//	dataset = "~/.local/share/certcheck/users.csv"  # or https://host/users.csv
//	format = "csv"            # csv | xlsx; empty detects from the extension
//	sheet = ""                # xlsx only; empty uses the first sheet
//	lookup_delay_ms = 500
//	fetch_timeout_ms = 10000
//	log_file = "~/.local/state/certcheck/certcheck.log"
//	log_level = "info"
//
// # Environment
//
//	CERTCHECK_DATASET, CERTCHECK_FORMAT, CERTCHECK_SHEET,
//	CERTCHECK_LOOKUP_DELAY_MS, CERTCHECK_LOG_FILE, CERTCHECK_LOG_LEVEL
//
// # Path Expansion
//
// Local dataset paths and the log file path are tilde-expanded and made
// absolute. http:// and https:// dataset locations are kept as given.
//
// # Error Handling
//
// Load returns errors for unreadable or unparsable files, unknown formats and
// negative delays. Everything else degrades to defaults.
package config

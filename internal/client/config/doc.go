// Package config loads runtime configuration for the SnapHire terminal app.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     ".toml" are read as TOML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   storage directory
//	-b string   storage backend: file | memory
//	-s string   secret scheme: plain | argon2id
//	-m int      attempts per signup field (0 = unlimited)
//	-l string   log file ("" = stderr)
//	-v string   log level: debug | info | warn | error
//
// # File schema
//
// Keys are snake_case; omitted keys keep their earlier value. Durations are
// strings like "1s" or integer nanoseconds:
//
//	{
//	  "storage_dir": "/var/lib/snaphire",
//	  "secret_scheme": "argon2id",
//	  "fold_user_case": true,
//	  "login_interval": "2s"
//	}
//
// The same settings in TOML:
//
//	storage_dir = "/var/lib/snaphire"
//	secret_scheme = "argon2id"
//	fold_user_case = true
//	login_interval = "2s"
package config

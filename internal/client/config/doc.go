// Package config loads runtime configuration for the SciCon CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, with an optional .env file loaded first
//     (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the SciCon backend API
//	-s string   path to the local session database file
//	-t int      request timeout (seconds)
//
// Supported environment variables
//
//	SCICON_BASE_URL
//	SCICON_STORAGE_PATH
//	SCICON_REQUEST_TIMEOUT   duration string, e.g. "15s"
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://api.scicon.example",
//	  "storage_path": "scicon.db",
//	  "request_timeout": "15s"
//	}
package config

// Package config loads runtime configuration for the Mogligram client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the content API
//	-t int      request timeout (seconds)
//	-d string   data directory for the local store and logs
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://jsonplaceholder.typicode.com",
//	  "request_timeout": "10s",
//	  "data_dir": "/home/user/.config/mogligram",
//	  "splash_delay": "1s"
//	}
//
// Note: this package does not read environment variables; use the JSON file
// or flags.
package config

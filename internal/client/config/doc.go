// Package config loads runtime configuration for the Teebay CLI.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config.
//  3. Environment, optionally seeded from a .env file (see parseEnv),
//     selected via -e or -env (default ".env"; a missing file is ignored).
//  4. Command-line flags (see parseFlags).
//
// Supported flags
//
//	-a string   GraphQL endpoint URL
//	-d string   data directory for the local session store
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// Environment variables
//
//	TEEBAY_GRAPHQL_URI, TEEBAY_DATA_DIR, TEEBAY_REQUEST_TIMEOUT ("15s"), TEEBAY_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "graphql_endpoint": "http://localhost:4000/graphql",
//	  "data_dir": ".teebay",
//	  "request_timeout": "15s",
//	  "log_level": "info"
//	}
package config

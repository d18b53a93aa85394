// Package config loads runtime configuration for the Keto365 client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c/--config.
//  3. Command-line flags registered by RegisterFlags; only flags that were
//     set on the command line override earlier values.
//
// Supported flags
//
//	-d, --db string              path to the SQLite database
//	-a, --verifier-addr string   address:port of the identity backend
//	    --verifier-service       health service name of the identity backend
//	    --probe-timeout          identity backend probe timeout
//	    --token-secret           HMAC secret for ID token verification
//	    --token-key-file         PEM RSA public key for ID token verification
//	    --issuer, --audience     expected ID token claims
//	-l, --log-level              debug, info, warn, error
//	    --log-format             text, json
//
// # File schema
//
// Durations use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "database_path": "keto365.db",
//	  "verifier_endpoint": "127.0.0.1:50051",
//	  "probe_timeout": "3s",
//	  "token_secret": "...",
//	  "log_level": "debug"
//	}
//
// The same keys are used in YAML files.
//
// This package does not read environment variables.
package config

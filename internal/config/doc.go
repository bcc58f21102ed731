// Package config loads runtime configuration for the journal.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file and JOURNAL_* environment variables (see parseEnv).
//  3. Optional JSON or YAML file selected via -c or -config (see parseFile).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory (default "App_Data")
//	-f string   backing file name (default "journal-entries.json")
//	-k string   encryption key secret
//	-i string   encryption IV secret
//	-x string   key derivation: truncate | argon2id
//	-m string   IV mode: fixed | random
//	-s string   key source: config | prompt
//	-l string   log level: debug | info | warn | error
//	-o string   log format: text | json
//	-b string   replica bucket (enables the S3 replica)
//	-p string   replica key prefix
//	-g string   replica region
//	-e string   replica endpoint (S3-compatible servers)
//	-u string   replica access key
//	-w string   replica secret key
//
// # File schema
//
// JSON and YAML share the same keys; a file with a .yaml or .yml extension
// is read as YAML:
//
//	{
//	  "data_directory": "App_Data",
//	  "encryption_key": "...",
//	  "encryption_iv": "...",
//	  "iv_mode": "fixed"
//	}
//
// # Default secrets
//
// When no key or IV is configured the hardcoded defaults are used. That keeps
// a first run working but offers no protection: anyone with the source can
// decrypt the file. UsesDefaultSecrets lets the host warn about it.
package config

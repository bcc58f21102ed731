package config

import (
	"os"

	"github.com/joho/godotenv"
)

// envVars maps environment variable names to the fields they set.
func envVars(c *Config) map[string]*string {
	return map[string]*string{
		"JOURNAL_DATA_DIRECTORY":     &c.DataDirectory,
		"JOURNAL_FILE_NAME":          &c.FileName,
		"JOURNAL_ENCRYPTION_KEY":     &c.EncryptionKey,
		"JOURNAL_ENCRYPTION_IV":      &c.EncryptionIV,
		"JOURNAL_KEY_DERIVATION":     &c.KeyDerivation,
		"JOURNAL_IV_MODE":            &c.IVMode,
		"JOURNAL_KEY_SOURCE":         &c.KeySource,
		"JOURNAL_LOG_LEVEL":          &c.LogLevel,
		"JOURNAL_LOG_FORMAT":         &c.LogFormat,
		"JOURNAL_REPLICA_BUCKET":     &c.ReplicaBucket,
		"JOURNAL_REPLICA_PREFIX":     &c.ReplicaPrefix,
		"JOURNAL_REPLICA_REGION":     &c.ReplicaRegion,
		"JOURNAL_REPLICA_ENDPOINT":   &c.ReplicaEndpoint,
		"JOURNAL_REPLICA_ACCESS_KEY": &c.ReplicaAccessKey,
		"JOURNAL_REPLICA_SECRET_KEY": &c.ReplicaSecretKey,
	}
}

// parseEnv loads a .env file into the process environment, without
// overriding variables that are already set, and then copies every non-empty
// JOURNAL_* variable into config. JOURNAL_ENV_FILE points at another file;
// NO_DOTENV=1 skips the file entirely.
func parseEnv(config *Config) {
	loadDotenv()
	applyEnv(config, os.LookupEnv)
}

func loadDotenv() {
	if os.Getenv("NO_DOTENV") == "1" {
		return
	}

	path := ".env"
	if p := os.Getenv("JOURNAL_ENV_FILE"); p != "" {
		path = p
	}

	// a missing file is the common case
	_ = godotenv.Load(path)
}

func applyEnv(config *Config, lookup func(string) (string, bool)) {
	for name, field := range envVars(config) {
		if v, ok := lookup(name); ok && v != "" {
			*field = v
		}
	}
}

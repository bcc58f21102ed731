package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultDataDirectory = "App_Data"
	DefaultFileName      = "journal-entries.json"
	DefaultEncryptionKey = "YourSuperSecretKey123456789012345678"
	DefaultEncryptionIV  = "1234567890123456"
	DefaultReplicaRegion = "us-east-1"
)

const (
	KeySourceConfig = "config"
	KeySourcePrompt = "prompt"

	IVModeFixed  = "fixed"
	IVModeRandom = "random"
)

// Config holds runtime settings for the journal.
//
// Fields:
//   - DataDirectory / FileName: location of the encrypted backing file.
//   - EncryptionKey / EncryptionIV: secrets, fitted to 32 and 16 bytes.
//   - KeyDerivation: "truncate" (default) or "argon2id".
//   - IVMode: "fixed" (default, compatible) or "random" (IV stored per save).
//   - KeySource: "config" or "prompt" (ask on the terminal at startup).
//   - LogLevel / LogFormat: slog handler settings.
//   - Replica*: optional S3-compatible bucket receiving a copy of each save.
type Config struct {
	DataDirectory string
	FileName      string
	EncryptionKey string
	EncryptionIV  string
	KeyDerivation string
	IVMode        string
	KeySource     string
	LogLevel      string
	LogFormat     string

	ReplicaBucket    string
	ReplicaPrefix    string
	ReplicaRegion    string
	ReplicaEndpoint  string
	ReplicaAccessKey string
	ReplicaSecretKey string
}

// LoadDefaults populates Config with first-run defaults.
// NOTE: the default secrets are public; override them for real use.
func (c *Config) LoadDefaults() {
	c.DataDirectory = DefaultDataDirectory
	c.FileName = DefaultFileName
	c.EncryptionKey = DefaultEncryptionKey
	c.EncryptionIV = DefaultEncryptionIV
	c.KeyDerivation = "truncate"
	c.IVMode = IVModeFixed
	c.KeySource = KeySourceConfig
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.ReplicaRegion = DefaultReplicaRegion
}

// FilePath is the backing file location.
func (c *Config) FilePath() string {
	return filepath.Join(c.DataDirectory, c.FileName)
}

// UsesDefaultSecrets reports whether either hardcoded secret is in effect.
func (c *Config) UsesDefaultSecrets() bool {
	if c.KeySource == KeySourcePrompt {
		return c.EncryptionIV == DefaultEncryptionIV
	}
	return c.EncryptionKey == DefaultEncryptionKey || c.EncryptionIV == DefaultEncryptionIV
}

// ReplicaEnabled reports whether a replica bucket is configured.
func (c *Config) ReplicaEnabled() bool {
	return c.ReplicaBucket != ""
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if c.FileName == "" {
		return fmt.Errorf("file name is empty")
	}
	switch c.KeyDerivation {
	case "", "truncate", "argon2id":
	default:
		return fmt.Errorf("unknown key derivation %q", c.KeyDerivation)
	}
	switch c.IVMode {
	case "", IVModeFixed, IVModeRandom:
	default:
		return fmt.Errorf("unknown iv mode %q", c.IVMode)
	}
	switch c.KeySource {
	case "", KeySourceConfig, KeySourcePrompt:
	default:
		return fmt.Errorf("unknown key source %q", c.KeySource)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then the environment,
// then an optional config file and finally command-line flags.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

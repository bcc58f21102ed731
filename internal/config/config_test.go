package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "App_Data", c.DataDirectory)
	assert.Equal(t, "journal-entries.json", c.FileName)
	assert.Equal(t, "YourSuperSecretKey123456789012345678", c.EncryptionKey)
	assert.Equal(t, "1234567890123456", c.EncryptionIV)
	assert.Equal(t, "truncate", c.KeyDerivation)
	assert.Equal(t, IVModeFixed, c.IVMode)
	assert.Equal(t, KeySourceConfig, c.KeySource)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.False(t, c.ReplicaEnabled())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	t.Setenv("NO_DOTENV", "1")

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "App_Data", cfg.DataDirectory)
	assert.Equal(t, "journal-entries.json", cfg.FileName)
}

func TestFilePath(t *testing.T) {
	c := Config{DataDirectory: "data", FileName: "j.json"}
	assert.Equal(t, filepath.Join("data", "j.json"), c.FilePath())
}

func TestUsesDefaultSecrets(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{name: "both defaults", cfg: Config{EncryptionKey: DefaultEncryptionKey, EncryptionIV: DefaultEncryptionIV}, want: true},
		{name: "default key only", cfg: Config{EncryptionKey: DefaultEncryptionKey, EncryptionIV: "other-iv"}, want: true},
		{name: "default iv only", cfg: Config{EncryptionKey: "other-key", EncryptionIV: DefaultEncryptionIV}, want: true},
		{name: "custom", cfg: Config{EncryptionKey: "other-key", EncryptionIV: "other-iv"}, want: false},
		{name: "prompted key ignores configured key", cfg: Config{KeySource: KeySourcePrompt, EncryptionKey: DefaultEncryptionKey, EncryptionIV: "other-iv"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.UsesDefaultSecrets())
		})
	}
}

func TestValidate(t *testing.T) {
	var base Config
	base.LoadDefaults()
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "empty file name", mutate: func(c *Config) { c.FileName = "" }},
		{name: "unknown derivation", mutate: func(c *Config) { c.KeyDerivation = "scrypt" }},
		{name: "unknown iv mode", mutate: func(c *Config) { c.IVMode = "cbc" }},
		{name: "unknown key source", mutate: func(c *Config) { c.KeySource = "vault" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv("NO_DOTENV", "1")
	t.Setenv("JOURNAL_DATA_DIRECTORY", "from-env")
	t.Setenv("JOURNAL_FILE_NAME", "env.json")
	t.Setenv("JOURNAL_LOG_LEVEL", "warn")

	path := writeTempFile(t, "cfg.json", `{"file_name": "file.json", "log_level": "debug"}`)

	cfg := load([]string{"-c", path, "-l", "error"})

	assert.Equal(t, "from-env", cfg.DataDirectory, "env overrides default")
	assert.Equal(t, "file.json", cfg.FileName, "file overrides env")
	assert.Equal(t, "error", cfg.LogLevel, "flag overrides file")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"JOURNAL_DATA_DIRECTORY":     "/var/journal",
		"JOURNAL_ENCRYPTION_KEY":     "k",
		"JOURNAL_IV_MODE":            "random",
		"JOURNAL_REPLICA_BUCKET":     "backups",
		"JOURNAL_REPLICA_SECRET_KEY": "s3cr3t",
		"JOURNAL_LOG_FORMAT":         "",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	var c Config
	c.LoadDefaults()
	applyEnv(&c, lookup)

	assert.Equal(t, "/var/journal", c.DataDirectory)
	assert.Equal(t, "k", c.EncryptionKey)
	assert.Equal(t, "random", c.IVMode)
	assert.Equal(t, "backups", c.ReplicaBucket)
	assert.Equal(t, "s3cr3t", c.ReplicaSecretKey)
	assert.Equal(t, "text", c.LogFormat, "empty variable keeps the current value")
	assert.Equal(t, DefaultFileName, c.FileName)
}

func TestParseEnv_LoadsDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.env")
	require.NoError(t, os.WriteFile(path, []byte("JOURNAL_FILE_NAME=dotenv.json\nJOURNAL_LOG_LEVEL=debug\n"), 0o600))

	t.Setenv("JOURNAL_ENV_FILE", path)
	// already set variables win over the file
	t.Setenv("JOURNAL_LOG_LEVEL", "error")
	t.Cleanup(func() { _ = os.Unsetenv("JOURNAL_FILE_NAME") })

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "dotenv.json", c.FileName)
	assert.Equal(t, "error", c.LogLevel)
}

func TestParseEnv_NoDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.env")
	require.NoError(t, os.WriteFile(path, []byte("JOURNAL_FILE_NAME=skipped.json\n"), 0o600))

	t.Setenv("JOURNAL_ENV_FILE", path)
	t.Setenv("NO_DOTENV", "1")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, DefaultFileName, c.FileName)
}

func TestParseEnv_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("JOURNAL_ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	var c Config
	c.LoadDefaults()

	require.NotPanics(t, func() { parseEnv(&c) })
	assert.Equal(t, DefaultDataDirectory, c.DataDirectory)
}

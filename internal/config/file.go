package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/gophjournal/internal/flagx"
)

// FileConfig is the on-disk shape of a config file. It is only used while
// reading; empty fields leave the current value untouched.
type FileConfig struct {
	DataDirectory string `json:"data_directory" yaml:"data_directory"`
	FileName      string `json:"file_name" yaml:"file_name"`
	EncryptionKey string `json:"encryption_key" yaml:"encryption_key"`
	EncryptionIV  string `json:"encryption_iv" yaml:"encryption_iv"`
	KeyDerivation string `json:"key_derivation" yaml:"key_derivation"`
	IVMode        string `json:"iv_mode" yaml:"iv_mode"`
	KeySource     string `json:"key_source" yaml:"key_source"`
	LogLevel      string `json:"log_level" yaml:"log_level"`
	LogFormat     string `json:"log_format" yaml:"log_format"`

	Replica struct {
		Bucket    string `json:"bucket" yaml:"bucket"`
		Prefix    string `json:"prefix" yaml:"prefix"`
		Region    string `json:"region" yaml:"region"`
		Endpoint  string `json:"endpoint" yaml:"endpoint"`
		AccessKey string `json:"access_key" yaml:"access_key"`
		SecretKey string `json:"secret_key" yaml:"secret_key"`
	} `json:"replica" yaml:"replica"`
}

// parseFile loads the file named by -c / -config, if any, and overlays its
// non-empty values onto config. An unreadable or malformed file panics.
func parseFile(config *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		panic(err)
	}

	overlay(&config.DataDirectory, fc.DataDirectory)
	overlay(&config.FileName, fc.FileName)
	overlay(&config.EncryptionKey, fc.EncryptionKey)
	overlay(&config.EncryptionIV, fc.EncryptionIV)
	overlay(&config.KeyDerivation, fc.KeyDerivation)
	overlay(&config.IVMode, fc.IVMode)
	overlay(&config.KeySource, fc.KeySource)
	overlay(&config.LogLevel, fc.LogLevel)
	overlay(&config.LogFormat, fc.LogFormat)
	overlay(&config.ReplicaBucket, fc.Replica.Bucket)
	overlay(&config.ReplicaPrefix, fc.Replica.Prefix)
	overlay(&config.ReplicaRegion, fc.Replica.Region)
	overlay(&config.ReplicaEndpoint, fc.Replica.Endpoint)
	overlay(&config.ReplicaAccessKey, fc.Replica.AccessKey)
	overlay(&config.ReplicaSecretKey, fc.Replica.SecretKey)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

package config

import (
	"flag"

	"github.com/dmitrijs2005/gophjournal/internal/flagx"
)

var knownFlags = []string{"-d", "-f", "-k", "-i", "-x", "-m", "-s", "-l", "-o", "-b", "-p", "-g", "-e", "-u", "-w"}

// parseFlags populates Config fields from command-line flags. See the package
// documentation for the list. Arguments not in that list are filtered out
// first, so other components can define their own flags.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("journal", flag.ContinueOnError)

	fs.StringVar(&config.DataDirectory, "d", config.DataDirectory, "data directory")
	fs.StringVar(&config.FileName, "f", config.FileName, "backing file name")
	fs.StringVar(&config.EncryptionKey, "k", config.EncryptionKey, "encryption key")
	fs.StringVar(&config.EncryptionIV, "i", config.EncryptionIV, "encryption iv")
	fs.StringVar(&config.KeyDerivation, "x", config.KeyDerivation, "key derivation (truncate|argon2id)")
	fs.StringVar(&config.IVMode, "m", config.IVMode, "iv mode (fixed|random)")
	fs.StringVar(&config.KeySource, "s", config.KeySource, "key source (config|prompt)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "o", config.LogFormat, "log format (text|json)")

	fs.StringVar(&config.ReplicaBucket, "b", config.ReplicaBucket, "replica bucket")
	fs.StringVar(&config.ReplicaPrefix, "p", config.ReplicaPrefix, "replica key prefix")
	fs.StringVar(&config.ReplicaRegion, "g", config.ReplicaRegion, "replica region")
	fs.StringVar(&config.ReplicaEndpoint, "e", config.ReplicaEndpoint, "replica endpoint")
	fs.StringVar(&config.ReplicaAccessKey, "u", config.ReplicaAccessKey, "replica access key")
	fs.StringVar(&config.ReplicaSecretKey, "w", config.ReplicaSecretKey, "replica secret key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/config"
	"github.com/dmitrijs2005/gophjournal/internal/cryptox"
	"github.com/dmitrijs2005/gophjournal/internal/journal"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
	"github.com/dmitrijs2005/gophjournal/internal/models"
	"github.com/dmitrijs2005/gophjournal/internal/store"
)

// journalService is the part of journal.Service the host uses.
type journalService interface {
	AddWithStatus(ctx context.Context, content string) (models.JournalEntry, bool)
	List(ctx context.Context, limit int) []models.JournalEntry
	ListByDate(ctx context.Context, date time.Time) []models.JournalEntry
	Health() journal.Health
}

type App struct {
	config  *config.Config
	service journalService
	logger  logging.Logger
	in      io.Reader
}

// NewApp validates c and builds the full stack behind the REPL. When the key
// source is "prompt" the key is read from the terminal first.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, err
	}

	keySecret := c.EncryptionKey
	if c.KeySource == config.KeySourcePrompt {
		pw, err := GetPassword(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("read key: %w", err)
		}
		if len(pw) == 0 {
			return nil, fmt.Errorf("read key: empty key")
		}
		keySecret = string(pw)
		cryptox.Wipe(pw)
	}

	if c.UsesDefaultSecrets() {
		logger.Warn(ctx, "using the built-in encryption secrets; the journal file is not protected")
	}

	svc, err := buildService(ctx, c, keySecret, logger)
	if err != nil {
		return nil, err
	}

	return &App{config: c, service: svc, logger: logger, in: os.Stdin}, nil
}

func buildService(ctx context.Context, c *config.Config, keySecret string, logger logging.Logger) (*journal.Service, error) {
	key, iv, err := cryptox.KeyMaterial(keySecret, c.EncryptionIV, cryptox.KeyDerivation(c.KeyDerivation))
	if err != nil {
		return nil, err
	}

	var codecOpts []cryptox.Option
	if c.IVMode == config.IVModeRandom {
		codecOpts = append(codecOpts, cryptox.WithRandomIV())
	}

	codec, err := cryptox.NewCodec(key, iv, codecOpts...)
	cryptox.Wipe(key)
	if err != nil {
		return nil, err
	}

	var storeOpts []store.Option
	if c.ReplicaEnabled() {
		replica, err := store.NewS3Replica(ctx, store.S3Options{
			Bucket:    c.ReplicaBucket,
			Prefix:    c.ReplicaPrefix,
			Region:    c.ReplicaRegion,
			Endpoint:  c.ReplicaEndpoint,
			AccessKey: c.ReplicaAccessKey,
			SecretKey: c.ReplicaSecretKey,
		})
		if err != nil {
			return nil, fmt.Errorf("replica: %w", err)
		}
		storeOpts = append(storeOpts, store.WithReplica(replica))
	}

	st := store.New(ctx, c.FilePath(), codec, logger, storeOpts...)

	return journal.New(ctx, st, logger), nil
}

// Run starts the REPL and blocks until the user exits, input ends, or the
// process receives SIGINT or SIGTERM.
func (a *App) Run(ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info(ctx, "journal started", "file", a.config.FilePath())
	a.Root(ctx)
	a.logger.Info(ctx, "journal stopped")
}

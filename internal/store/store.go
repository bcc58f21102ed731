package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/filex"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
	"github.com/dmitrijs2005/gophjournal/internal/models"
)

const fileMode = 0o600

// Codec is the encryption transform applied to the serialized payload.
type Codec interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// Status describes the most recent load and save outcomes.
type Status struct {
	Path string

	LastLoadAt    time.Time
	LastLoadError error
	Loaded        int

	LastSaveAt    time.Time
	LastSaveError error
	Saved         int

	ReplicaError error

	// DirError is set when the data directory could not be created.
	DirError error
}

// Durable reports whether the last save reached the disk. Before the first
// save it reports whether the data directory is usable.
func (s Status) Durable() bool {
	if s.LastSaveAt.IsZero() {
		return s.DirError == nil
	}
	return s.LastSaveError == nil
}

// Store reads and writes the encrypted backing file.
type Store struct {
	path    string
	codec   Codec
	logger  logging.Logger
	replica Replica
	now     func() time.Time

	mu     sync.Mutex
	status Status
}

// Option configures a Store.
type Option func(*Store)

// WithReplica uploads every successfully saved blob to r.
func WithReplica(r Replica) Option {
	return func(s *Store) { s.replica = r }
}

// New returns a Store for the file at path. The parent directory is created
// here; if that fails the error is logged and subsequent saves will fail.
func New(ctx context.Context, path string, codec Codec, logger logging.Logger, opts ...Option) *Store {
	s := &Store{
		path:   path,
		codec:  codec,
		logger: logger.With("module", "store", "path", path),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.status.Path = path

	if _, err := filex.EnsureDir(filepath.Dir(path)); err != nil {
		s.logger.Error(ctx, "create data directory", "error", err)
		s.status.DirError = err
	}

	return s
}

// Status returns a copy of the current status.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Load returns the entries stored in the backing file. It returns an empty
// slice when the file does not exist or cannot be decoded.
func (s *Store) Load(ctx context.Context) []models.JournalEntry {
	entries, err := s.read()

	s.mu.Lock()
	s.status.LastLoadAt = s.now()
	s.status.LastLoadError = err
	s.status.Loaded = len(entries)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error(ctx, "error loading journal entries from file", "error", err)
		return []models.JournalEntry{}
	}

	s.logger.Debug(ctx, "journal loaded", "entries", len(entries))
	return entries
}

// Save overwrites the backing file with entries. It reports whether the
// write succeeded; failures are logged and kept in Status.
func (s *Store) Save(ctx context.Context, entries []models.JournalEntry) bool {
	blob, err := s.write(entries)

	s.mu.Lock()
	s.status.LastSaveAt = s.now()
	s.status.LastSaveError = err
	if err == nil {
		s.status.Saved = len(entries)
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error(ctx, "error saving journal entries to file", "error", err)
		return false
	}

	s.logger.Debug(ctx, "journal saved", "entries", len(entries), "bytes", len(blob))

	if s.replica != nil {
		rerr := s.replica.Put(ctx, filepath.Base(s.path), blob)

		s.mu.Lock()
		s.status.ReplicaError = rerr
		s.mu.Unlock()

		if rerr != nil {
			s.logger.Warn(ctx, "replicate journal", "error", rerr)
		}
	}

	return true
}

func (s *Store) read() ([]models.JournalEntry, error) {
	ciphertext, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.JournalEntry{}, nil
	}
	if err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}

	plaintext, err := s.codec.Decrypt(ciphertext)
	if err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}

	entries, err := decodePayload(plaintext)
	if err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}

	return entries, nil
}

func (s *Store) write(entries []models.JournalEntry) ([]byte, error) {
	plaintext, err := encodePayload(entries)
	if err != nil {
		return nil, &SaveError{Path: s.path, Err: err}
	}

	blob, err := s.codec.Encrypt(plaintext)
	if err != nil {
		return nil, &SaveError{Path: s.path, Err: fmt.Errorf("encrypt: %w", err)}
	}

	if err := filex.WriteFileAtomic(s.path, blob, fileMode); err != nil {
		return nil, &SaveError{Path: s.path, Err: err}
	}

	return blob, nil
}

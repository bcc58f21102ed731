// Package journal is the public face of the journal: add an entry, list
// entries, list the entries of one day.
//
// A Service owns the in-memory index and persists the full working set after
// every Add. Persistence problems never reach the caller: an entry that could
// not be saved is still returned and stays visible until the process exits.
// Health exposes the store status so the host can notice.
package journal

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/index"
	"github.com/dmitrijs2005/gophjournal/internal/logging"
	"github.com/dmitrijs2005/gophjournal/internal/models"
	"github.com/dmitrijs2005/gophjournal/internal/store"
)

// Store is the persistence the service depends on.
type Store interface {
	Load(ctx context.Context) []models.JournalEntry
	Save(ctx context.Context, entries []models.JournalEntry) bool
	Status() store.Status
}

// Health is a point-in-time view of the service.
type Health struct {
	Entries int
	NextID  int
	Store   store.Status
}

// Service is safe for concurrent use.
type Service struct {
	store  Store
	logger logging.Logger
	clock  func() time.Time

	mu    sync.RWMutex
	index *index.Index
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used to stamp new entries.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// New loads the store and seeds the working set from it.
func New(ctx context.Context, st Store, logger logging.Logger, opts ...Option) *Service {
	s := &Service{
		store:  st,
		logger: logger.With("module", "journal"),
		clock:  time.Now,
		index:  index.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	entries := st.Load(ctx)
	if dropped := s.index.Seed(entries); dropped > 0 {
		s.logger.Warn(ctx, "dropped entries with duplicate ids", "dropped", dropped)
	}

	s.logger.Info(ctx, "journal ready", "entries", s.index.Len(), "next_id", s.index.NextID())
	return s
}

// Add creates an entry with the next ID and the current UTC time, then saves
// the whole working set. The entry is returned even if the save failed.
func (s *Service) Add(ctx context.Context, content string) models.JournalEntry {
	e, _ := s.AddWithStatus(ctx, content)
	return e
}

// AddWithStatus is Add that also reports whether the save reached the disk.
// The result belongs to this entry's save, not to a later concurrent one.
func (s *Service) AddWithStatus(ctx context.Context, content string) (models.JournalEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := models.JournalEntry{
		ID:        s.index.AllocateID(),
		Content:   content,
		Timestamp: s.clock().UTC(),
	}
	s.index.Append(e)

	saved := s.store.Save(ctx, s.index.Snapshot())
	if !saved {
		s.logger.Warn(ctx, "entry kept in memory only", "id", e.ID)
	}

	return e, saved
}

// List returns entries newest first. A positive limit keeps only the first
// limit entries; zero or negative means no limit.
func (s *Service) List(ctx context.Context, limit int) []models.JournalEntry {
	s.mu.RLock()
	entries := s.index.Snapshot()
	s.mu.RUnlock()

	sortNewestFirst(entries)

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// ListByDate returns entries whose UTC timestamp falls on the calendar day of
// date, newest first. Only the year, month and day of date are used, read in
// date's own location.
func (s *Service) ListByDate(ctx context.Context, date time.Time) []models.JournalEntry {
	y, m, d := date.Date()

	s.mu.RLock()
	all := s.index.Snapshot()
	s.mu.RUnlock()

	entries := make([]models.JournalEntry, 0)
	for _, e := range all {
		if e.OnDate(y, m, d) {
			entries = append(entries, e)
		}
	}

	sortNewestFirst(entries)
	return entries
}

// Health reports the working set size, the next ID and the store status.
func (s *Service) Health() Health {
	s.mu.RLock()
	h := Health{Entries: s.index.Len(), NextID: s.index.NextID()}
	s.mu.RUnlock()

	h.Store = s.store.Status()
	return h
}

// sortNewestFirst orders by timestamp only; equal timestamps keep insertion order.
func sortNewestFirst(entries []models.JournalEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
}

// Package index holds the in-memory working set of journal entries together
// with the next-ID counter.
//
// An Index is not safe for concurrent use; the journal service guards it.
package index

import "github.com/dmitrijs2005/gophjournal/internal/models"

// Index is the working set plus the counter used to assign entry IDs.
// The counter is always greater than every ID held.
type Index struct {
	entries []models.JournalEntry
	seen    map[int]struct{}
	nextID  int
}

// New returns an empty index whose first allocated ID is 1.
func New() *Index {
	return &Index{seen: make(map[int]struct{}), nextID: 1}
}

// Seed replaces the working set with entries and resets the counter to one
// past the highest ID, or 1 when entries is empty. Entries repeating an ID
// already seen are dropped; the number dropped is returned.
func (i *Index) Seed(entries []models.JournalEntry) int {
	i.entries = make([]models.JournalEntry, 0, len(entries))
	i.seen = make(map[int]struct{}, len(entries))
	i.nextID = 1

	dropped := 0
	for _, e := range entries {
		if _, dup := i.seen[e.ID]; dup {
			dropped++
			continue
		}
		i.add(e)
	}
	return dropped
}

// AllocateID returns the current counter value and advances it.
func (i *Index) AllocateID() int {
	id := i.nextID
	i.nextID++
	return id
}

// Append adds e to the working set. It reports false, leaving the index
// unchanged, when an entry with the same ID is already present.
func (i *Index) Append(e models.JournalEntry) bool {
	if _, dup := i.seen[e.ID]; dup {
		return false
	}
	i.add(e)
	return true
}

func (i *Index) add(e models.JournalEntry) {
	i.entries = append(i.entries, e)
	i.seen[e.ID] = struct{}{}
	if e.ID >= i.nextID {
		i.nextID = e.ID + 1
	}
}

// Snapshot returns a copy of the working set in insertion order.
func (i *Index) Snapshot() []models.JournalEntry {
	out := make([]models.JournalEntry, len(i.entries))
	copy(out, i.entries)
	return out
}

// NextID returns the ID the next AllocateID call will hand out.
func (i *Index) NextID() int {
	return i.nextID
}

// Len returns the number of entries held.
func (i *Index) Len() int {
	return len(i.entries)
}

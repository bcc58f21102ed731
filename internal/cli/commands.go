package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophjournal/internal/models"
)

const dateLayout = "2006-01-02"

var errEmptyEntry = errors.New("nothing to add, usage: add <text>")

func parseLimit(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q", s)
	}
	return n, nil
}

func formatEntry(e models.JournalEntry) string {
	return fmt.Sprintf("#%d  %s  %s", e.ID, e.Timestamp.Format(time.RFC3339), e.Content)
}

func (a *App) printEntries(entries []models.JournalEntry) {
	if len(entries) == 0 {
		printlnFn("No entries")
		return
	}
	for _, e := range entries {
		printlnFn(formatEntry(e))
	}
}

// Add appends text as a new entry and warns when it was not persisted.
func (a *App) Add(ctx context.Context, text string) error {
	if text == "" {
		return errEmptyEntry
	}

	e, saved := a.service.AddWithStatus(ctx, text)
	printlnFn("Added", formatEntry(e))

	if !saved {
		printlnFn("Warning: entry was not saved to disk, see 'status'")
	}
	return nil
}

func (a *App) List(ctx context.Context, limit int) error {
	a.printEntries(a.service.List(ctx, limit))
	return nil
}

// ByDate lists the entries of a calendar day given as YYYY-MM-DD.
func (a *App) ByDate(ctx context.Context, day string) error {
	d, err := time.Parse(dateLayout, day)
	if err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", day)
	}
	a.printEntries(a.service.ListByDate(ctx, d))
	return nil
}

func (a *App) Status(ctx context.Context) error {
	h := a.service.Health()
	st := h.Store

	printlnFn(fmt.Sprintf("file: %s", st.Path))
	printlnFn(fmt.Sprintf("entries: %d, next id: %d", h.Entries, h.NextID))

	if !st.LastLoadAt.IsZero() {
		printlnFn(fmt.Sprintf("last load: %s (%d entries)", st.LastLoadAt.Format(time.RFC3339), st.Loaded))
	}
	if st.LastLoadError != nil {
		printlnFn("load error:", st.LastLoadError)
	}
	if !st.LastSaveAt.IsZero() {
		printlnFn(fmt.Sprintf("last save: %s (%d entries)", st.LastSaveAt.Format(time.RFC3339), st.Saved))
	}
	if st.LastSaveError != nil {
		printlnFn("save error:", st.LastSaveError)
	}
	if st.DirError != nil {
		printlnFn("directory error:", st.DirError)
	}
	if st.ReplicaError != nil {
		printlnFn("replica error:", st.ReplicaError)
	}
	printlnFn("durable:", st.Durable())
	return nil
}

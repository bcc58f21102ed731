// Package models defines the journal entity shared by the store, the index
// and the service.
package models

import "time"

// JournalEntry is a single immutable note.
//
// The JSON field names match the existing on-disk payload, so they are
// spelled out explicitly rather than derived from the Go names.
type JournalEntry struct {
	// ID is assigned in creation order and never reused.
	ID int `json:"Id"`

	// Content is opaque text; empty is allowed.
	Content string `json:"Content"`

	// Timestamp is the creation time in UTC.
	Timestamp time.Time `json:"Timestamp"`
}

// OnDate reports whether the entry's timestamp falls on the calendar day
// year/month/day, read in UTC.
func (e JournalEntry) OnDate(year int, month time.Month, day int) bool {
	y, m, d := e.Timestamp.UTC().Date()
	return y == year && m == month && d == day
}

package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gophjournal/internal/models"
)

func encodePayload(entries []models.JournalEntry) ([]byte, error) {
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal entries: %w", err)
	}
	return b, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func decodePayload(b []byte) ([]models.JournalEntry, error) {
	b = bytes.TrimPrefix(b, utf8BOM)

	var entries []models.JournalEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal entries: %w", err)
	}
	return entries, nil
}

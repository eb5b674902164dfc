package types

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry records one applied mutation.
type JournalEntry struct {
	// EntryID is a UUID v7, generated when the entry is recorded.
	EntryID string `json:"entry_id"`

	// Time is the timestamp of the mutation, in UTC.
	Time time.Time `json:"time"`

	// Op is the operation that was applied. One of: add, remove.
	Op string `json:"op"`

	// Item is the item the mutation touched.
	Item string `json:"item"`

	// Qty is the quantity the mutation carried.
	Qty int64 `json:"qty"`

	// Total is the quantity on hand after the mutation.
	Total int64 `json:"total"`
}

// Journal is an append-only record of applied mutations. It lives only for
// the duration of the run that owns it; nothing persists it.
type Journal struct {
	entries []JournalEntry
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Record appends an entry for an applied mutation and returns it.
func (j *Journal) Record(op, item string, qty, total int64) JournalEntry {
	entry := JournalEntry{
		EntryID: generateEntryID(),
		Time:    time.Now().UTC(),
		Op:      op,
		Item:    item,
		Qty:     qty,
		Total:   total,
	}
	j.entries = append(j.entries, entry)
	return entry
}

// Entries returns a copy of the recorded entries in append order.
func (j *Journal) Entries() []JournalEntry {
	entries := make([]JournalEntry, len(j.entries))
	copy(entries, j.entries)
	return entries
}

// Len returns the number of recorded entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

// generateEntryID generates a new UUID v7 for journal entries.
func generateEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

package domain

import "time"

// JournalEntry is an immutable, balanced group of journal lines recorded
// under one reference. Entries are created once, atomically with their
// lines, and are never updated or deleted: corrections are new entries.
type JournalEntry struct {
	EntryID         string    `json:"entryID"`
	EntityID        string    `json:"entityID"`
	TransactionDate time.Time `json:"transactionDate"` // Date the business event occurred
	PostedAt        time.Time `json:"postedAt"`        // When the engine durably recorded it
	Reference       string    `json:"reference"`       // Free-text correlation id, e.g. "INV-101"
	Description     string    `json:"description"`
	IsLocked        bool      `json:"isLocked"` // Always true once created by this engine
	AuditFields

	// Lines are populated on reads that request them; nil otherwise.
	Lines []JournalLine `json:"lines,omitempty"`
}

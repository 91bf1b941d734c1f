package models

import "time"

// JournalEntry maps to the journal_entries table. Rows are insert-only.
type JournalEntry struct {
	EntryID         string
	EntityID        string
	TransactionDate time.Time
	PostedAt        time.Time
	Reference       string
	Description     string
	IsLocked        bool
	AuditFields
}

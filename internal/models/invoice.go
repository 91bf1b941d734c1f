package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostingStatus mirrors domain.PostingStatus for persistence.
type PostingStatus string

// Invoice maps to the invoices table. journal_entry_id carries a UNIQUE
// index so at most one ledger entry can ever be linked to an invoice.
type Invoice struct {
	InvoiceID      string
	OrganizationID string
	Number         string
	PropertyID     string
	UnitID         string
	LeaseID        string
	TenantID       string
	Amount         decimal.Decimal
	IssueDate      time.Time
	DueDate        time.Time
	PostingStatus  PostingStatus
	JournalEntryID string
	AuditFields
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostingStatus tracks whether a source document has been turned into a
// journal entry. POSTING is a transient claim held while an orchestrator is
// writing to the ledger, so two concurrent attempts cannot both succeed.
type PostingStatus string

const (
	PostingPending    PostingStatus = "PENDING"
	PostingInProgress PostingStatus = "POSTING"
	Posted            PostingStatus = "POSTED"
)

// Invoice is a source document external to the ledger. The posting engine
// only cares about its amount, its reporting dimensions, and its posting
// status; everything else belongs to the billing subsystem.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"`
	OrganizationID string          `json:"organizationID"`
	Number         string          `json:"number"` // e.g. "INV-101"
	PropertyID     string          `json:"propertyID"`
	UnitID         string          `json:"unitID"`
	LeaseID        string          `json:"leaseID"`
	TenantID       string          `json:"tenantID"`
	Amount         decimal.Decimal `json:"amount"`
	IssueDate      time.Time       `json:"issueDate"` // Transaction date for the receivable entry
	DueDate        time.Time       `json:"dueDate"`
	PostingStatus  PostingStatus   `json:"postingStatus"`
	JournalEntryID string          `json:"journalEntryID"` // Set once POSTED
	AuditFields
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment maps to the payments table.
type Payment struct {
	PaymentID      string
	OrganizationID string
	InvoiceID      string
	Number         string
	Method         string
	Amount         decimal.Decimal
	ReceivedDate   time.Time
	PostingStatus  PostingStatus
	JournalEntryID string
	Reversed       bool
	AuditFields
}

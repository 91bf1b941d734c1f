package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a payment was received. Only cash payments
// support the administrative reversal flow.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "CASH"
	MethodCheck    PaymentMethod = "CHECK"
	MethodTransfer PaymentMethod = "TRANSFER"
)

// Payment is a source document recording money received against an invoice.
type Payment struct {
	PaymentID      string          `json:"paymentID"`
	OrganizationID string          `json:"organizationID"`
	InvoiceID      string          `json:"invoiceID"`
	Number         string          `json:"number"` // e.g. "PMT-55"
	Method         PaymentMethod   `json:"method"`
	Amount         decimal.Decimal `json:"amount"`
	ReceivedDate   time.Time       `json:"receivedDate"`
	PostingStatus  PostingStatus   `json:"postingStatus"`
	JournalEntryID string          `json:"journalEntryID"` // Set once POSTED
	Reversed       bool            `json:"reversed"`
	AuditFields
}

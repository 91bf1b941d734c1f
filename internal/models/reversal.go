package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentReversal maps to the payment_reversals table.
type PaymentReversal struct {
	ReversalID string
	PaymentID  string
	InvoiceID  string
	Amount     decimal.Decimal
	Reason     string
	ReversedBy string
	ReversedAt time.Time
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentReversal is the audit record of a payment being walked back.
//
// Creating one flags the payment as reversed but does NOT create a
// compensating journal entry: ledger balances are left as posted, pending
// manual GL correction. That gap is deliberate and documented, not an
// oversight to patch here.
type PaymentReversal struct {
	ReversalID string          `json:"reversalID"`
	PaymentID  string          `json:"paymentID"`
	InvoiceID  string          `json:"invoiceID"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	ReversedBy string          `json:"reversedBy"`
	ReversedAt time.Time       `json:"reversedAt"`
}

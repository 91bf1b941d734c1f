package dto

import (
	"time"

	"github.com/propfolio/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostDocumentResponse defines the data returned after posting a source
// document (invoice or payment) to the general ledger.
type PostDocumentResponse struct {
	DocumentID     string               `json:"documentID"`
	JournalEntryID string               `json:"journalEntryID"`
	PostingStatus  domain.PostingStatus `json:"postingStatus"`
	Entry          JournalEntryResponse `json:"entry"`
}

// ReversePaymentRequest defines the data needed to reverse a payment.
type ReversePaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ReversalResponse defines the data returned for a payment reversal record.
type ReversalResponse struct {
	ReversalID string          `json:"reversalID"`
	PaymentID  string          `json:"paymentID"`
	InvoiceID  string          `json:"invoiceID"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	ReversedBy string          `json:"reversedBy"`
	ReversedAt time.Time       `json:"reversedAt"`
}

// ToPostDocumentResponse converts a posted document's identifiers and entry.
func ToPostDocumentResponse(documentID string, entry *domain.JournalEntry) PostDocumentResponse {
	return PostDocumentResponse{
		DocumentID:     documentID,
		JournalEntryID: entry.EntryID,
		PostingStatus:  domain.Posted,
		Entry:          ToJournalEntryResponse(entry),
	}
}

// ToReversalResponse converts a domain.PaymentReversal to ReversalResponse DTO.
func ToReversalResponse(rev *domain.PaymentReversal) ReversalResponse {
	return ReversalResponse{
		ReversalID: rev.ReversalID,
		PaymentID:  rev.PaymentID,
		InvoiceID:  rev.InvoiceID,
		Amount:     rev.Amount,
		Reason:     rev.Reason,
		ReversedBy: rev.ReversedBy,
		ReversedAt: rev.ReversedAt,
	}
}

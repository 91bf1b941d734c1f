package services

import (
	"context"

	"github.com/propfolio/ledger_backend/internal/core/domain"
	"github.com/propfolio/ledger_backend/internal/dto"
)

// ReversalSvcFacade defines the administrative payment reversal flow.
//
// Reversing flags the payment and writes an audit record only. No
// compensating journal entry is created; ledger balances remain as
// posted until corrected manually.
type ReversalSvcFacade interface {
	// ReversePayment reverses a posted cash payment. Returns
	// apperrors.ErrNotReversible for non-cash methods or unposted payments and
	// apperrors.ErrAlreadyReversed when the payment was reversed before.
	ReversePayment(ctx context.Context, paymentID string, req dto.ReversePaymentRequest, actorID string) (*domain.PaymentReversal, error)
}

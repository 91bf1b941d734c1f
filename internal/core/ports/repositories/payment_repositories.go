package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/propfolio/ledger_backend/internal/core/domain"
)

// PaymentReader defines read operations for payment documents
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
}

// PaymentWriter defines write operations for payment documents
type PaymentWriter interface {
	// SavePayment persists a new payment in PENDING posting status.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// ClaimForPosting atomically flips posting status PENDING -> POSTING.
	// Returns false when the document was not in PENDING.
	ClaimForPosting(ctx context.Context, paymentID string) (bool, error)

	// MarkPosted records the journal entry backing the payment and flips
	// posting status to POSTED.
	MarkPosted(ctx context.Context, paymentID string, journalEntryID string, updatedBy string, now time.Time) error

	// ReleaseClaim returns a claimed payment to PENDING after a failed posting attempt.
	ReleaseClaim(ctx context.Context, paymentID string) error
}

// ReversalSupport defines operations backing the payment reversal flow.
// The read-lock and the two writes run inside one caller-managed transaction.
type ReversalSupport interface {
	// FindPaymentByIDForUpdate selects a payment and locks its row within a transaction.
	FindPaymentByIDForUpdate(ctx context.Context, tx pgx.Tx, paymentID string) (*domain.Payment, error)

	// MarkReversedInTx flags the payment as reversed within a transaction.
	MarkReversedInTx(ctx context.Context, tx pgx.Tx, paymentID string, reversedBy string, now time.Time) error

	// SaveReversalInTx persists the reversal audit record within a transaction.
	SaveReversalInTx(ctx context.Context, tx pgx.Tx, reversal domain.PaymentReversal) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
	ReversalSupport
	TransactionManager
}

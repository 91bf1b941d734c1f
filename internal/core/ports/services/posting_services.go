package services

import (
	"context"

	"github.com/propfolio/ledger_backend/internal/core/domain"
)

// PostingSvcFacade defines the orchestrators that turn source documents into
// journal entries. Both operations are guarded against concurrent double
// posting: of N simultaneous attempts for one document, exactly one creates
// an entry and the rest fail with apperrors.ErrAlreadyPosted.
type PostingSvcFacade interface {
	// PostInvoiceToGL records an issued invoice as a receivable:
	// debit Accounts Receivable, credit Rental Income.
	PostInvoiceToGL(ctx context.Context, invoiceID string, actorID string) (*domain.JournalEntry, error)

	// PostPaymentToGL records a received payment as cash collected:
	// debit Cash, credit Accounts Receivable.
	PostPaymentToGL(ctx context.Context, paymentID string, actorID string) (*domain.JournalEntry, error)
}

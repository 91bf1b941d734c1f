package repositories

import (
	"context"
	"time"

	"github.com/propfolio/ledger_backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoice documents
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice documents
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice in PENDING posting status.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// ClaimForPosting atomically flips posting status PENDING -> POSTING.
	// Returns false when the document was not in PENDING, meaning another
	// attempt already holds the claim or the document is already posted.
	ClaimForPosting(ctx context.Context, invoiceID string) (bool, error)

	// MarkPosted records the journal entry backing the invoice and flips
	// posting status to POSTED.
	MarkPosted(ctx context.Context, invoiceID string, journalEntryID string, updatedBy string, now time.Time) error

	// ReleaseClaim returns a claimed invoice to PENDING after a failed posting attempt.
	ReleaseClaim(ctx context.Context, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

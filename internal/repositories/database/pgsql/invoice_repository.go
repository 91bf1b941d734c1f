package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/propfolio/ledger_backend/internal/apperrors"
	"github.com/propfolio/ledger_backend/internal/core/domain"
	portsrepo "github.com/propfolio/ledger_backend/internal/core/ports/repositories"
	"github.com/propfolio/ledger_backend/internal/models"
	"github.com/propfolio/ledger_backend/internal/utils/mapping"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice documents.
func newPgxInvoiceRepository(pool PgxPool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, organization_id, number, property_id, unit_id, lease_id, tenant_id, amount, issue_date, due_date, posting_status, journal_entry_id, created_at, created_by, last_updated_at, last_updated_by`

// SaveInvoice inserts a new invoice in PENDING posting status.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID,
		m.OrganizationID,
		m.Number,
		nullable(m.PropertyID),
		nullable(m.UnitID),
		nullable(m.LeaseID),
		nullable(m.TenantID),
		m.Amount,
		m.IssueDate,
		m.DueDate,
		m.PostingStatus,
		nullable(m.JournalEntryID),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice %s already exists", apperrors.ErrDuplicate, m.InvoiceID)
		}
		return fmt.Errorf("failed to save invoice %s: %w", m.InvoiceID, err)
	}
	return nil
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	var m models.Invoice
	var propertyID, unitID, leaseID, tenantID, journalEntryID sql.NullString
	err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.OrganizationID,
		&m.Number,
		&propertyID,
		&unitID,
		&leaseID,
		&tenantID,
		&m.Amount,
		&m.IssueDate,
		&m.DueDate,
		&m.PostingStatus,
		&journalEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}

	m.PropertyID = propertyID.String
	m.UnitID = unitID.String
	m.LeaseID = leaseID.String
	m.TenantID = tenantID.String
	m.JournalEntryID = journalEntryID.String

	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// ClaimForPosting atomically flips posting status PENDING -> POSTING. The
// compare-and-swap in the WHERE clause is what makes concurrent posting
// attempts mutually exclusive: only one UPDATE can match the PENDING row.
func (r *PgxInvoiceRepository) ClaimForPosting(ctx context.Context, invoiceID string) (bool, error) {
	query := `
		UPDATE invoices
		SET posting_status = $1
		WHERE invoice_id = $2 AND posting_status = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, models.PostingStatus(domain.PostingInProgress), invoiceID, models.PostingStatus(domain.PostingPending))
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to claim invoice "+invoiceID+" for posting", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkPosted links the invoice to its journal entry and flips status to POSTED.
func (r *PgxInvoiceRepository) MarkPosted(ctx context.Context, invoiceID string, journalEntryID string, updatedBy string, now time.Time) error {
	query := `
		UPDATE invoices
		SET posting_status = $1, journal_entry_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE invoice_id = $5 AND posting_status = $6;
	`
	tag, err := r.Pool.Exec(ctx, query,
		models.PostingStatus(domain.Posted),
		journalEntryID,
		now,
		updatedBy,
		invoiceID,
		models.PostingStatus(domain.PostingInProgress),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice %s", apperrors.ErrAlreadyPosted, invoiceID)
		}
		return apperrors.NewAppError(500, "failed to mark invoice "+invoiceID+" posted", err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("%w: invoice %s not in POSTING state", apperrors.ErrConflict, invoiceID)
	}
	return nil
}

// ReleaseClaim returns a claimed invoice to PENDING after a failed attempt.
func (r *PgxInvoiceRepository) ReleaseClaim(ctx context.Context, invoiceID string) error {
	query := `
		UPDATE invoices
		SET posting_status = $1
		WHERE invoice_id = $2 AND posting_status = $3;
	`
	_, err := r.Pool.Exec(ctx, query, models.PostingStatus(domain.PostingPending), invoiceID, models.PostingStatus(domain.PostingInProgress))
	if err != nil {
		return apperrors.NewAppError(500, "failed to release posting claim on invoice "+invoiceID, err)
	}
	return nil
}

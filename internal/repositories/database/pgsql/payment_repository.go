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

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment documents.
func newPgxPaymentRepository(pool PgxPool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, organization_id, invoice_id, number, method, amount, received_date, posting_status, journal_entry_id, reversed, created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var m models.Payment
	var journalEntryID sql.NullString
	err := row.Scan(
		&m.PaymentID,
		&m.OrganizationID,
		&m.InvoiceID,
		&m.Number,
		&m.Method,
		&m.Amount,
		&m.ReceivedDate,
		&m.PostingStatus,
		&journalEntryID,
		&m.Reversed,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.JournalEntryID = journalEntryID.String
	return &m, nil
}

// SavePayment inserts a new payment in PENDING posting status.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.OrganizationID,
		m.InvoiceID,
		m.Number,
		m.Method,
		m.Amount,
		m.ReceivedDate,
		m.PostingStatus,
		nullable(m.JournalEntryID),
		m.Reversed,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payment %s already exists", apperrors.ErrDuplicate, m.PaymentID)
		}
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+paymentID, err)
	}

	payment := mapping.ToDomainPayment(*m)
	return &payment, nil
}

// ClaimForPosting atomically flips posting status PENDING -> POSTING. Only
// one of N concurrent attempts can match the PENDING row.
func (r *PgxPaymentRepository) ClaimForPosting(ctx context.Context, paymentID string) (bool, error) {
	query := `
		UPDATE payments
		SET posting_status = $1
		WHERE payment_id = $2 AND posting_status = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, models.PostingStatus(domain.PostingInProgress), paymentID, models.PostingStatus(domain.PostingPending))
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to claim payment "+paymentID+" for posting", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkPosted links the payment to its journal entry and flips status to POSTED.
func (r *PgxPaymentRepository) MarkPosted(ctx context.Context, paymentID string, journalEntryID string, updatedBy string, now time.Time) error {
	query := `
		UPDATE payments
		SET posting_status = $1, journal_entry_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE payment_id = $5 AND posting_status = $6;
	`
	tag, err := r.Pool.Exec(ctx, query,
		models.PostingStatus(domain.Posted),
		journalEntryID,
		now,
		updatedBy,
		paymentID,
		models.PostingStatus(domain.PostingInProgress),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payment %s", apperrors.ErrAlreadyPosted, paymentID)
		}
		return apperrors.NewAppError(500, "failed to mark payment "+paymentID+" posted", err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("%w: payment %s not in POSTING state", apperrors.ErrConflict, paymentID)
	}
	return nil
}

// ReleaseClaim returns a claimed payment to PENDING after a failed attempt.
func (r *PgxPaymentRepository) ReleaseClaim(ctx context.Context, paymentID string) error {
	query := `
		UPDATE payments
		SET posting_status = $1
		WHERE payment_id = $2 AND posting_status = $3;
	`
	_, err := r.Pool.Exec(ctx, query, models.PostingStatus(domain.PostingPending), paymentID, models.PostingStatus(domain.PostingInProgress))
	if err != nil {
		return apperrors.NewAppError(500, "failed to release posting claim on payment "+paymentID, err)
	}
	return nil
}

// FindPaymentByIDForUpdate selects a payment and locks its row within a transaction.
func (r *PgxPaymentRepository) FindPaymentByIDForUpdate(ctx context.Context, tx pgx.Tx, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1 FOR UPDATE;`

	m, err := scanPayment(tx.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock payment "+paymentID+" for update", err)
	}

	payment := mapping.ToDomainPayment(*m)
	return &payment, nil
}

// MarkReversedInTx flags the payment as reversed within a transaction.
func (r *PgxPaymentRepository) MarkReversedInTx(ctx context.Context, tx pgx.Tx, paymentID string, reversedBy string, now time.Time) error {
	query := `
		UPDATE payments
		SET reversed = TRUE, last_updated_at = $1, last_updated_by = $2
		WHERE payment_id = $3 AND reversed = FALSE;
	`
	tag, err := tx.Exec(ctx, query, now, reversedBy, paymentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark payment "+paymentID+" reversed", err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("%w: payment %s", apperrors.ErrAlreadyReversed, paymentID)
	}
	return nil
}

// SaveReversalInTx persists the reversal audit record within a transaction.
func (r *PgxPaymentRepository) SaveReversalInTx(ctx context.Context, tx pgx.Tx, reversal domain.PaymentReversal) error {
	m := mapping.ToModelReversal(reversal)
	query := `
		INSERT INTO payment_reversals (reversal_id, payment_id, invoice_id, amount, reason, reversed_by, reversed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		m.ReversalID,
		m.PaymentID,
		nullable(m.InvoiceID),
		m.Amount,
		m.Reason,
		m.ReversedBy,
		m.ReversedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payment %s", apperrors.ErrAlreadyReversed, m.PaymentID)
		}
		return apperrors.NewAppError(500, "failed to save reversal for payment "+m.PaymentID, err)
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/propfolio/ledger_backend/internal/apperrors"
	"github.com/propfolio/ledger_backend/internal/core/domain"
	portsrepo "github.com/propfolio/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/propfolio/ledger_backend/internal/core/ports/services"
	"github.com/propfolio/ledger_backend/internal/dto"
)

// postingService turns source documents into journal entries. Each document
// is claimed (PENDING -> POSTING) before any ledger write; the claim is the
// concurrency guard, and a failed attempt releases it so the document can be
// retried.
type postingService struct {
	BaseService
	journalSvc  portssvc.JournalWriterSvc
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPostingService creates a new PostingService.
func NewPostingService(journalSvc portssvc.JournalWriterSvc, invoiceRepo portsrepo.InvoiceRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.PostingSvcFacade {
	return &postingService{
		journalSvc:  journalSvc,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// PostInvoiceToGL records an issued invoice as a receivable:
// debit Accounts Receivable, credit Rental Income.
func (s *postingService) PostInvoiceToGL(ctx context.Context, invoiceID string, actorID string) (*domain.JournalEntry, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.PostingStatus == domain.Posted {
		return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrAlreadyPosted, invoiceID)
	}

	claimed, err := s.invoiceRepo.ClaimForPosting(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrAlreadyPosted, invoiceID)
	}

	req := dto.PostEntryRequest{
		OrganizationID:  invoice.OrganizationID,
		TransactionDate: invoice.IssueDate,
		Reference:       invoice.Number,
		Description:     "Invoice " + invoice.Number + " issued",
		Lines: []dto.CreateLineRequest{
			{
				AccountCode: domain.CodeAccountsReceivable,
				Description: "Receivable for invoice " + invoice.Number,
				Debit:       invoice.Amount,
				PropertyID:  invoice.PropertyID,
				UnitID:      invoice.UnitID,
				LeaseID:     invoice.LeaseID,
				TenantID:    invoice.TenantID,
			},
			{
				AccountCode: domain.CodeRentalIncome,
				Description: "Income for invoice " + invoice.Number,
				Credit:      invoice.Amount,
				PropertyID:  invoice.PropertyID,
				UnitID:      invoice.UnitID,
				LeaseID:     invoice.LeaseID,
				TenantID:    invoice.TenantID,
			},
		},
	}

	entry, err := s.journalSvc.PostEntry(ctx, req, actorID)
	if err != nil {
		s.releaseInvoiceClaim(ctx, invoiceID)
		return nil, err
	}

	if err := s.invoiceRepo.MarkPosted(ctx, invoiceID, entry.EntryID, actorID, time.Now()); err != nil {
		// The entry exists but the back-link failed. Surface the error; the
		// claim stays held so the document cannot be posted twice.
		s.LogError(ctx, err, "failed to link invoice to journal entry",
			slog.String("invoice_id", invoiceID),
			slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "invoice posted to general ledger",
		slog.String("invoice_id", invoiceID),
		slog.String("entry_id", entry.EntryID))
	return entry, nil
}

// PostPaymentToGL records a received payment as cash collected:
// debit Cash, credit Accounts Receivable.
func (s *postingService) PostPaymentToGL(ctx context.Context, paymentID string, actorID string) (*domain.JournalEntry, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.PostingStatus == domain.Posted {
		return nil, fmt.Errorf("%w: payment %s", apperrors.ErrAlreadyPosted, paymentID)
	}

	claimed, err := s.paymentRepo.ClaimForPosting(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, fmt.Errorf("%w: payment %s", apperrors.ErrAlreadyPosted, paymentID)
	}

	// Dimensions ride along from the paid invoice when one is linked.
	var propertyID, unitID, leaseID, tenantID string
	if payment.InvoiceID != "" {
		invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, payment.InvoiceID)
		if err == nil {
			propertyID = invoice.PropertyID
			unitID = invoice.UnitID
			leaseID = invoice.LeaseID
			tenantID = invoice.TenantID
		}
	}

	req := dto.PostEntryRequest{
		OrganizationID:  payment.OrganizationID,
		TransactionDate: payment.ReceivedDate,
		Reference:       payment.Number,
		Description:     "Payment " + payment.Number + " received",
		Lines: []dto.CreateLineRequest{
			{
				AccountCode: domain.CodeCash,
				Description: "Cash received for payment " + payment.Number,
				Debit:       payment.Amount,
				PropertyID:  propertyID,
				UnitID:      unitID,
				LeaseID:     leaseID,
				TenantID:    tenantID,
			},
			{
				AccountCode: domain.CodeAccountsReceivable,
				Description: "Receivable settled by payment " + payment.Number,
				Credit:      payment.Amount,
				PropertyID:  propertyID,
				UnitID:      unitID,
				LeaseID:     leaseID,
				TenantID:    tenantID,
			},
		},
	}

	entry, err := s.journalSvc.PostEntry(ctx, req, actorID)
	if err != nil {
		s.releasePaymentClaim(ctx, paymentID)
		return nil, err
	}

	if err := s.paymentRepo.MarkPosted(ctx, paymentID, entry.EntryID, actorID, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to link payment to journal entry",
			slog.String("payment_id", paymentID),
			slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "payment posted to general ledger",
		slog.String("payment_id", paymentID),
		slog.String("entry_id", entry.EntryID))
	return entry, nil
}

func (s *postingService) releaseInvoiceClaim(ctx context.Context, invoiceID string) {
	if err := s.invoiceRepo.ReleaseClaim(ctx, invoiceID); err != nil {
		s.LogError(ctx, err, "failed to release invoice posting claim", slog.String("invoice_id", invoiceID))
	}
}

func (s *postingService) releasePaymentClaim(ctx context.Context, paymentID string) {
	if err := s.paymentRepo.ReleaseClaim(ctx, paymentID); err != nil {
		s.LogError(ctx, err, "failed to release payment posting claim", slog.String("payment_id", paymentID))
	}
}

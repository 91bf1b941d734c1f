package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/propfolio/ledger_backend/internal/apperrors"
	"github.com/propfolio/ledger_backend/internal/core/domain"
	portsrepo "github.com/propfolio/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/propfolio/ledger_backend/internal/core/ports/services"
	"github.com/propfolio/ledger_backend/internal/dto"
)

// reversalService records administrative payment reversals. The payment row
// is locked, flagged and audited in one database transaction.
//
// No compensating journal entry is written. The ledger keeps the original
// cash entry until a manual correction is posted; the reversal record exists
// so that correction can be traced back here.
type reversalService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewReversalService creates a new ReversalService.
func NewReversalService(paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.ReversalSvcFacade {
	return &reversalService{paymentRepo: paymentRepo}
}

var _ portssvc.ReversalSvcFacade = (*reversalService)(nil)

// ReversePayment reverses a posted cash payment.
func (s *reversalService) ReversePayment(ctx context.Context, paymentID string, req dto.ReversePaymentRequest, actorID string) (*domain.PaymentReversal, error) {
	tx, err := s.paymentRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = s.paymentRepo.Rollback(ctx, tx)
	}()

	payment, err := s.paymentRepo.FindPaymentByIDForUpdate(ctx, tx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Reversed {
		return nil, fmt.Errorf("%w: payment %s", apperrors.ErrAlreadyReversed, paymentID)
	}
	if payment.Method != domain.MethodCash {
		return nil, fmt.Errorf("%w: payment %s uses method %s", apperrors.ErrNotReversible, paymentID, payment.Method)
	}
	if payment.PostingStatus != domain.Posted {
		return nil, fmt.Errorf("%w: payment %s is not posted", apperrors.ErrNotReversible, paymentID)
	}

	now := time.Now()
	if err := s.paymentRepo.MarkReversedInTx(ctx, tx, paymentID, actorID, now); err != nil {
		return nil, err
	}

	reversal := domain.PaymentReversal{
		ReversalID: uuid.NewString(),
		PaymentID:  paymentID,
		InvoiceID:  payment.InvoiceID,
		Amount:     payment.Amount,
		Reason:     req.Reason,
		ReversedBy: actorID,
		ReversedAt: now,
	}
	if err := s.paymentRepo.SaveReversalInTx(ctx, tx, reversal); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "payment reversed without ledger correction",
		slog.String("payment_id", paymentID),
		slog.String("reversal_id", reversal.ReversalID),
		slog.String("amount", payment.Amount.String()))
	return &reversal, nil
}

package services

import (
	"context"

	portsrepo "github.com/propfolio/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/propfolio/ledger_backend/internal/core/ports/services"
	"github.com/propfolio/ledger_backend/internal/dto"
	"github.com/propfolio/ledger_backend/internal/utils/accounting"
)

// ledgerService answers balance questions by aggregating journal lines.
// Nothing here writes; balances are derived on every read.
type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, accountRepo portsrepo.AccountRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// EntityLedger aggregates per-account activity across the entity's entries
// and derives each signed balance from the account's type.
func (s *ledgerService) EntityLedger(ctx context.Context, entityID string, entryIDs []string) (*dto.EntityLedgerResponse, error) {
	rows, err := s.ledgerRepo.GetEntityLedger(ctx, entityID, entryIDs)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		balance, err := accounting.SignedBalance(rows[i].AccountType, rows[i].Debit, rows[i].Credit)
		if err != nil {
			return nil, err
		}
		rows[i].Balance = balance
	}

	return dto.ToEntityLedgerResponse(entityID, rows), nil
}

// AccountBalance returns one account's totals and signed balance, addressed
// by code within the entity's chart.
func (s *ledgerService) AccountBalance(ctx context.Context, entityID string, accountCode string, entryIDs []string) (*dto.AccountBalanceResponse, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, entityID, accountCode)
	if err != nil {
		return nil, err
	}

	debit, credit, err := s.ledgerRepo.GetAccountTotals(ctx, account.AccountID, entryIDs)
	if err != nil {
		return nil, err
	}

	balance, err := accounting.SignedBalance(account.AccountType, debit, credit)
	if err != nil {
		return nil, err
	}

	return &dto.AccountBalanceResponse{
		AccountID:   account.AccountID,
		AccountCode: account.Code,
		AccountType: account.AccountType,
		Debit:       debit,
		Credit:      credit,
		Balance:     balance,
	}, nil
}

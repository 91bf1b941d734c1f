package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/propfolio/ledger_backend/internal/apperrors"
	"github.com/propfolio/ledger_backend/internal/core/domain"
	portssvc "github.com/propfolio/ledger_backend/internal/core/ports/services"
	"github.com/propfolio/ledger_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo  *MockLedgerRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.LedgerSvcFacade
	ctx             context.Context

	entityID string
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.mockAccountRepo = new(MockAccountRepository)
	s.service = services.NewLedgerService(s.mockLedgerRepo, s.mockAccountRepo)
	s.ctx = context.Background()

	s.entityID = uuid.NewString()
}

// Activity for the fixture: invoices of 1000.00 and 123.45 posted as
// receivables, then 623.45 collected in payments. Aggregated per account:
//
//	Cash            debit  623.45
//	Receivable      debit 1123.45  credit 623.45
//	Rental Income                  credit 1123.45
func (s *LedgerServiceTestSuite) fixtureRows() []domain.LedgerRow {
	return []domain.LedgerRow{
		{
			AccountID:   uuid.NewString(),
			AccountCode: domain.CodeCash,
			AccountName: "Cash",
			AccountType: domain.Asset,
			Debit:       decimal.RequireFromString("623.45"),
			Credit:      decimal.Zero,
		},
		{
			AccountID:   uuid.NewString(),
			AccountCode: domain.CodeAccountsReceivable,
			AccountName: "Accounts Receivable",
			AccountType: domain.Asset,
			Debit:       decimal.RequireFromString("1123.45"),
			Credit:      decimal.RequireFromString("623.45"),
		},
		{
			AccountID:   uuid.NewString(),
			AccountCode: domain.CodeRentalIncome,
			AccountName: "Rental Income",
			AccountType: domain.Income,
			Debit:       decimal.Zero,
			Credit:      decimal.RequireFromString("1123.45"),
		},
	}
}

func (s *LedgerServiceTestSuite) TestEntityLedger_SignedBalancesAndTotals() {
	s.mockLedgerRepo.On("GetEntityLedger", s.ctx, s.entityID, []string(nil)).
		Return(s.fixtureRows(), nil).Once()

	resp, err := s.service.EntityLedger(s.ctx, s.entityID, nil)

	s.Require().NoError(err)
	s.Equal(s.entityID, resp.EntityID)
	s.Require().Len(resp.Rows, 3)

	// Asset balances are debit minus credit, income the other way around.
	s.True(resp.Rows[0].Balance.Equal(decimal.RequireFromString("623.45")), "cash balance, got %s", resp.Rows[0].Balance)
	s.True(resp.Rows[1].Balance.Equal(decimal.RequireFromString("500.00")), "receivable balance, got %s", resp.Rows[1].Balance)
	s.True(resp.Rows[2].Balance.Equal(decimal.RequireFromString("1123.45")), "income balance, got %s", resp.Rows[2].Balance)

	// A ledger built only from balanced entries reconciles.
	s.True(resp.DebitTotal.Equal(resp.CreditTotal),
		"ledger out of balance: debits %s, credits %s", resp.DebitTotal, resp.CreditTotal)
	s.True(resp.DebitTotal.Equal(decimal.RequireFromString("1746.90")))

	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestEntityLedger_RestrictedToEntries() {
	entryIDs := []string{uuid.NewString(), uuid.NewString()}
	s.mockLedgerRepo.On("GetEntityLedger", s.ctx, s.entityID, entryIDs).
		Return(s.fixtureRows()[:1], nil).Once()

	resp, err := s.service.EntityLedger(s.ctx, s.entityID, entryIDs)

	s.Require().NoError(err)
	s.Require().Len(resp.Rows, 1)
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestEntityLedger_EmptyBook() {
	s.mockLedgerRepo.On("GetEntityLedger", s.ctx, s.entityID, []string(nil)).
		Return([]domain.LedgerRow{}, nil).Once()

	resp, err := s.service.EntityLedger(s.ctx, s.entityID, nil)

	s.Require().NoError(err)
	s.Empty(resp.Rows)
	s.True(resp.DebitTotal.IsZero())
	s.True(resp.CreditTotal.IsZero())
}

func (s *LedgerServiceTestSuite) TestAccountBalance_DebitPositiveAsset() {
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		EntityID:    s.entityID,
		Code:        domain.CodeCash,
		AccountType: domain.Asset,
	}
	s.mockAccountRepo.On("FindAccountByCode", s.ctx, s.entityID, domain.CodeCash).Return(account, nil).Once()
	s.mockLedgerRepo.On("GetAccountTotals", s.ctx, account.AccountID, []string(nil)).
		Return(decimal.RequireFromString("900.00"), decimal.RequireFromString("250.00"), nil).Once()

	resp, err := s.service.AccountBalance(s.ctx, s.entityID, domain.CodeCash, nil)

	s.Require().NoError(err)
	s.Equal(domain.CodeCash, resp.AccountCode)
	s.True(resp.Balance.Equal(decimal.RequireFromString("650.00")))
}

func (s *LedgerServiceTestSuite) TestAccountBalance_CreditPositiveLiability() {
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		EntityID:    s.entityID,
		Code:        domain.CodeSecurityDepositsHeld,
		AccountType: domain.Liability,
	}
	s.mockAccountRepo.On("FindAccountByCode", s.ctx, s.entityID, domain.CodeSecurityDepositsHeld).Return(account, nil).Once()
	s.mockLedgerRepo.On("GetAccountTotals", s.ctx, account.AccountID, []string(nil)).
		Return(decimal.RequireFromString("100.00"), decimal.RequireFromString("700.00"), nil).Once()

	resp, err := s.service.AccountBalance(s.ctx, s.entityID, domain.CodeSecurityDepositsHeld, nil)

	s.Require().NoError(err)
	s.True(resp.Balance.Equal(decimal.RequireFromString("600.00")))
}

func (s *LedgerServiceTestSuite) TestAccountBalance_UnknownCode() {
	s.mockAccountRepo.On("FindAccountByCode", s.ctx, s.entityID, "9999").
		Return(nil, apperrors.ErrAccountNotFound).Once()

	_, err := s.service.AccountBalance(s.ctx, s.entityID, "9999", nil)

	s.Require().ErrorIs(err, apperrors.ErrAccountNotFound)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "GetAccountTotals", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

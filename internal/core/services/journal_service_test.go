package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/propfolio/ledger_backend/internal/apperrors"
	"github.com/propfolio/ledger_backend/internal/core/domain"
	portssvc "github.com/propfolio/ledger_backend/internal/core/ports/services"
	"github.com/propfolio/ledger_backend/internal/core/services"
	"github.com/propfolio/ledger_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockChartSvc    *MockChartService
	service         portssvc.JournalSvcFacade
	ctx             context.Context

	organizationID string
	entity         *domain.FinancialEntity
	cashAccount    domain.Account
	incomeAccount  domain.Account
	creatorID      string
}

func (s *JournalServiceTestSuite) SetupTest() {
	s.mockJournalRepo = new(MockJournalRepository)
	s.mockChartSvc = new(MockChartService)
	s.service = services.NewJournalService(s.mockJournalRepo, s.mockChartSvc)
	s.ctx = context.Background()

	s.organizationID = uuid.NewString()
	s.entity = &domain.FinancialEntity{
		EntityID:       uuid.NewString(),
		OrganizationID: s.organizationID,
		Name:           "Maple Street Holdings",
	}
	s.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		EntityID:    s.entity.EntityID,
		Code:        domain.CodeCash,
		Name:        "Cash",
		AccountType: domain.Asset,
	}
	s.incomeAccount = domain.Account{
		AccountID:   uuid.NewString(),
		EntityID:    s.entity.EntityID,
		Code:        domain.CodeRentalIncome,
		Name:        "Rental Income",
		AccountType: domain.Income,
	}
	s.creatorID = uuid.NewString()
}

func (s *JournalServiceTestSuite) balancedRequest(amount string) dto.PostEntryRequest {
	amt := decimal.RequireFromString(amount)
	return dto.PostEntryRequest{
		OrganizationID:  s.organizationID,
		TransactionDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Reference:       "INV-101",
		Description:     "March rent",
		Lines: []dto.CreateLineRequest{
			{AccountCode: domain.CodeCash, Description: "Cash in", Debit: amt},
			{AccountCode: domain.CodeRentalIncome, Description: "Rent earned", Credit: amt},
		},
	}
}

func (s *JournalServiceTestSuite) expectChartResolution() {
	s.mockChartSvc.On("FindEntityForOrganization", s.ctx, s.organizationID).Return(s.entity, nil).Once()
	s.mockChartSvc.On("ResolveAccountCodes", s.ctx, s.entity.EntityID, []string{domain.CodeCash, domain.CodeRentalIncome}).
		Return(map[string]domain.Account{
			domain.CodeCash:         s.cashAccount,
			domain.CodeRentalIncome: s.incomeAccount,
		}, nil).Once()
}

func (s *JournalServiceTestSuite) TestPostEntry_Success() {
	req := s.balancedRequest("1200.00")
	s.expectChartResolution()

	var savedEntry domain.JournalEntry
	var savedLines []domain.JournalLine
	s.mockJournalRepo.On("SaveEntry", s.ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).
		Run(func(args mock.Arguments) {
			savedEntry = args.Get(1).(domain.JournalEntry)
			savedLines = args.Get(2).([]domain.JournalLine)
		}).Return(nil).Once()

	entry, err := s.service.PostEntry(s.ctx, req, s.creatorID)

	s.Require().NoError(err)
	s.Require().NotNil(entry)
	s.Equal(s.entity.EntityID, savedEntry.EntityID)
	s.True(savedEntry.IsLocked, "posted entries must be immutable")
	s.Equal(s.creatorID, savedEntry.CreatedBy)
	s.Require().Len(savedLines, 2)
	s.Equal(s.cashAccount.AccountID, savedLines[0].AccountID)
	s.Equal(s.incomeAccount.AccountID, savedLines[1].AccountID)
	s.True(savedLines[0].Debit.Equal(decimal.RequireFromString("1200.00")))
	s.True(savedLines[1].Credit.Equal(decimal.RequireFromString("1200.00")))

	// The returned entry carries resolved accounts for response shaping.
	s.Require().Len(entry.Lines, 2)
	s.Require().NotNil(entry.Lines[0].Account)
	s.Equal(domain.CodeCash, entry.Lines[0].Account.Code)
	s.Require().NotNil(entry.Lines[1].Account)
	s.Equal(domain.CodeRentalIncome, entry.Lines[1].Account.Code)

	s.mockChartSvc.AssertExpectations(s.T())
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestPostEntry_UnbalancedFailsBeforeAnyLookup() {
	req := s.balancedRequest("100.00")
	req.Lines[1].Credit = decimal.RequireFromString("90.00")

	entry, err := s.service.PostEntry(s.ctx, req, s.creatorID)

	s.Require().Error(err)
	s.Nil(entry)
	var unbalanced *apperrors.UnbalancedError
	s.Require().ErrorAs(err, &unbalanced)
	s.True(unbalanced.DebitTotal.Equal(decimal.RequireFromString("100.00")))
	s.True(unbalanced.CreditTotal.Equal(decimal.RequireFromString("90.00")))

	// Balance is checked on the raw request; no chart or repo interaction.
	s.mockChartSvc.AssertNotCalled(s.T(), "FindEntityForOrganization", mock.Anything, mock.Anything)
	s.mockJournalRepo.AssertNotCalled(s.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestPostEntry_RejectsSingleLine() {
	req := s.balancedRequest("50.00")
	req.Lines = req.Lines[:1]

	_, err := s.service.PostEntry(s.ctx, req, s.creatorID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockJournalRepo.AssertNotCalled(s.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestPostEntry_RejectsLineWithBothSidesSet() {
	req := s.balancedRequest("50.00")
	req.Lines[0].Credit = decimal.RequireFromString("50.00")

	_, err := s.service.PostEntry(s.ctx, req, s.creatorID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *JournalServiceTestSuite) TestPostEntry_RejectsNegativeAmount() {
	req := s.balancedRequest("50.00")
	req.Lines[0].Debit = decimal.RequireFromString("-50.00")

	_, err := s.service.PostEntry(s.ctx, req, s.creatorID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *JournalServiceTestSuite) TestPostEntry_ZeroTotalsStillBalance() {
	// Two zero-amount lines balance (0 == 0) but fail line validation first:
	// a line must set exactly one nonzero side.
	req := s.balancedRequest("0")
	req.Lines[0].Debit = decimal.Zero
	req.Lines[1].Credit = decimal.Zero

	_, err := s.service.PostEntry(s.ctx, req, s.creatorID)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *JournalServiceTestSuite) TestPostEntry_UnknownAccountCode() {
	req := s.balancedRequest("75.00")
	req.Lines[1].AccountCode = "9999"

	s.mockChartSvc.On("FindEntityForOrganization", s.ctx, s.organizationID).Return(s.entity, nil).Once()
	s.mockChartSvc.On("ResolveAccountCodes", s.ctx, s.entity.EntityID, []string{domain.CodeCash, "9999"}).
		Return(nil, apperrors.ErrAccountNotFound).Once()

	_, err := s.service.PostEntry(s.ctx, req, s.creatorID)

	s.Require().ErrorIs(err, apperrors.ErrAccountNotFound)
	s.mockJournalRepo.AssertNotCalled(s.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
	s.mockChartSvc.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestPostEntry_OrganizationWithoutEntity() {
	req := s.balancedRequest("75.00")

	s.mockChartSvc.On("FindEntityForOrganization", s.ctx, s.organizationID).
		Return(nil, apperrors.ErrNoFinancialEntity).Once()

	_, err := s.service.PostEntry(s.ctx, req, s.creatorID)

	s.Require().ErrorIs(err, apperrors.ErrNoFinancialEntity)
	s.mockJournalRepo.AssertNotCalled(s.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestPostEntry_DeduplicatesAccountCodes() {
	amt := decimal.RequireFromString("60.00")
	req := dto.PostEntryRequest{
		OrganizationID:  s.organizationID,
		TransactionDate: time.Now(),
		Lines: []dto.CreateLineRequest{
			{AccountCode: domain.CodeCash, Debit: decimal.RequireFromString("40.00")},
			{AccountCode: domain.CodeCash, Debit: decimal.RequireFromString("20.00")},
			{AccountCode: domain.CodeRentalIncome, Credit: amt},
		},
	}

	s.mockChartSvc.On("FindEntityForOrganization", s.ctx, s.organizationID).Return(s.entity, nil).Once()
	// Cash appears on two lines but must be resolved once.
	s.mockChartSvc.On("ResolveAccountCodes", s.ctx, s.entity.EntityID, []string{domain.CodeCash, domain.CodeRentalIncome}).
		Return(map[string]domain.Account{
			domain.CodeCash:         s.cashAccount,
			domain.CodeRentalIncome: s.incomeAccount,
		}, nil).Once()
	s.mockJournalRepo.On("SaveEntry", s.ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).
		Return(nil).Once()

	entry, err := s.service.PostEntry(s.ctx, req, s.creatorID)

	s.Require().NoError(err)
	s.Require().Len(entry.Lines, 3)
	s.mockChartSvc.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestListEntries_AttachesLines() {
	entryID := uuid.NewString()
	entries := []domain.JournalEntry{{EntryID: entryID, EntityID: s.entity.EntityID}}
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: s.cashAccount.AccountID, Debit: decimal.NewFromInt(10)},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: s.incomeAccount.AccountID, Credit: decimal.NewFromInt(10)},
	}

	s.mockChartSvc.On("FindEntityForOrganization", s.ctx, s.organizationID).Return(s.entity, nil).Once()
	s.mockJournalRepo.On("ListEntriesByEntity", s.ctx, s.entity.EntityID, 20, (*string)(nil)).
		Return(entries, nil, nil).Once()
	s.mockJournalRepo.On("FindLinesByEntryIDs", s.ctx, []string{entryID}).
		Return(map[string][]domain.JournalLine{entryID: lines}, nil).Once()

	resp, err := s.service.ListEntries(s.ctx, dto.ListEntriesParams{OrganizationID: s.organizationID, Limit: 20})

	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 1)
	s.Len(resp.Entries[0].Lines, 2)
	s.Nil(resp.NextToken)
	s.mockJournalRepo.AssertExpectations(s.T())
}

func (s *JournalServiceTestSuite) TestListEntries_ByEntryIDDropsForeignEntries() {
	ownID := uuid.NewString()
	foreignID := uuid.NewString()
	own := &domain.JournalEntry{EntryID: ownID, EntityID: s.entity.EntityID}
	foreign := &domain.JournalEntry{EntryID: foreignID, EntityID: uuid.NewString()}

	s.mockChartSvc.On("FindEntityForOrganization", s.ctx, s.organizationID).Return(s.entity, nil).Once()
	s.mockJournalRepo.On("FindEntryByID", s.ctx, ownID).Return(own, nil).Once()
	s.mockJournalRepo.On("FindEntryByID", s.ctx, foreignID).Return(foreign, nil).Once()

	resp, err := s.service.ListEntries(s.ctx, dto.ListEntriesParams{
		OrganizationID: s.organizationID,
		EntryIDs:       []string{ownID, foreignID},
	})

	s.Require().NoError(err)
	s.Require().Len(resp.Entries, 1)
	s.Equal(ownID, resp.Entries[0].EntryID)
	s.mockJournalRepo.AssertNotCalled(s.T(), "ListEntriesByEntity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *JournalServiceTestSuite) TestGetEntryByID_NotFound() {
	entryID := uuid.NewString()
	s.mockJournalRepo.On("FindEntryByID", s.ctx, entryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetEntryByID(s.ctx, entryID)

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

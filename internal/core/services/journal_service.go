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
	"github.com/propfolio/ledger_backend/internal/utils/accounting"
)

// journalService is the posting engine. It owns the balance invariant: an
// entry is recorded only when its debit and credit totals are exactly equal.
type journalService struct {
	BaseService
	chartSvc    portssvc.ChartSvcFacade
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, chartSvc portssvc.ChartSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		chartSvc:    chartSvc,
		journalRepo: journalRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateLines checks structural validity of the requested lines: at least
// two, non-negative amounts, and exactly one nonzero side per line.
func (s *journalService) validateLines(lines []dto.CreateLineRequest) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: journal entry must have at least two lines", apperrors.ErrValidation)
	}
	for i, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrValidation, i)
		}
		debitSet := line.Debit.IsPositive()
		creditSet := line.Credit.IsPositive()
		if debitSet == creditSet {
			return fmt.Errorf("%w: line %d must set exactly one of debit or credit", apperrors.ErrValidation, i)
		}
	}
	return nil
}

// PostEntry validates, balances and durably records a journal entry.
//
// The balance check runs on the raw request, before any entity or account
// lookup: an unbalanced request is a caller defect and must fail identically
// regardless of chart state.
func (s *journalService) PostEntry(ctx context.Context, req dto.PostEntryRequest, creatorID string) (*domain.JournalEntry, error) {
	if err := s.validateLines(req.Lines); err != nil {
		return nil, err
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i] = domain.JournalLine{
			Description: lineReq.Description,
			Debit:       lineReq.Debit,
			Credit:      lineReq.Credit,
			PropertyID:  lineReq.PropertyID,
			UnitID:      lineReq.UnitID,
			LeaseID:     lineReq.LeaseID,
			TenantID:    lineReq.TenantID,
		}
	}
	debitTotal, creditTotal := accounting.SumLines(lines)
	if !debitTotal.Equal(creditTotal) {
		return nil, apperrors.NewUnbalancedError(debitTotal, creditTotal)
	}

	entity, err := s.chartSvc.FindEntityForOrganization(ctx, req.OrganizationID)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(req.Lines))
	seen := make(map[string]bool, len(req.Lines))
	for _, line := range req.Lines {
		if !seen[line.AccountCode] {
			seen[line.AccountCode] = true
			codes = append(codes, line.AccountCode)
		}
	}
	accounts, err := s.chartSvc.ResolveAccountCodes(ctx, entity.EntityID, codes)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		EntityID:        entity.EntityID,
		TransactionDate: req.TransactionDate,
		PostedAt:        now,
		Reference:       req.Reference,
		Description:     req.Description,
		IsLocked:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	for i := range lines {
		account := accounts[req.Lines[i].AccountCode]
		lines[i].LineID = uuid.NewString()
		lines[i].EntryID = entry.EntryID
		lines[i].AccountID = account.AccountID
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		s.LogError(ctx, err, "failed to save journal entry",
			slog.String("entity_id", entity.EntityID),
			slog.String("reference", req.Reference))
		return nil, err
	}

	s.LogInfo(ctx, "journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("entity_id", entity.EntityID),
		slog.String("amount", debitTotal.String()))

	for i := range lines {
		account := accounts[req.Lines[i].AccountCode]
		lines[i].Account = &account
	}
	entry.Lines = lines
	return &entry, nil
}

// GetEntryByID retrieves an entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return s.journalRepo.FindEntryByID(ctx, entryID)
}

// ListEntries retrieves a page of an organization's journal entries, lines included.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	entity, err := s.chartSvc.FindEntityForOrganization(ctx, params.OrganizationID)
	if err != nil {
		return nil, err
	}

	// An explicit entry-id set bypasses pagination. Entries belonging to
	// another entity are dropped rather than leaked across organizations.
	if len(params.EntryIDs) > 0 {
		entries := make([]domain.JournalEntry, 0, len(params.EntryIDs))
		for _, entryID := range params.EntryIDs {
			entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
			if err != nil {
				return nil, err
			}
			if entry.EntityID != entity.EntityID {
				continue
			}
			entries = append(entries, *entry)
		}
		return dto.ToListEntriesResponse(entries, nil), nil
	}

	entries, nextToken, err := s.journalRepo.ListEntriesByEntity(ctx, entity.EntityID, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	if len(entries) > 0 {
		entryIDs := make([]string, len(entries))
		for i, entry := range entries {
			entryIDs[i] = entry.EntryID
		}
		grouped, err := s.journalRepo.FindLinesByEntryIDs(ctx, entryIDs)
		if err != nil {
			return nil, err
		}
		for i := range entries {
			entries[i].Lines = grouped[entries[i].EntryID]
		}
	}

	return dto.ToListEntriesResponse(entries, nextToken), nil
}

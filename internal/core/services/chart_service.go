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

// defaultChart is the standard property-management chart seeded for every
// financial entity. Codes are stable across the platform; posting
// orchestrators address accounts through them.
var defaultChart = []struct {
	Code        string
	Name        string
	AccountType domain.AccountType
}{
	{domain.CodeCash, "Cash", domain.Asset},
	{domain.CodeAccountsReceivable, "Accounts Receivable", domain.Asset},
	{domain.CodeSecurityDepositsHeld, "Security Deposits Held", domain.Liability},
	{domain.CodeOwnerEquity, "Owner Equity", domain.Equity},
	{domain.CodeRentalIncome, "Rental Income", domain.Income},
	{domain.CodeLateFeeIncome, "Late Fee Income", domain.Income},
	{domain.CodeMaintenanceExpense, "Maintenance Expense", domain.Expense},
}

// chartService resolves organizations to their book of record and manages
// the chart of accounts beneath it.
type chartService struct {
	BaseService
	entityRepo  portsrepo.EntityRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewChartService creates a new ChartService.
func NewChartService(entityRepo portsrepo.EntityRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.ChartSvcFacade {
	return &chartService{
		entityRepo:  entityRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.ChartSvcFacade = (*chartService)(nil)

// FindEntityForOrganization resolves the organization's single financial entity.
func (s *chartService) FindEntityForOrganization(ctx context.Context, organizationID string) (*domain.FinancialEntity, error) {
	entity, err := s.entityRepo.FindEntityByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// ResolveAccountCodes resolves account codes against the entity's chart. Every
// requested code must exist; the first missing code fails the whole resolution.
func (s *chartService) ResolveAccountCodes(ctx context.Context, entityID string, codes []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, entityID, codes)
	if err != nil {
		return nil, err
	}
	for _, code := range codes {
		if _, ok := accounts[code]; !ok {
			return nil, fmt.Errorf("%w: code %s in entity %s", apperrors.ErrAccountNotFound, code, entityID)
		}
	}
	return accounts, nil
}

// ListAccounts retrieves the entity's full chart, ordered by code.
func (s *chartService) ListAccounts(ctx context.Context, entityID string) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, entityID)
}

// CreateEntity opens an organization's book of record and seeds the default
// chart beneath it. The UNIQUE constraint on organization_id keeps the
// one-entity-per-organization invariant.
func (s *chartService) CreateEntity(ctx context.Context, req dto.CreateEntityRequest, creatorID string) (*domain.FinancialEntity, error) {
	now := time.Now()
	entity := domain.FinancialEntity{
		EntityID:       uuid.NewString(),
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.entityRepo.SaveEntity(ctx, entity); err != nil {
		return nil, err
	}

	if err := s.SeedDefaultChart(ctx, entity.EntityID, creatorID); err != nil {
		s.LogError(ctx, err, "failed to seed default chart for new entity",
			slog.String("entity_id", entity.EntityID))
		return nil, err
	}

	s.LogInfo(ctx, "financial entity created",
		slog.String("entity_id", entity.EntityID),
		slog.String("organization_id", req.OrganizationID))
	return &entity, nil
}

// EnsureAccount creates the account if absent, otherwise returns the stored
// one untouched. Safe to call repeatedly and from concurrent setup flows.
func (s *chartService) EnsureAccount(ctx context.Context, entityID string, req dto.EnsureAccountRequest, creatorID string) (*domain.Account, error) {
	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		EntityID:    entityID,
		Code:        req.Code,
		Name:        req.Name,
		AccountType: req.AccountType,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	stored, err := s.accountRepo.UpsertAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "failed to ensure account", slog.String("entity_id", entityID), slog.String("code", req.Code))
		return nil, err
	}

	if stored.AccountID == account.AccountID {
		s.LogInfo(ctx, "account created", slog.String("entity_id", entityID), slog.String("code", req.Code))
	}
	return stored, nil
}

// SeedDefaultChart ensures every account of the standard chart exists for the
// entity. Idempotent; existing accounts are left untouched.
func (s *chartService) SeedDefaultChart(ctx context.Context, entityID string, creatorID string) error {
	now := time.Now()
	for _, seed := range defaultChart {
		account := domain.Account{
			AccountID:   uuid.NewString(),
			EntityID:    entityID,
			Code:        seed.Code,
			Name:        seed.Name,
			AccountType: seed.AccountType,
			IsSystem:    true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorID,
			},
		}
		if _, err := s.accountRepo.UpsertAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to seed account %s for entity %s: %w", seed.Code, entityID, err)
		}
	}
	s.LogDebug(ctx, "default chart ensured", slog.String("entity_id", entityID))
	return nil
}

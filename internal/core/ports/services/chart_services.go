package services

import (
	"context"

	"github.com/propfolio/ledger_backend/internal/core/domain"
	"github.com/propfolio/ledger_backend/internal/dto"
)

// ChartReaderSvc defines read operations over an entity's chart of accounts
type ChartReaderSvc interface {
	// FindEntityForOrganization resolves the single financial entity owned by an
	// organization. Returns apperrors.ErrNoFinancialEntity when none exists.
	FindEntityForOrganization(ctx context.Context, organizationID string) (*domain.FinancialEntity, error)

	// ResolveAccountCodes resolves account codes against an entity's chart, keyed by code.
	// Returns apperrors.ErrAccountNotFound naming the first missing code.
	ResolveAccountCodes(ctx context.Context, entityID string, codes []string) (map[string]domain.Account, error)

	// ListAccounts retrieves the entity's full chart, ordered by code.
	ListAccounts(ctx context.Context, entityID string) ([]domain.Account, error)
}

// ChartWriterSvc defines write operations over an entity's chart of accounts
type ChartWriterSvc interface {
	// CreateEntity opens an organization's book of record and seeds the
	// default chart beneath it. Returns apperrors.ErrDuplicate when the
	// organization already has an entity.
	CreateEntity(ctx context.Context, req dto.CreateEntityRequest, creatorID string) (*domain.FinancialEntity, error)

	// EnsureAccount creates the account if its code is not yet present in the
	// entity's chart, otherwise returns the existing account unchanged.
	EnsureAccount(ctx context.Context, entityID string, req dto.EnsureAccountRequest, creatorID string) (*domain.Account, error)

	// SeedDefaultChart ensures the platform's standard property-management
	// chart exists for the entity. Idempotent.
	SeedDefaultChart(ctx context.Context, entityID string, creatorID string) error
}

// ChartSvcFacade combines all chart-related service interfaces
type ChartSvcFacade interface {
	ChartReaderSvc
	ChartWriterSvc
}

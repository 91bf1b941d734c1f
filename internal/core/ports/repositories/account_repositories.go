package repositories

import (
	"context"

	"github.com/propfolio/ledger_backend/internal/core/domain"
)

// AccountReader defines read operations for chart of accounts data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its human-readable code within an entity's chart.
	FindAccountByCode(ctx context.Context, entityID string, code string) (*domain.Account, error)

	// FindAccountsByCodes retrieves multiple accounts by code within one entity's chart,
	// keyed by code. Codes absent from the chart are simply missing from the map.
	FindAccountsByCodes(ctx context.Context, entityID string, codes []string) (map[string]domain.Account, error)

	// ListAccounts retrieves all accounts in an entity's chart, ordered by code.
	ListAccounts(ctx context.Context, entityID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart of accounts data
type AccountWriter interface {
	// UpsertAccount persists an account, returning the stored row. When an account with
	// the same (entityID, code) already exists it is returned unchanged, making chart
	// setup idempotent.
	UpsertAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

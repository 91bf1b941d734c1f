package repositories

import (
	"context"

	"github.com/propfolio/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepository defines operations for aggregated ledger data
type LedgerRepository interface {
	// GetEntityLedger retrieves per-account debit and credit totals across an entity's
	// journal lines, one row per account that has activity, ordered by account code.
	// When entryIDs is non-empty the aggregation is restricted to those entries.
	GetEntityLedger(ctx context.Context, entityID string, entryIDs []string) ([]domain.LedgerRow, error)

	// GetAccountTotals retrieves the debit and credit totals of a single account,
	// optionally restricted to a set of entries. Both totals are zero when the
	// account has no activity.
	GetAccountTotals(ctx context.Context, accountID string, entryIDs []string) (debit decimal.Decimal, credit decimal.Decimal, err error)
}

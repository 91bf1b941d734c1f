package services

import (
	"context"

	"github.com/propfolio/ledger_backend/internal/dto"
)

// LedgerSvcFacade defines read-side aggregation over posted journal lines.
// Balances are always derived from lines; no running balance is stored.
type LedgerSvcFacade interface {
	// EntityLedger aggregates per-account debit/credit totals and signed
	// balances across an entity's entries. A non-empty entryIDs slice
	// restricts the aggregation to those entries.
	EntityLedger(ctx context.Context, entityID string, entryIDs []string) (*dto.EntityLedgerResponse, error)

	// AccountBalance returns one account's totals and signed balance, addressed
	// by code within the entity's chart. Returns apperrors.ErrAccountNotFound
	// for a code absent from the chart.
	AccountBalance(ctx context.Context, entityID string, accountCode string, entryIDs []string) (*dto.AccountBalanceResponse, error)
}

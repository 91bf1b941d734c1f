package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/propfolio/ledger_backend/internal/apperrors"
	"github.com/propfolio/ledger_backend/internal/core/domain"
	portsrepo "github.com/propfolio/ledger_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for aggregated ledger reads.
func newPgxLedgerRepository(pool PgxPool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// GetEntityLedger aggregates per-account debit and credit totals across an
// entity's journal lines. Balances are computed by the service layer, which
// owns the sign convention.
func (r *PgxLedgerRepository) GetEntityLedger(ctx context.Context, entityID string, entryIDs []string) ([]domain.LedgerRow, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.account_type,
		       COALESCE(SUM(l.debit), 0) AS debit_total,
		       COALESCE(SUM(l.credit), 0) AS credit_total
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE e.entity_id = $1
	`
	args := []interface{}{entityID}
	if len(entryIDs) > 0 {
		query += ` AND l.entry_id = ANY($2)`
		args = append(args, entryIDs)
	}
	query += `
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entity ledger for "+entityID, err)
	}
	defer rows.Close()

	ledger := []domain.LedgerRow{}
	for rows.Next() {
		var row domain.LedgerRow
		err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&row.AccountType,
			&row.Debit,
			&row.Credit,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger row for entity "+entityID, err)
		}
		ledger = append(ledger, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger rows for entity "+entityID, err)
	}

	return ledger, nil
}

// GetAccountTotals retrieves the debit and credit totals of one account,
// optionally restricted to a set of entries. An account without activity
// yields two zeros, not an error.
func (r *PgxLedgerRepository) GetAccountTotals(ctx context.Context, accountID string, entryIDs []string) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
		FROM journal_lines
		WHERE account_id = $1
	`
	args := []interface{}{accountID}
	if len(entryIDs) > 0 {
		query += ` AND entry_id = ANY($2)`
		args = append(args, entryIDs)
	}
	query += `;`

	var debit, credit decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, args...).Scan(&debit, &credit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, decimal.Zero, nil
		}
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to query totals for account "+accountID, err)
	}
	return debit, credit, nil
}

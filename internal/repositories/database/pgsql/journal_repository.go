package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/propfolio/ledger_backend/internal/apperrors"
	"github.com/propfolio/ledger_backend/internal/core/domain"
	portsrepo "github.com/propfolio/ledger_backend/internal/core/ports/repositories"
	"github.com/propfolio/ledger_backend/internal/models"
	"github.com/propfolio/ledger_backend/internal/utils/mapping"
	"github.com/propfolio/ledger_backend/internal/utils/pagination"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry and line data.
func newPgxJournalRepository(pool PgxPool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const entryColumns = `entry_id, entity_id, transaction_date, posted_at, reference, description, is_locked, created_at, created_by, last_updated_at, last_updated_by`

// nullable converts the empty string to a NULL parameter for the optional
// dimension columns.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// SaveEntry persists a journal entry and all of its lines atomically. The
// header insert and the batched line inserts share one database transaction,
// so a failure anywhere leaves no trace of the entry.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	modelEntry := mapping.ToModelEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.EntityID,
		modelEntry.TransactionDate,
		modelEntry.PostedAt,
		modelEntry.Reference,
		modelEntry.Description,
		modelEntry.IsLocked,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: journal entry %s already exists", apperrors.ErrDuplicate, modelEntry.EntryID)
		}
		return apperrors.NewAppError(500, "failed to insert journal entry "+modelEntry.EntryID, err)
	}

	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, account_id, description, debit, credit, property_id, unit_id, lease_id, tenant_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		modelLine := mapping.ToModelLine(line)
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.AccountID,
			modelLine.Description,
			modelLine.Debit,
			modelLine.Credit,
			nullable(modelLine.PropertyID),
			nullable(modelLine.UnitID),
			nullable(modelLine.LeaseID),
			nullable(modelLine.TenantID),
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line batch for entry "+modelEntry.EntryID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit entry "+modelEntry.EntryID, err)
	}

	return nil
}

// FindEntryByID retrieves a journal entry with its lines attached.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID,
		&m.EntityID,
		&m.TransactionDate,
		&m.PostedAt,
		&m.Reference,
		&m.Description,
		&m.IsLocked,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+entryID, err)
	}

	entry := mapping.ToDomainEntry(m)
	entry.Lines, err = r.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines of one entry with account details joined.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT l.line_id, l.entry_id, l.account_id, l.description, l.debit, l.credit,
		       l.property_id, l.unit_id, l.lease_id, l.tenant_id,
		       a.code, a.name, a.account_type
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		WHERE l.entry_id = $1
		ORDER BY l.line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		line, err := scanJoinedLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}

	return lines, nil
}

// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
func (r *PgxJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.JournalLine{}, nil
	}

	query := `
		SELECT l.line_id, l.entry_id, l.account_id, l.description, l.debit, l.credit,
		       l.property_id, l.unit_id, l.lease_id, l.tenant_id,
		       a.code, a.name, a.account_type
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		WHERE l.entry_id = ANY($1)
		ORDER BY l.entry_id, l.line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entries", err)
	}
	defer rows.Close()

	grouped := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		line, err := scanJoinedLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan grouped line row", err)
		}
		grouped[line.EntryID] = append(grouped[line.EntryID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating grouped line rows", err)
	}

	return grouped, nil
}

func scanJoinedLine(rows pgx.Rows) (domain.JournalLine, error) {
	var m models.JournalLine
	var propertyID, unitID, leaseID, tenantID sql.NullString
	var acc models.Account

	err := rows.Scan(
		&m.LineID,
		&m.EntryID,
		&m.AccountID,
		&m.Description,
		&m.Debit,
		&m.Credit,
		&propertyID,
		&unitID,
		&leaseID,
		&tenantID,
		&acc.Code,
		&acc.Name,
		&acc.AccountType,
	)
	if err != nil {
		return domain.JournalLine{}, err
	}

	m.PropertyID = propertyID.String
	m.UnitID = unitID.String
	m.LeaseID = leaseID.String
	m.TenantID = tenantID.String

	line := mapping.ToDomainLine(m)
	line.Account = &domain.Account{
		AccountID:   m.AccountID,
		Code:        acc.Code,
		Name:        acc.Name,
		AccountType: domain.AccountType(acc.AccountType),
	}
	return line, nil
}

// ListEntriesByEntity retrieves a paginated list of entries for an entity using
// token-based pagination, newest transaction date first.
func (r *PgxJournalRepository) ListEntriesByEntity(ctx context.Context, entityID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to learn whether another page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entity_id = $1`
	orderByClause := `ORDER BY transaction_date DESC, created_at DESC`

	args := []interface{}{entityID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastTxnDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (transaction_date, created_at) < ($2, $3)`
		args = append(args, lastTxnDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list journal entries for entity "+entityID, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		var m models.JournalEntry
		err := rows.Scan(
			&m.EntryID,
			&m.EntityID,
			&m.TransactionDate,
			&m.PostedAt,
			&m.Reference,
			&m.Description,
			&m.IsLocked,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal entry row for entity "+entityID, err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal entry rows for entity "+entityID, err)
	}

	var nextTokenVal *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextTokenVal = &token
		entries = entries[:limit]
	}

	result := make([]domain.JournalEntry, len(entries))
	for i, m := range entries {
		result[i] = mapping.ToDomainEntry(m)
	}
	return result, nextTokenVal, nil
}

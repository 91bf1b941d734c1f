package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/propfolio/ledger_backend/internal/apperrors"
	"github.com/propfolio/ledger_backend/internal/core/domain"
	"github.com/propfolio/ledger_backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount() domain.Account {
	now := time.Now()
	return domain.Account{
		AccountID:   "acc-1",
		EntityID:    "ent-1",
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
		Description: "Operating cash",
		IsSystem:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
}

func accountRows(acc domain.Account) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"account_id", "entity_id", "code", "name", "account_type", "description",
		"is_system", "created_at", "created_by", "last_updated_at", "last_updated_by",
	}).AddRow(
		acc.AccountID, acc.EntityID, acc.Code, acc.Name, models.AccountType(acc.AccountType), acc.Description,
		acc.IsSystem, acc.CreatedAt, acc.CreatedBy, acc.LastUpdatedAt, acc.LastUpdatedBy,
	)
}

func TestUpsertAccount_Inserts(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxAccountRepository{BaseRepository{Pool: mock}}
	acc := testAccount()

	mock.ExpectQuery(`INSERT INTO accounts`).
		WithArgs(acc.AccountID, acc.EntityID, acc.Code, acc.Name, pgxmock.AnyArg(), acc.Description,
			acc.IsSystem, acc.CreatedAt, acc.CreatedBy, acc.LastUpdatedAt, acc.LastUpdatedBy).
		WillReturnRows(accountRows(acc))

	stored, err := repo.UpsertAccount(ctx, acc)
	require.NoError(t, err)
	assert.Equal(t, acc.AccountID, stored.AccountID)
	assert.Equal(t, domain.Asset, stored.AccountType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertAccount_ReturnsExistingOnConflict(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxAccountRepository{BaseRepository{Pool: mock}}
	acc := testAccount()

	existing := acc
	existing.AccountID = "acc-earlier"
	existing.Name = "Cash (operating)"

	// ON CONFLICT DO NOTHING yields no row, then the existing row is fetched.
	mock.ExpectQuery(`INSERT INTO accounts`).
		WithArgs(acc.AccountID, acc.EntityID, acc.Code, acc.Name, pgxmock.AnyArg(), acc.Description,
			acc.IsSystem, acc.CreatedAt, acc.CreatedBy, acc.LastUpdatedAt, acc.LastUpdatedBy).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`SELECT .+ FROM accounts WHERE entity_id = \$1 AND code = \$2`).
		WithArgs(acc.EntityID, acc.Code).
		WillReturnRows(accountRows(existing))

	stored, err := repo.UpsertAccount(ctx, acc)
	require.NoError(t, err)
	assert.Equal(t, "acc-earlier", stored.AccountID)
	assert.Equal(t, "Cash (operating)", stored.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAccountByCode_NotFound(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxAccountRepository{BaseRepository{Pool: mock}}

	mock.ExpectQuery(`SELECT .+ FROM accounts WHERE entity_id = \$1 AND code = \$2`).
		WithArgs("ent-1", "9999").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FindAccountByCode(ctx, "ent-1", "9999")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAccountsByCodes_Empty(t *testing.T) {
	repo := &PgxAccountRepository{}

	accounts, err := repo.FindAccountsByCodes(context.Background(), "ent-1", nil)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

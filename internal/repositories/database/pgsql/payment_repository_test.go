package pgsql

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/propfolio/ledger_backend/internal/core/domain"
	"github.com/propfolio/ledger_backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimForPosting_WinsWhenPending(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxPaymentRepository{BaseRepository{Pool: mock}}

	mock.ExpectExec(`UPDATE payments`).
		WithArgs(models.PostingStatus(domain.PostingInProgress), "pmt-1", models.PostingStatus(domain.PostingPending)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	claimed, err := repo.ClaimForPosting(ctx, "pmt-1")
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimForPosting_LosesWhenAlreadyClaimed(t *testing.T) {
	ctx := context.Background()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxPaymentRepository{BaseRepository{Pool: mock}}

	// Status already POSTING or POSTED: the compare-and-swap matches no row.
	mock.ExpectExec(`UPDATE payments`).
		WithArgs(models.PostingStatus(domain.PostingInProgress), "pmt-1", models.PostingStatus(domain.PostingPending)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	claimed, err := repo.ClaimForPosting(ctx, "pmt-1")
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package services

import (
	"context"

	"github.com/propfolio/ledger_backend/internal/core/domain"
	"github.com/propfolio/ledger_backend/internal/dto"
)

// JournalReaderSvc defines read operations for journal entry data
type JournalReaderSvc interface {
	// GetEntryByID retrieves a specific journal entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of an organization's journal entries.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// JournalWriterSvc defines write operations for journal entry data
type JournalWriterSvc interface {
	// PostEntry validates, balances and durably records a journal entry with its
	// lines. Returns apperrors.UnbalancedError when debit and credit totals differ.
	PostEntry(ctx context.Context, req dto.PostEntryRequest, creatorID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}

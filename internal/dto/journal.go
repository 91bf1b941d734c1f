package dto

import (
	"time"

	"github.com/propfolio/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLineRequest defines one debit or credit within a posting request.
// Accounts are addressed by code; the engine resolves them against the
// entity's chart. Exactly one of debit/credit must be nonzero.
type CreateLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit" binding:"nonnegative_decimal"`
	Credit      decimal.Decimal `json:"credit" binding:"nonnegative_decimal"`
	PropertyID  string          `json:"propertyID"`
	UnitID      string          `json:"unitID"`
	LeaseID     string          `json:"leaseID"`
	TenantID    string          `json:"tenantID"`
}

// PostEntryRequest defines the data needed to post a journal entry.
type PostEntryRequest struct {
	OrganizationID  string              `json:"organizationID" binding:"required"`
	TransactionDate time.Time           `json:"transactionDate" binding:"required"`
	Reference       string              `json:"reference"`
	Description     string              `json:"description"`
	Lines           []CreateLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode,omitempty"`
	AccountName string          `json:"accountName,omitempty"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	PropertyID  string          `json:"propertyID,omitempty"`
	UnitID      string          `json:"unitID,omitempty"`
	LeaseID     string          `json:"leaseID,omitempty"`
	TenantID    string          `json:"tenantID,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID         string                `json:"entryID"`
	EntityID        string                `json:"entityID"`
	TransactionDate time.Time             `json:"transactionDate"`
	PostedAt        time.Time             `json:"postedAt"`
	Reference       string                `json:"reference"`
	Description     string                `json:"description"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
	Lines           []JournalLineResponse `json:"lines,omitempty"`
}

// ListEntriesParams defines query parameters for listing journal entries.
// When entryID values are given only those entries are returned and the
// pagination fields are ignored.
type ListEntriesParams struct {
	OrganizationID string   `form:"organizationID" binding:"required"`
	EntryIDs       []string `form:"entryID"`
	Limit          int      `form:"limit,default=20"`
	NextToken      *string  `form:"nextToken"`
}

// ListEntriesResponse is the paginated list of journal entries.
type ListEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalLineResponse converts a domain.JournalLine to JournalLineResponse DTO.
func ToJournalLineResponse(line *domain.JournalLine) JournalLineResponse {
	resp := JournalLineResponse{
		LineID:      line.LineID,
		AccountID:   line.AccountID,
		Description: line.Description,
		Debit:       line.Debit,
		Credit:      line.Credit,
		PropertyID:  line.PropertyID,
		UnitID:      line.UnitID,
		LeaseID:     line.LeaseID,
		TenantID:    line.TenantID,
	}
	if line.Account != nil {
		resp.AccountCode = line.Account.Code
		resp.AccountName = line.Account.Name
	}
	return resp
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:         entry.EntryID,
		EntityID:        entry.EntityID,
		TransactionDate: entry.TransactionDate,
		PostedAt:        entry.PostedAt,
		Reference:       entry.Reference,
		Description:     entry.Description,
		CreatedAt:       entry.CreatedAt,
		CreatedBy:       entry.CreatedBy,
	}
	if len(entry.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(entry.Lines))
		for i := range entry.Lines {
			resp.Lines[i] = ToJournalLineResponse(&entry.Lines[i])
		}
	}
	return resp
}

// ToListEntriesResponse converts a page of domain entries plus its token.
func ToListEntriesResponse(entries []domain.JournalEntry, nextToken *string) *ListEntriesResponse {
	resp := &ListEntriesResponse{
		Entries:   make([]JournalEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		resp.Entries[i] = ToJournalEntryResponse(&entries[i])
	}
	return resp
}

package dto

import (
	"github.com/propfolio/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRowResponse defines one account's aggregated activity in a ledger view.
type LedgerRowResponse struct {
	AccountID   string             `json:"accountID"`
	AccountCode string             `json:"accountCode"`
	AccountName string             `json:"accountName"`
	AccountType domain.AccountType `json:"accountType"`
	Debit       decimal.Decimal    `json:"debit"`
	Credit      decimal.Decimal    `json:"credit"`
	Balance     decimal.Decimal    `json:"balance"`
}

// EntityLedgerResponse is the aggregated ledger of one financial entity.
// DebitTotal and CreditTotal are equal for a consistent book.
type EntityLedgerResponse struct {
	EntityID    string              `json:"entityID"`
	Rows        []LedgerRowResponse `json:"rows"`
	DebitTotal  decimal.Decimal     `json:"debitTotal"`
	CreditTotal decimal.Decimal     `json:"creditTotal"`
}

// EntityLedgerParams defines query parameters for the entity ledger view.
// When entryID values are given the aggregation covers only those entries.
type EntityLedgerParams struct {
	OrganizationID string   `form:"organizationID" binding:"required"`
	EntryIDs       []string `form:"entryID"`
}

// AccountBalanceParams defines query parameters for a single account balance.
type AccountBalanceParams struct {
	OrganizationID string   `form:"organizationID" binding:"required"`
	EntryIDs       []string `form:"entryID"`
}

// ToLedgerRowResponse converts a domain.LedgerRow to LedgerRowResponse DTO.
func ToLedgerRowResponse(row *domain.LedgerRow) LedgerRowResponse {
	return LedgerRowResponse{
		AccountID:   row.AccountID,
		AccountCode: row.AccountCode,
		AccountName: row.AccountName,
		AccountType: row.AccountType,
		Debit:       row.Debit,
		Credit:      row.Credit,
		Balance:     row.Balance,
	}
}

// ToEntityLedgerResponse converts ledger rows into the entity ledger view,
// accumulating the debit and credit grand totals.
func ToEntityLedgerResponse(entityID string, rows []domain.LedgerRow) *EntityLedgerResponse {
	resp := &EntityLedgerResponse{
		EntityID:    entityID,
		Rows:        make([]LedgerRowResponse, len(rows)),
		DebitTotal:  decimal.Zero,
		CreditTotal: decimal.Zero,
	}
	for i := range rows {
		resp.Rows[i] = ToLedgerRowResponse(&rows[i])
		resp.DebitTotal = resp.DebitTotal.Add(rows[i].Debit)
		resp.CreditTotal = resp.CreditTotal.Add(rows[i].Credit)
	}
	return resp
}

package domain

import "github.com/shopspring/decimal"

// LedgerRow is one account's aggregated activity: total debits, total
// credits, and the signed balance derived from the account's type.
type LedgerRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

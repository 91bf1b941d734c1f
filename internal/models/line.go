package models

import "github.com/shopspring/decimal"

// JournalLine maps to the journal_lines table. Dimension columns are
// nullable; empty string in the model means NULL in the row.
type JournalLine struct {
	LineID      string
	EntryID     string
	AccountID   string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	PropertyID  string
	UnitID      string
	LeaseID     string
	TenantID    string
}

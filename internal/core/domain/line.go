package domain

import "github.com/shopspring/decimal"

// JournalLine is a single debit or credit against one account within a
// journal entry. Exactly one of Debit/Credit is nonzero for a well-formed
// line; the posting engine rejects lines that set both.
type JournalLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`  // Non-negative
	Credit      decimal.Decimal `json:"credit"` // Non-negative

	// Reporting dimensions. Never consulted for balancing; empty when the
	// line is not attributable to a property/unit/lease/tenant.
	PropertyID string `json:"propertyID,omitempty"`
	UnitID     string `json:"unitID,omitempty"`
	LeaseID    string `json:"leaseID,omitempty"`
	TenantID   string `json:"tenantID,omitempty"`

	// Account is populated on reads that join the chart; nil otherwise.
	Account *Account `json:"account,omitempty"`
}

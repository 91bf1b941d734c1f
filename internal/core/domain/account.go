package domain

// AccountType defines the fundamental accounting type of an account.
// The balance sign convention is derived from it: ASSET and EXPENSE
// accounts carry debit-positive balances, the rest credit-positive.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Well-known account codes used by the posting orchestrators. These are part
// of the default chart seeded for every financial entity.
const (
	CodeCash                 = "1000"
	CodeAccountsReceivable   = "1100"
	CodeSecurityDepositsHeld = "2100"
	CodeOwnerEquity          = "3000"
	CodeRentalIncome         = "4000"
	CodeLateFeeIncome        = "4100"
	CodeMaintenanceExpense   = "5100"
)

// Account is one entry in a financial entity's chart of accounts.
//
// Invariant: (EntityID, Code) is unique. Accounts are created by idempotent
// chart setup and never mutated afterwards by the ledger subsystem.
type Account struct {
	AccountID   string      `json:"accountID"`
	EntityID    string      `json:"entityID"`
	Code        string      `json:"code"` // Human-readable, e.g. "1000"
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	Description string      `json:"description"`
	IsSystem    bool        `json:"isSystem"` // Seeded by the platform, not user-created
	AuditFields
}

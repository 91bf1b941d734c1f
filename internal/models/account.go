package models

// AccountType mirrors domain.AccountType for persistence.
type AccountType string

// Account maps to the accounts table. (entity_id, code) is unique.
type Account struct {
	AccountID   string
	EntityID    string
	Code        string
	Name        string
	AccountType AccountType
	Description string
	IsSystem    bool
	AuditFields
}

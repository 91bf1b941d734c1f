package models

// FinancialEntity maps to the financial_entities table.
type FinancialEntity struct {
	EntityID       string
	OrganizationID string
	Name           string
	AuditFields
}

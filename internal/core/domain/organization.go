package domain

// Organization is the tenant boundary. Every business document and every
// book of record lives beneath exactly one organization.
type Organization struct {
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	AuditFields
}

// FinancialEntity is the accounting book of record beneath an organization.
// It owns a chart of accounts and the journal entries posted against it.
//
// Invariant: posting flows resolve exactly one entity per organization.
// Multi-entity organizations are not modelled; the resolver rejects an
// organization with no entity rather than guessing among several.
type FinancialEntity struct {
	EntityID       string `json:"entityID"`
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	AuditFields
}

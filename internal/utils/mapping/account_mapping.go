package mapping

import (
	"github.com/propfolio/ledger_backend/internal/core/domain"
	"github.com/propfolio/ledger_backend/internal/models"
)

// ToDomainAccount converts a models.Account to domain.Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		EntityID:    m.EntityID,
		Code:        m.Code,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		Description: m.Description,
		IsSystem:    m.IsSystem,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToModelAccount converts a domain.Account to models.Account.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		EntityID:    d.EntityID,
		Code:        d.Code,
		Name:        d.Name,
		AccountType: models.AccountType(d.AccountType),
		Description: d.Description,
		IsSystem:    d.IsSystem,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

package mapping

import (
	"github.com/propfolio/ledger_backend/internal/core/domain"
	"github.com/propfolio/ledger_backend/internal/models"
)

// ToDomainEntity converts a models.FinancialEntity to domain.FinancialEntity.
func ToDomainEntity(m models.FinancialEntity) domain.FinancialEntity {
	return domain.FinancialEntity{
		EntityID:       m.EntityID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}

// ToModelEntity converts a domain.FinancialEntity to models.FinancialEntity.
func ToModelEntity(d domain.FinancialEntity) models.FinancialEntity {
	return models.FinancialEntity{
		EntityID:       d.EntityID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		AuditFields:    toModelAudit(d.AuditFields),
	}
}

func toDomainAudit(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

func toModelAudit(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

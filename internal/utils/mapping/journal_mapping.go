package mapping

import (
	"github.com/propfolio/ledger_backend/internal/core/domain"
	"github.com/propfolio/ledger_backend/internal/models"
)

// ToDomainEntry converts a models.JournalEntry to domain.JournalEntry.
// Lines are attached separately by the caller when requested.
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:         m.EntryID,
		EntityID:        m.EntityID,
		TransactionDate: m.TransactionDate,
		PostedAt:        m.PostedAt,
		Reference:       m.Reference,
		Description:     m.Description,
		IsLocked:        m.IsLocked,
		AuditFields:     toDomainAudit(m.AuditFields),
	}
}

// ToModelEntry converts a domain.JournalEntry to models.JournalEntry.
func ToModelEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:         d.EntryID,
		EntityID:        d.EntityID,
		TransactionDate: d.TransactionDate,
		PostedAt:        d.PostedAt,
		Reference:       d.Reference,
		Description:     d.Description,
		IsLocked:        d.IsLocked,
		AuditFields:     toModelAudit(d.AuditFields),
	}
}

// ToDomainLine converts a models.JournalLine to domain.JournalLine.
func ToDomainLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		Description: m.Description,
		Debit:       m.Debit,
		Credit:      m.Credit,
		PropertyID:  m.PropertyID,
		UnitID:      m.UnitID,
		LeaseID:     m.LeaseID,
		TenantID:    m.TenantID,
	}
}

// ToModelLine converts a domain.JournalLine to models.JournalLine.
func ToModelLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		AccountID:   d.AccountID,
		Description: d.Description,
		Debit:       d.Debit,
		Credit:      d.Credit,
		PropertyID:  d.PropertyID,
		UnitID:      d.UnitID,
		LeaseID:     d.LeaseID,
		TenantID:    d.TenantID,
	}
}

// ToDomainLineSlice converts a slice of models.JournalLine to domain objects.
func ToDomainLineSlice(lines []models.JournalLine) []domain.JournalLine {
	result := make([]domain.JournalLine, len(lines))
	for i, line := range lines {
		result[i] = ToDomainLine(line)
	}
	return result
}

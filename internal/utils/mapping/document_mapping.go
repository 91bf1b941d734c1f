package mapping

import (
	"github.com/propfolio/ledger_backend/internal/core/domain"
	"github.com/propfolio/ledger_backend/internal/models"
)

// ToDomainInvoice converts a models.Invoice to domain.Invoice.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		OrganizationID: m.OrganizationID,
		Number:         m.Number,
		PropertyID:     m.PropertyID,
		UnitID:         m.UnitID,
		LeaseID:        m.LeaseID,
		TenantID:       m.TenantID,
		Amount:         m.Amount,
		IssueDate:      m.IssueDate,
		DueDate:        m.DueDate,
		PostingStatus:  domain.PostingStatus(m.PostingStatus),
		JournalEntryID: m.JournalEntryID,
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}

// ToModelInvoice converts a domain.Invoice to models.Invoice.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:      d.InvoiceID,
		OrganizationID: d.OrganizationID,
		Number:         d.Number,
		PropertyID:     d.PropertyID,
		UnitID:         d.UnitID,
		LeaseID:        d.LeaseID,
		TenantID:       d.TenantID,
		Amount:         d.Amount,
		IssueDate:      d.IssueDate,
		DueDate:        d.DueDate,
		PostingStatus:  models.PostingStatus(d.PostingStatus),
		JournalEntryID: d.JournalEntryID,
		AuditFields:    toModelAudit(d.AuditFields),
	}
}

// ToDomainPayment converts a models.Payment to domain.Payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:      m.PaymentID,
		OrganizationID: m.OrganizationID,
		InvoiceID:      m.InvoiceID,
		Number:         m.Number,
		Method:         domain.PaymentMethod(m.Method),
		Amount:         m.Amount,
		ReceivedDate:   m.ReceivedDate,
		PostingStatus:  domain.PostingStatus(m.PostingStatus),
		JournalEntryID: m.JournalEntryID,
		Reversed:       m.Reversed,
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}

// ToModelPayment converts a domain.Payment to models.Payment.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:      d.PaymentID,
		OrganizationID: d.OrganizationID,
		InvoiceID:      d.InvoiceID,
		Number:         d.Number,
		Method:         string(d.Method),
		Amount:         d.Amount,
		ReceivedDate:   d.ReceivedDate,
		PostingStatus:  models.PostingStatus(d.PostingStatus),
		JournalEntryID: d.JournalEntryID,
		Reversed:       d.Reversed,
		AuditFields:    toModelAudit(d.AuditFields),
	}
}

// ToDomainReversal converts a models.PaymentReversal to domain.PaymentReversal.
func ToDomainReversal(m models.PaymentReversal) domain.PaymentReversal {
	return domain.PaymentReversal{
		ReversalID: m.ReversalID,
		PaymentID:  m.PaymentID,
		InvoiceID:  m.InvoiceID,
		Amount:     m.Amount,
		Reason:     m.Reason,
		ReversedBy: m.ReversedBy,
		ReversedAt: m.ReversedAt,
	}
}

// ToModelReversal converts a domain.PaymentReversal to models.PaymentReversal.
func ToModelReversal(d domain.PaymentReversal) models.PaymentReversal {
	return models.PaymentReversal{
		ReversalID: d.ReversalID,
		PaymentID:  d.PaymentID,
		InvoiceID:  d.InvoiceID,
		Amount:     d.Amount,
		Reason:     d.Reason,
		ReversedBy: d.ReversedBy,
		ReversedAt: d.ReversedAt,
	}
}

package services

import (
	portsrepo "github.com/propfolio/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/propfolio/ledger_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Chart service first since journal posting resolves entities and
	// accounts through it.
	container.Chart = NewChartService(repos.EntityRepo, repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo, container.Chart)
	container.Posting = NewPostingService(container.Journal, repos.InvoiceRepo, repos.PaymentRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.AccountRepo)
	container.Reversal = NewReversalService(repos.PaymentRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ChartSvcFacade    = (*chartService)(nil)
	_ portssvc.JournalSvcFacade  = (*journalService)(nil)
	_ portssvc.PostingSvcFacade  = (*postingService)(nil)
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.ReversalSvcFacade = (*reversalService)(nil)
)

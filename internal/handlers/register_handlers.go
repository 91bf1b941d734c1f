package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/propfolio/ledger_backend/internal/core/ports/services"
	"github.com/propfolio/ledger_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1/finance group and delegates to
// specific route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	finance := r.Group("/api/v1/finance")

	registerJournalRoutes(finance, services.Journal)
	registerLedgerRoutes(finance, services.Ledger, services.Chart)
	registerAccountRoutes(finance, services.Chart)
	registerPostingRoutes(finance, services.Posting, services.Reversal)
}

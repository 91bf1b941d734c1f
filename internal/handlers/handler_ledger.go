package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/propfolio/ledger_backend/internal/core/ports/services"
	"github.com/propfolio/ledger_backend/internal/dto"
	"github.com/propfolio/ledger_backend/internal/middleware"
)

// ledgerHandler handles HTTP requests for aggregated ledger views.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	chartService  portssvc.ChartSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade, chartService portssvc.ChartSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ledgerService,
		chartService:  chartService,
	}
}

// registerLedgerRoutes wires the ledger endpoints into the finance group.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, chartService portssvc.ChartSvcFacade) {
	h := newLedgerHandler(ledgerService, chartService)
	ledger := rg.Group("/ledger")
	{
		ledger.GET("", h.entityLedger)
		ledger.GET("/:accountCode", h.accountBalance)
	}
}

// entityLedger returns per-account totals and balances for the
// organization's book of record.
func (h *ledgerHandler) entityLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.EntityLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	entity, err := h.chartService.FindEntityForOrganization(c.Request.Context(), params.OrganizationID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve financial entity")
		return
	}

	resp, err := h.ledgerService.EntityLedger(c.Request.Context(), entity.EntityID, params.EntryIDs)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build entity ledger")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// accountBalance returns one account's totals and signed balance, addressed
// by account code within the organization's chart.
func (h *ledgerHandler) accountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountCode := c.Param("accountCode")

	var params dto.AccountBalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	entity, err := h.chartService.FindEntityForOrganization(c.Request.Context(), params.OrganizationID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve financial entity")
		return
	}

	resp, err := h.ledgerService.AccountBalance(c.Request.Context(), entity.EntityID, accountCode, params.EntryIDs)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute account balance")
		return
	}

	c.JSON(http.StatusOK, resp)
}

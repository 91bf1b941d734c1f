package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/propfolio/ledger_backend/internal/core/ports/services"
	"github.com/propfolio/ledger_backend/internal/dto"
	"github.com/propfolio/ledger_backend/internal/middleware"
)

// accountHandler handles HTTP requests for the chart of accounts.
type accountHandler struct {
	chartService portssvc.ChartSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(chartService portssvc.ChartSvcFacade) *accountHandler {
	return &accountHandler{chartService: chartService}
}

// registerAccountRoutes wires the chart endpoints into the finance group.
func registerAccountRoutes(rg *gin.RouterGroup, chartService portssvc.ChartSvcFacade) {
	h := newAccountHandler(chartService)
	rg.POST("/entities", h.createEntity)
	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.ensureAccount)
		accounts.GET("", h.listAccounts)
	}
}

// createEntity opens an organization's book of record and seeds the default
// chart beneath it.
func (h *accountHandler) createEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createEntity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entity, err := h.chartService.CreateEntity(c.Request.Context(), req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create financial entity")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntityResponse(entity))
}

// ensureAccount creates an account in the organization's chart, or returns
// the existing one when the code is already taken. Always idempotent.
func (h *accountHandler) ensureAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EnsureAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for ensureAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entity, err := h.chartService.FindEntityForOrganization(c.Request.Context(), req.OrganizationID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve financial entity")
		return
	}

	account, err := h.chartService.EnsureAccount(c.Request.Context(), entity.EntityID, req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to ensure account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts returns the organization's full chart of accounts.
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	entity, err := h.chartService.FindEntityForOrganization(c.Request.Context(), params.OrganizationID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve financial entity")
		return
	}

	accounts, err := h.chartService.ListAccounts(c.Request.Context(), entity.EntityID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": dto.ToListAccountResponse(accounts)})
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/propfolio/ledger_backend/internal/core/ports/services"
	"github.com/propfolio/ledger_backend/internal/dto"
	"github.com/propfolio/ledger_backend/internal/middleware"
)

// postingHandler handles HTTP requests that post source documents to the
// general ledger or reverse payments.
type postingHandler struct {
	postingService  portssvc.PostingSvcFacade
	reversalService portssvc.ReversalSvcFacade
}

// newPostingHandler creates a new postingHandler.
func newPostingHandler(postingService portssvc.PostingSvcFacade, reversalService portssvc.ReversalSvcFacade) *postingHandler {
	return &postingHandler{
		postingService:  postingService,
		reversalService: reversalService,
	}
}

// registerPostingRoutes wires the document posting endpoints into the finance group.
func registerPostingRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade, reversalService portssvc.ReversalSvcFacade) {
	h := newPostingHandler(postingService, reversalService)
	rg.POST("/invoices/:invoiceID/post", h.postInvoice)
	rg.POST("/payments/:paymentID/post", h.postPayment)
	rg.POST("/payments/:paymentID/reverse", h.reversePayment)
}

// postInvoice posts an issued invoice to the general ledger.
func (h *postingHandler) postInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.postingService.PostInvoiceToGL(c.Request.Context(), invoiceID, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to post invoice")
		return
	}

	logger.Info("Invoice posted", slog.String("invoice_id", invoiceID), slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToPostDocumentResponse(invoiceID, entry))
}

// postPayment posts a received payment to the general ledger.
func (h *postingHandler) postPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.postingService.PostPaymentToGL(c.Request.Context(), paymentID, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to post payment")
		return
	}

	logger.Info("Payment posted", slog.String("payment_id", paymentID), slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToPostDocumentResponse(paymentID, entry))
}

// reversePayment flags a posted cash payment as reversed.
func (h *postingHandler) reversePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	var req dto.ReversePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for reversePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reversal, err := h.reversalService.ReversePayment(c.Request.Context(), paymentID, req, actorID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to reverse payment")
		return
	}

	logger.Info("Payment reversed", slog.String("payment_id", paymentID), slog.String("reversal_id", reversal.ReversalID))
	c.JSON(http.StatusOK, dto.ToReversalResponse(reversal))
}

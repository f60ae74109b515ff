package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradenet/services/trade"
	"tradenet/utils"
)

// TradeHandler serves invoice requests, ledgers and the trade network.
type TradeHandler struct {
	Svc trade.TradeService
}

// NewTradeHandler creates a TradeHandler.
func NewTradeHandler(svc trade.TradeService) *TradeHandler {
	return &TradeHandler{Svc: svc}
}

// InvoiceRequestsHandler dispatches on method plus the action query param:
// POST action=create, GET action=list, GET action=incoming.
func (h *TradeHandler) InvoiceRequestsHandler(c *gin.Context) {
	orgID := orgIDOrAbort(c)
	if orgID == "" {
		return
	}

	action := c.Query("action")
	switch {
	case c.Request.Method == http.MethodPost && action == "create":
		h.createInvoiceRequest(c, orgID)
	case c.Request.Method == http.MethodGet && action == "list":
		limit, offset := pagination(c)
		requests, err := h.Svc.ListRequests(c.Request.Context(), orgID, limit, offset)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, requests)
	case c.Request.Method == http.MethodGet && action == "incoming":
		limit, offset := pagination(c)
		requests, err := h.Svc.ListIncoming(c.Request.Context(), orgID, limit, offset)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, requests)
	default:
		methodNotAllowed(c)
	}
}

func (h *TradeHandler) createInvoiceRequest(c *gin.Context, orgID string) {
	var in trade.CreateRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "to_account and numeric amount required", err.Error())
		return
	}

	request, err := h.Svc.CreateInvoiceRequest(c.Request.Context(), orgID, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": request.ID})
}

// LedgerHandler serves GET action=get with the counterparty account_id.
func (h *TradeHandler) LedgerHandler(c *gin.Context) {
	orgID := orgIDOrAbort(c)
	if orgID == "" {
		return
	}

	if c.Request.Method != http.MethodGet || c.Query("action") != "get" {
		methodNotAllowed(c)
		return
	}
	accountID := c.Query("account_id")
	if accountID == "" {
		utils.JSONError(c, http.StatusBadRequest, "account_id required", nil)
		return
	}

	ledger, err := h.Svc.GetLedger(c.Request.Context(), orgID, accountID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// NetworkHandler serves GET action=list_edges.
func (h *TradeHandler) NetworkHandler(c *gin.Context) {
	orgID := orgIDOrAbort(c)
	if orgID == "" {
		return
	}

	if c.Request.Method != http.MethodGet || c.Query("action") != "list_edges" {
		methodNotAllowed(c)
		return
	}

	edges, err := h.Svc.ListEdges(c.Request.Context(), orgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, edges)
}

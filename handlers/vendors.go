package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradenet/services/vendor"
	"tradenet/utils"
)

// VendorHandler serves vendor accounts and inventory items.
type VendorHandler struct {
	Svc vendor.VendorService
}

// NewVendorHandler creates a VendorHandler.
func NewVendorHandler(svc vendor.VendorService) *VendorHandler {
	return &VendorHandler{Svc: svc}
}

// VendorsHandler dispatches POST action=create and GET action=list.
func (h *VendorHandler) VendorsHandler(c *gin.Context) {
	orgID := orgIDOrAbort(c)
	if orgID == "" {
		return
	}

	action := c.Query("action")
	switch {
	case c.Request.Method == http.MethodPost && action == "create":
		var req vendor.CreateVendorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid vendor payload", err.Error())
			return
		}
		v, err := h.Svc.CreateVendor(c.Request.Context(), orgID, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": v.ID})
	case c.Request.Method == http.MethodGet && action == "list":
		vendors, err := h.Svc.ListVendors(c.Request.Context(), orgID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, vendors)
	default:
		methodNotAllowed(c)
	}
}

// ItemsHandler dispatches POST action=create and GET action=list for
// inventory items.
func (h *VendorHandler) ItemsHandler(c *gin.Context) {
	orgID := orgIDOrAbort(c)
	if orgID == "" {
		return
	}

	action := c.Query("action")
	switch {
	case c.Request.Method == http.MethodPost && action == "create":
		var req vendor.CreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid item payload", err.Error())
			return
		}
		item, err := h.Svc.CreateItem(c.Request.Context(), orgID, req)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": item.ID})
	case c.Request.Method == http.MethodGet && action == "list":
		items, err := h.Svc.ListItems(c.Request.Context(), orgID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	default:
		methodNotAllowed(c)
	}
}

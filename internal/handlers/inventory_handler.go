package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilcoutreach/outreach-api/internal/domain/inventory"
	"github.com/ilcoutreach/outreach-api/internal/response"
	"github.com/ilcoutreach/outreach-api/internal/tracker"
)

// InventoryHandler serves the outreach supply counts.
type InventoryHandler struct {
	tracker *tracker.Tracker
}

func NewInventoryHandler(t *tracker.Tracker) *InventoryHandler {
	return &InventoryHandler{tracker: t}
}

// List handles GET /api/inventory
func (h *InventoryHandler) List(c *gin.Context) {
	response.SuccessResponse(c, http.StatusOK, "", h.tracker.Items())
}

// Create handles POST /api/inventory
func (h *InventoryHandler) Create(c *gin.Context) {
	var item inventory.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	added, err := h.tracker.AddItem(item)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusCreated, "item created", added)
}

// Update handles PUT /api/inventory/:id
func (h *InventoryHandler) Update(c *gin.Context) {
	var item inventory.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	updated, err := h.tracker.EditItem(c.Param("id"), item)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "item updated", updated)
}

// Delete handles DELETE /api/inventory/:id
func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.tracker.DeleteItem(c.Param("id")); err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "item deleted", nil)
}

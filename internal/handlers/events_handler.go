package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilcoutreach/outreach-api/internal/domain/event"
	"github.com/ilcoutreach/outreach-api/internal/response"
	"github.com/ilcoutreach/outreach-api/internal/tracker"
)

// EventsHandler serves the two active event collections.
type EventsHandler struct {
	tracker *tracker.Tracker
}

func NewEventsHandler(t *tracker.Tracker) *EventsHandler {
	return &EventsHandler{tracker: t}
}

// ListTabling handles GET /api/events/tabling
func (h *EventsHandler) ListTabling(c *gin.Context) {
	response.SuccessResponse(c, http.StatusOK, "", h.tracker.Tabling())
}

// CreateTabling handles POST /api/events/tabling
func (h *EventsHandler) CreateTabling(c *gin.Context) {
	var e event.TablingEvent
	if err := c.ShouldBindJSON(&e); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	added, err := h.tracker.AddTabling(e)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusCreated, "tabling event created", added)
}

// UpdateTabling handles PUT /api/events/tabling/:id
func (h *EventsHandler) UpdateTabling(c *gin.Context) {
	var e event.TablingEvent
	if err := c.ShouldBindJSON(&e); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	updated, err := h.tracker.EditTabling(c.Param("id"), e)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "tabling event updated", updated)
}

// DeleteTabling handles DELETE /api/events/tabling/:id
func (h *EventsHandler) DeleteTabling(c *gin.Context) {
	if err := h.tracker.DeleteTabling(c.Param("id")); err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "tabling event deleted", nil)
}

// CompleteTabling handles POST /api/events/tabling/:id/complete
func (h *EventsHandler) CompleteTabling(c *gin.Context) {
	done, err := h.tracker.CompleteTabling(c.Param("id"))
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "event completed", done)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateSpaceStatus handles PATCH /api/events/tabling/:id/space-status
func (h *EventsHandler) UpdateSpaceStatus(c *gin.Context) {
	h.updateStatus(c, h.tracker.SetSpaceStatus)
}

// UpdateCateringStatus handles PATCH /api/events/tabling/:id/catering-status
func (h *EventsHandler) UpdateCateringStatus(c *gin.Context) {
	h.updateStatus(c, h.tracker.SetCateringStatus)
}

func (h *EventsHandler) updateStatus(c *gin.Context, set func(string, event.RequestStatus) (event.TablingEvent, error)) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	status, ok := event.StatusFromString(req.Status)
	if !ok {
		response.BadRequestError(c, "invalid status: "+req.Status)
		return
	}

	updated, err := set(c.Param("id"), status)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "status updated", updated)
}

// ListPresentations handles GET /api/events/presentations
func (h *EventsHandler) ListPresentations(c *gin.Context) {
	response.SuccessResponse(c, http.StatusOK, "", h.tracker.Presentations())
}

// CreatePresentation handles POST /api/events/presentations
func (h *EventsHandler) CreatePresentation(c *gin.Context) {
	var e event.PresentationEvent
	if err := c.ShouldBindJSON(&e); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	added, err := h.tracker.AddPresentation(e)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusCreated, "presentation event created", added)
}

// UpdatePresentation handles PUT /api/events/presentations/:id
func (h *EventsHandler) UpdatePresentation(c *gin.Context) {
	var e event.PresentationEvent
	if err := c.ShouldBindJSON(&e); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	updated, err := h.tracker.EditPresentation(c.Param("id"), e)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "presentation event updated", updated)
}

// DeletePresentation handles DELETE /api/events/presentations/:id
func (h *EventsHandler) DeletePresentation(c *gin.Context) {
	if err := h.tracker.DeletePresentation(c.Param("id")); err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "presentation event deleted", nil)
}

// CompletePresentation handles POST /api/events/presentations/:id/complete
func (h *EventsHandler) CompletePresentation(c *gin.Context) {
	done, err := h.tracker.CompletePresentation(c.Param("id"))
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "event completed", done)
}

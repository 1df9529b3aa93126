package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ilcoutreach/outreach-api/internal/domain/notes"
	"github.com/ilcoutreach/outreach-api/internal/response"
	"github.com/ilcoutreach/outreach-api/internal/tracker"
)

// NotesHandler serves the meeting notes and agendas.
type NotesHandler struct {
	tracker *tracker.Tracker
}

func NewNotesHandler(t *tracker.Tracker) *NotesHandler {
	return &NotesHandler{tracker: t}
}

// List handles GET /api/notes. An optional ?type=note|agenda filters by
// kind.
func (h *NotesHandler) List(c *gin.Context) {
	all := h.tracker.Notes()

	typeParam := c.Query("type")
	if typeParam == "" {
		response.SuccessResponse(c, http.StatusOK, "", all)
		return
	}

	kind, ok := notes.KindFromString(typeParam)
	if !ok {
		response.BadRequestError(c, "invalid note type: "+typeParam)
		return
	}

	filtered := make([]notes.Note, 0, len(all))
	for _, n := range all {
		if n.Kind == kind {
			filtered = append(filtered, n)
		}
	}
	response.SuccessResponse(c, http.StatusOK, "", filtered)
}

type createNoteRequest struct {
	Type      string    `json:"type" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	NoteTaker string    `json:"noteTaker" binding:"required"`
}

// Create handles POST /api/notes
func (h *NotesHandler) Create(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	kind, ok := notes.KindFromString(req.Type)
	if !ok {
		response.BadRequestError(c, "invalid note type: "+req.Type)
		return
	}

	created, err := h.tracker.CreateNote(kind, req.Date, req.NoteTaker)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusCreated, "note created", created)
}

type noteContentRequest struct {
	Content string `json:"content"`
}

// UpdateContent handles PATCH /api/notes/:id/content
func (h *NotesHandler) UpdateContent(c *gin.Context) {
	var req noteContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	updated, err := h.tracker.UpdateNoteContent(c.Param("id"), req.Content)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "note updated", updated)
}

type noteDetailsRequest struct {
	Date      time.Time `json:"date" binding:"required"`
	NoteTaker string    `json:"noteTaker" binding:"required"`
}

// UpdateDetails handles PATCH /api/notes/:id/details
func (h *NotesHandler) UpdateDetails(c *gin.Context) {
	var req noteDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	updated, err := h.tracker.UpdateNoteDetails(c.Param("id"), req.Date, req.NoteTaker)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "note updated", updated)
}

// Delete handles DELETE /api/notes/:id
func (h *NotesHandler) Delete(c *gin.Context) {
	if err := h.tracker.DeleteNote(c.Param("id")); err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "note deleted", nil)
}

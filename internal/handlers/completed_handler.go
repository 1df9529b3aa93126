package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/ilcoutreach/outreach-api/internal/logger"
	"github.com/ilcoutreach/outreach-api/internal/response"
	"github.com/ilcoutreach/outreach-api/internal/tracker"
)

const exportDateLayout = "2006-01-02"

// CompletedHandler serves the archived event collection, the attendance
// totals and the spreadsheet export.
type CompletedHandler struct {
	tracker *tracker.Tracker
}

func NewCompletedHandler(t *tracker.Tracker) *CompletedHandler {
	return &CompletedHandler{tracker: t}
}

// List handles GET /api/events/completed
func (h *CompletedHandler) List(c *gin.Context) {
	response.SuccessResponse(c, http.StatusOK, "", h.tracker.Completed())
}

// Create handles POST /api/events/completed
func (h *CompletedHandler) Create(c *gin.Context) {
	var in tracker.CompletedInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	done, err := h.tracker.AddCompleted(in)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusCreated, "completed event created", done)
}

// Update handles PUT /api/events/completed/:id
func (h *CompletedHandler) Update(c *gin.Context) {
	var p tracker.CompletedPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	updated, err := h.tracker.EditCompleted(c.Param("id"), p)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "completed event updated", updated)
}

// Delete handles DELETE /api/events/completed/:id
func (h *CompletedHandler) Delete(c *gin.Context) {
	if err := h.tracker.DeleteCompleted(c.Param("id")); err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "completed event deleted", nil)
}

// MarkIncomplete handles POST /api/events/completed/:id/incomplete
func (h *CompletedHandler) MarkIncomplete(c *gin.Context) {
	source, err := h.tracker.MarkIncomplete(c.Param("id"))
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "event restored", gin.H{"source": source.String()})
}

type interactedRequest struct {
	Interacted *int `json:"interacted"`
}

// UpdateInteracted handles PATCH /api/events/completed/:id/interacted
func (h *CompletedHandler) UpdateInteracted(c *gin.Context) {
	var req interactedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	updated, err := h.tracker.UpdateInteracted(c.Param("id"), req.Interacted)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "interacted count updated", updated)
}

// TotalInteracted handles GET /api/events/completed/total-interacted
func (h *CompletedHandler) TotalInteracted(c *gin.Context) {
	response.SuccessResponse(c, http.StatusOK, "", gin.H{"total": h.tracker.TotalInteracted()})
}

// Export handles GET /api/events/completed/export, streaming the archive as
// an .xlsx workbook.
func (h *CompletedHandler) Export(c *gin.Context) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Completed Events"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		logger.Handler("completed").Error("rename export sheet", "error", err)
		response.InternalServerError(c, "failed to generate export")
		return
	}

	headers := []string{"Name", "Date", "Time", "Location", "Source", "Students Interacted"}
	for col, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for row, done := range h.tracker.Completed() {
		date := ""
		if done.Date != nil {
			date = done.Date.Format(exportDateLayout)
		}
		values := []any{done.Name, date, done.Time, done.Location, done.Source.String(), done.InteractedCount()}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Handler("completed").Error("write export workbook", "error", err)
		response.InternalServerError(c, "failed to generate export")
		return
	}

	filename := fmt.Sprintf("completed-events-%s.xlsx", time.Now().Format(exportDateLayout))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

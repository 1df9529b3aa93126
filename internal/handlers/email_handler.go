package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/ilcoutreach/outreach-api/internal/config"
	"github.com/ilcoutreach/outreach-api/internal/logger"
	"github.com/ilcoutreach/outreach-api/internal/mail"
	"github.com/ilcoutreach/outreach-api/internal/response"
	"github.com/ilcoutreach/outreach-api/internal/tracker"
)

// EmailHandler renders the outreach emails and stores the in-progress form
// drafts.
type EmailHandler struct {
	tracker *tracker.Tracker
	org     mail.OrgInfo
	log     *log.Logger
}

func NewEmailHandler(t *tracker.Tracker, cfg *config.Config) *EmailHandler {
	return &EmailHandler{
		tracker: t,
		log:     logger.Mail(),
		org: mail.OrgInfo{
			CFOAPAL:         cfg.Org.CFOAPAL,
			SupervisorName:  cfg.Org.SupervisorName,
			SupervisorPhone: cfg.Org.SupervisorPhone,
			SupervisorEmail: cfg.Org.SupervisorEmail,
		},
	}
}

// RenderPresentation handles POST /api/emails/presentation
func (h *EmailHandler) RenderPresentation(c *gin.Context) {
	var f mail.PresentationFields
	if err := c.ShouldBindJSON(&f); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	email, err := mail.PresentationEmail(f)
	if err != nil {
		writeTrackerError(c, err)
		return
	}

	h.log.Debug("rendered presentation email", "course", f.CourseNumber)
	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"subject": mail.PresentationSubject,
		"email":   email,
	})
}

// PresentationMailto handles POST /api/emails/presentation/mailto
func (h *EmailHandler) PresentationMailto(c *gin.Context) {
	var f mail.PresentationFields
	if err := c.ShouldBindJSON(&f); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	link, err := mail.PresentationMailto(f)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "", gin.H{"url": link})
}

// RenderCatering handles POST /api/emails/catering
func (h *EmailHandler) RenderCatering(c *gin.Context) {
	var form mail.CateringForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	email, err := mail.CateringEmail(form, h.org)
	if err != nil {
		writeTrackerError(c, err)
		return
	}

	h.log.Debug("rendered catering email", "events", len(form.Events))
	response.SuccessResponse(c, http.StatusOK, "", gin.H{
		"subject": mail.CateringSubject,
		"email":   email,
	})
}

// CateringMailto handles POST /api/emails/catering/mailto
func (h *EmailHandler) CateringMailto(c *gin.Context) {
	var form mail.CateringForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	link, err := mail.CateringMailto(form, h.org)
	if err != nil {
		writeTrackerError(c, err)
		return
	}
	response.SuccessResponse(c, http.StatusOK, "", gin.H{"url": link})
}

// GetDraft handles GET /api/emails/drafts/:slot
func (h *EmailHandler) GetDraft(c *gin.Context) {
	switch c.Param("slot") {
	case "presentation":
		response.SuccessResponse(c, http.StatusOK, "", h.tracker.PresentationDraft())
	case "catering":
		response.SuccessResponse(c, http.StatusOK, "", h.tracker.CateringDraft())
	default:
		response.NotFoundError(c, "unknown draft slot: "+c.Param("slot"))
	}
}

// SaveDraft handles PUT /api/emails/drafts/:slot. Drafts are stored as
// typed, without validation, so half-finished forms survive restarts.
func (h *EmailHandler) SaveDraft(c *gin.Context) {
	switch c.Param("slot") {
	case "presentation":
		var f mail.PresentationFields
		if err := c.ShouldBindJSON(&f); err != nil {
			response.BadRequestError(c, "invalid request payload: "+err.Error())
			return
		}
		if err := h.tracker.SavePresentationDraft(f); err != nil {
			writeTrackerError(c, err)
			return
		}
		response.SuccessResponse(c, http.StatusOK, "draft saved", f)
	case "catering":
		var f mail.CateringForm
		if err := c.ShouldBindJSON(&f); err != nil {
			response.BadRequestError(c, "invalid request payload: "+err.Error())
			return
		}
		if err := h.tracker.SaveCateringDraft(f); err != nil {
			writeTrackerError(c, err)
			return
		}
		response.SuccessResponse(c, http.StatusOK, "draft saved", f)
	default:
		response.NotFoundError(c, "unknown draft slot: "+c.Param("slot"))
	}
}

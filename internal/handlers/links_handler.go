package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilcoutreach/outreach-api/internal/config"
	"github.com/ilcoutreach/outreach-api/internal/response"
)

// LinksHandler serves the configured external links the dashboard points at.
type LinksHandler struct {
	cfg *config.Config
}

func NewLinksHandler(cfg *config.Config) *LinksHandler {
	return &LinksHandler{cfg: cfg}
}

// ReserveSpace handles GET /api/links/reserve-space
func (h *LinksHandler) ReserveSpace(c *gin.Context) {
	response.SuccessResponse(c, http.StatusOK, "", gin.H{"url": h.cfg.Org.ReserveSpaceURL})
}

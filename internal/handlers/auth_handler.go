package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilcoutreach/outreach-api/internal/auth"
	"github.com/ilcoutreach/outreach-api/internal/response"
)

// AuthHandler issues session tokens for the shared team password.
type AuthHandler struct {
	manager *auth.Manager
}

func NewAuthHandler(m *auth.Manager) *AuthHandler {
	return &AuthHandler{manager: m}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.manager.Enabled() {
		response.SuccessResponse(c, http.StatusOK, "authentication is not configured", gin.H{
			"token": "",
		})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "invalid request payload: "+err.Error())
		return
	}

	token, err := h.manager.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			response.UnauthorizedError(c, err.Error())
			return
		}
		response.InternalServerError(c, "failed to issue token")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"token":     token,
		"expiresIn": int(auth.TokenTTL.Seconds()),
	})
}

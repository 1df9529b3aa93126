// Package handlers wires the HTTP surface to the tracker. Each resource gets
// its own handler struct; everything shares the response envelope and the
// error mapping below.
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ilcoutreach/outreach-api/internal/domain/event"
	"github.com/ilcoutreach/outreach-api/internal/domain/inventory"
	"github.com/ilcoutreach/outreach-api/internal/mail"
	"github.com/ilcoutreach/outreach-api/internal/response"
	"github.com/ilcoutreach/outreach-api/internal/tracker"
	"github.com/ilcoutreach/outreach-api/internal/validation"
)

// writeTrackerError maps a tracker or domain error onto the right status
// code. Anything not recognizably a client mistake is a 500.
func writeTrackerError(c *gin.Context, err error) {
	var fieldErr validation.FieldError
	switch {
	case errors.Is(err, tracker.ErrNotFound):
		response.NotFoundError(c, err.Error())
	case errors.Is(err, event.ErrMissingFields),
		errors.Is(err, inventory.ErrNameRequired),
		errors.Is(err, mail.ErrMissingFields),
		errors.Is(err, mail.ErrNoEvents),
		errors.Is(err, mail.ErrEventFields),
		errors.Is(err, mail.ErrNoRecipient),
		errors.As(err, &fieldErr):
		response.BadRequestError(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}

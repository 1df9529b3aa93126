package handlers

import (
	"net/http"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/gin-gonic/gin"

	"github.com/ilcoutreach/outreach-api/internal/timeformat"
	"github.com/ilcoutreach/outreach-api/internal/tracker"
)

// CalendarHandler publishes the active events as an iCalendar feed so the
// team can subscribe from their own calendar apps.
type CalendarHandler struct {
	tracker *tracker.Tracker
}

func NewCalendarHandler(t *tracker.Tracker) *CalendarHandler {
	return &CalendarHandler{tracker: t}
}

// Feed handles GET /calendar.ics
func (h *CalendarHandler) Feed(c *gin.Context) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetXWRCalName("ILC Outreach")

	now := time.Now()
	for _, e := range h.tracker.Tabling() {
		h.addEvent(cal, now, e.ID, e.Name, e.Date, e.StartTime, e.EndTime, e.Location)
	}
	for _, e := range h.tracker.Presentations() {
		h.addEvent(cal, now, e.ID, e.Course, e.Date, e.Time, "", e.Location)
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}

// addEvent renders one VEVENT. Events whose time strings do not parse as a
// clock fall back to all-day entries; a missing date skips the event rather
// than inventing one.
func (h *CalendarHandler) addEvent(cal *ical.Calendar, stamp time.Time, id, summary string, date *time.Time, startTime, endTime, location string) {
	if date == nil {
		return
	}

	ev := cal.AddEvent(id + "@ilcoutreach")
	ev.SetDtStampTime(stamp)
	ev.SetSummary(summary)
	ev.SetLocation(location)

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	hour, minute, ok := timeformat.ParseClock(startTime)
	if !ok {
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		return
	}

	start := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	end := start.Add(time.Hour)
	if eh, em, endOK := timeformat.ParseClock(endTime); endOK {
		end = day.Add(time.Duration(eh)*time.Hour + time.Duration(em)*time.Minute)
		if !end.After(start) {
			// An end clock at or before the start reads as crossing
			// midnight.
			end = end.AddDate(0, 0, 1)
		}
	}

	ev.SetStartAt(start)
	ev.SetEndAt(end)
}

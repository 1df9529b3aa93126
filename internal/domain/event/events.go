// Package event holds the outreach event records: tabling sessions,
// classroom presentations, and the completed archive that wraps either kind.
package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ErrMissingFields is returned by the Validate methods when any required
// field is blank. The message is surfaced to the user as-is.
var ErrMissingFields = errors.New("fill all required fields")

// TablingEvent is an in-person outreach session at a fixed table.
type TablingEvent struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Date           *time.Time    `json:"date"`
	StartTime      string        `json:"startTime"`
	EndTime        string        `json:"endTime"`
	Location       string        `json:"location"`
	Staff          []string      `json:"staff"`
	SpaceStatus    RequestStatus `json:"spaceStatus"`
	CateringStatus RequestStatus `json:"cateringStatus"`
}

// Validate checks the required fields for a tabling event.
func (t *TablingEvent) Validate() error {
	if strings.TrimSpace(t.Name) == "" ||
		t.Date == nil ||
		strings.TrimSpace(t.StartTime) == "" ||
		strings.TrimSpace(t.EndTime) == "" ||
		strings.TrimSpace(t.Location) == "" {
		return ErrMissingFields
	}
	return nil
}

// TimeRange renders the event's display time as "start - end".
func (t *TablingEvent) TimeRange() string {
	return t.StartTime + " - " + t.EndTime
}

// Clone returns a copy that shares no slice storage with the receiver.
func (t TablingEvent) Clone() TablingEvent {
	t.Staff = slices.Clone(t.Staff)
	return t
}

// Complete wraps the event into its archived form. The receiver is retained
// verbatim as the original record so the completion can be reversed exactly.
func (t TablingEvent) Complete() CompletedEvent {
	orig := t.Clone()
	return CompletedEvent{
		ID:       t.ID,
		Name:     t.Name,
		Date:     t.Date,
		Time:     t.TimeRange(),
		Location: t.Location,
		Source:   SourceTabling,
		Original: OriginalEvent{Tabling: &orig},
	}
}

// PresentationEvent is a scheduled classroom guest presentation.
type PresentationEvent struct {
	ID              string     `json:"id"`
	Course          string     `json:"course"`
	InstructorName  string     `json:"instructorName"`
	InstructorEmail string     `json:"instructorEmail"`
	Date            *time.Time `json:"date"`
	Time            string     `json:"time"`
	Location        string     `json:"location"`
	Staff           []string   `json:"staff"`
}

// Validate checks the required fields for a presentation event.
func (p *PresentationEvent) Validate() error {
	if strings.TrimSpace(p.Course) == "" ||
		strings.TrimSpace(p.InstructorName) == "" ||
		strings.TrimSpace(p.InstructorEmail) == "" ||
		p.Date == nil ||
		strings.TrimSpace(p.Time) == "" ||
		strings.TrimSpace(p.Location) == "" {
		return ErrMissingFields
	}
	return nil
}

// Clone returns a copy that shares no slice storage with the receiver.
func (p PresentationEvent) Clone() PresentationEvent {
	p.Staff = slices.Clone(p.Staff)
	return p
}

// Complete wraps the event into its archived form, keeping the original
// record for reversal. The course doubles as the archived display name.
func (p PresentationEvent) Complete() CompletedEvent {
	orig := p.Clone()
	return CompletedEvent{
		ID:       p.ID,
		Name:     p.Course,
		Date:     p.Date,
		Time:     p.Time,
		Location: p.Location,
		Source:   SourcePresentations,
		Original: OriginalEvent{Presentation: &orig},
	}
}

// CompletedEvent is the archived record of an event after it has occurred.
// Interacted is nil until the team records an attendance count.
type CompletedEvent struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Date       *time.Time    `json:"date"`
	Time       string        `json:"time"`
	Location   string        `json:"location"`
	Interacted *int          `json:"interacted"`
	Source     Source        `json:"source"`
	Original   OriginalEvent `json:"originalEvent"`
}

// Validate checks the required fields for a directly-added completed event
// and the agreement between the source tag and the wrapped record.
func (c *CompletedEvent) Validate() error {
	if strings.TrimSpace(c.Name) == "" ||
		c.Date == nil ||
		strings.TrimSpace(c.Time) == "" ||
		strings.TrimSpace(c.Location) == "" {
		return ErrMissingFields
	}
	return c.CheckSourceAgreement()
}

// CheckSourceAgreement enforces the invariant that the source tag and the
// shape of the wrapped original record always agree.
func (c *CompletedEvent) CheckSourceAgreement() error {
	switch c.Source {
	case SourceTabling:
		if c.Original.Tabling == nil || c.Original.Presentation != nil {
			return fmt.Errorf("completed event %s: source %s disagrees with original record shape", c.ID, c.Source)
		}
	case SourcePresentations:
		if c.Original.Presentation == nil || c.Original.Tabling != nil {
			return fmt.Errorf("completed event %s: source %s disagrees with original record shape", c.ID, c.Source)
		}
	default:
		return fmt.Errorf("completed event %s: unknown source", c.ID)
	}
	return nil
}

// InteractedCount returns the recorded count, treating unset as zero.
func (c *CompletedEvent) InteractedCount() int {
	if c.Interacted == nil {
		return 0
	}
	return *c.Interacted
}

// OriginalEvent is the tagged variant wrapped by a CompletedEvent: exactly
// one of the two pointers is set, matching the completed event's source.
type OriginalEvent struct {
	Tabling      *TablingEvent
	Presentation *PresentationEvent
}

// MarshalJSON writes the wrapped record inline, matching the persisted form
// where originalEvent is the source event object itself.
func (o OriginalEvent) MarshalJSON() ([]byte, error) {
	switch {
	case o.Tabling != nil:
		return json.Marshal(o.Tabling)
	case o.Presentation != nil:
		return json.Marshal(o.Presentation)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON sniffs the record shape: presentation originals carry a
// course field, tabling originals do not.
func (o *OriginalEvent) UnmarshalJSON(data []byte) error {
	*o = OriginalEvent{}
	if string(data) == "null" {
		return nil
	}

	var probe struct {
		Course *string `json:"course"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("decode original event: %w", err)
	}

	if probe.Course != nil {
		var p PresentationEvent
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("decode original presentation event: %w", err)
		}
		o.Presentation = &p
		return nil
	}

	var t TablingEvent
	if err := json.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("decode original tabling event: %w", err)
	}
	o.Tabling = &t
	return nil
}

// RequestStatus tracks a space or catering request on a tabling event.
type RequestStatus byte

const (
	StatusPending RequestStatus = iota
	StatusSubmitted
	StatusNA
)

func (s RequestStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSubmitted:
		return "submitted"
	case StatusNA:
		return "n/a"
	default:
		return "unknown"
	}
}

// StatusFromString converts a string to a RequestStatus.
func StatusFromString(s string) (RequestStatus, bool) {
	switch s {
	case "pending":
		return StatusPending, true
	case "submitted":
		return StatusSubmitted, true
	case "n/a":
		return StatusNA, true
	default:
		return StatusPending, false
	}
}

// MarshalJSON implements the json.Marshaler interface
func (s RequestStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (s *RequestStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	status, valid := StatusFromString(str)
	if !valid {
		return fmt.Errorf("invalid request status: %s", str)
	}
	*s = status
	return nil
}

// Source identifies which active collection a completed event came from.
type Source byte

const (
	SourceTabling Source = iota
	SourcePresentations
)

func (s Source) String() string {
	switch s {
	case SourceTabling:
		return "tabling"
	case SourcePresentations:
		return "presentations"
	default:
		return "unknown"
	}
}

// SourceFromString converts a string to a Source.
func SourceFromString(s string) (Source, bool) {
	switch s {
	case "tabling":
		return SourceTabling, true
	case "presentations":
		return SourcePresentations, true
	default:
		return SourceTabling, false
	}
}

// MarshalJSON implements the json.Marshaler interface
func (s Source) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (s *Source) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	source, valid := SourceFromString(str)
	if !valid {
		return fmt.Errorf("invalid event source: %s", str)
	}
	*s = source
	return nil
}

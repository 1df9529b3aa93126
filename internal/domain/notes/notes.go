// Package notes holds the team's free-form meeting notes and agendas.
package notes

import (
	"encoding/json"
	"fmt"
	"time"
)

// TitleLayout is the date layout used for derived note titles.
const TitleLayout = "January 2, 2006"

// Note is a single meeting note or agenda document. The title is always
// derived from the meeting date.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	NoteTaker string    `json:"noteTaker"`
	Kind      Kind      `json:"type"`
}

// SetDate updates the meeting date and re-derives the title from it.
func (n *Note) SetDate(date time.Time) {
	n.Date = date
	n.Title = date.Format(TitleLayout)
}

// Kind distinguishes running notes from forward-looking agendas.
type Kind byte

const (
	KindNote Kind = iota
	KindAgenda
)

func (k Kind) String() string {
	switch k {
	case KindNote:
		return "note"
	case KindAgenda:
		return "agenda"
	default:
		return "unknown"
	}
}

// KindFromString converts a string to a Kind.
func KindFromString(s string) (Kind, bool) {
	switch s {
	case "note":
		return KindNote, true
	case "agenda":
		return KindAgenda, true
	default:
		return KindNote, false
	}
}

// MarshalJSON implements the json.Marshaler interface
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (k *Kind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	kind, valid := KindFromString(str)
	if !valid {
		return fmt.Errorf("invalid note kind: %s", str)
	}
	*k = kind
	return nil
}

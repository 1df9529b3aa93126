package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tablingFixture() TablingEvent {
	d := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	return TablingEvent{
		ID:             "tab-1",
		Name:           "Quad Day Table",
		Date:           &d,
		StartTime:      "10 AM",
		EndTime:        "2 PM",
		Location:       "Main Quad",
		Staff:          []string{"Alex", "Sam"},
		SpaceStatus:    StatusSubmitted,
		CateringStatus: StatusPending,
	}
}

func TestTablingValidate(t *testing.T) {
	e := tablingFixture()
	assert.NoError(t, e.Validate())

	e.StartTime = "  "
	assert.ErrorIs(t, e.Validate(), ErrMissingFields)

	e = tablingFixture()
	e.Date = nil
	assert.ErrorIs(t, e.Validate(), ErrMissingFields)
}

func TestTablingClone(t *testing.T) {
	e := tablingFixture()
	clone := e.Clone()

	clone.Staff[0] = "Riley"
	assert.Equal(t, "Alex", e.Staff[0])
}

func TestTablingComplete(t *testing.T) {
	e := tablingFixture()
	done := e.Complete()

	assert.Equal(t, e.ID, done.ID)
	assert.Equal(t, "Quad Day Table", done.Name)
	assert.Equal(t, "10 AM - 2 PM", done.Time)
	assert.Equal(t, SourceTabling, done.Source)
	assert.Nil(t, done.Interacted)
	require.NotNil(t, done.Original.Tabling)
	assert.Equal(t, e, *done.Original.Tabling)
	assert.NoError(t, done.CheckSourceAgreement())
}

func TestPresentationComplete(t *testing.T) {
	d := time.Date(2026, time.February, 12, 0, 0, 0, 0, time.UTC)
	p := PresentationEvent{
		ID:              "pres-1",
		Course:          "LEAD 260",
		InstructorName:  "Dr. Smith",
		InstructorEmail: "smith@illinois.edu",
		Date:            &d,
		Time:            "9 AM",
		Location:        "Lincoln Hall 1002",
	}

	done := p.Complete()
	assert.Equal(t, "LEAD 260", done.Name)
	assert.Equal(t, SourcePresentations, done.Source)
	require.NotNil(t, done.Original.Presentation)
	assert.Nil(t, done.Original.Tabling)
	assert.NoError(t, done.CheckSourceAgreement())
}

func TestCheckSourceAgreement(t *testing.T) {
	e := tablingFixture()
	done := e.Complete()

	// A tabling source wrapping a presentation record is corrupt.
	done.Source = SourcePresentations
	assert.Error(t, done.CheckSourceAgreement())
}

func TestCompletedEventJSONRoundTrip(t *testing.T) {
	done := tablingFixture().Complete()
	five := 5
	done.Interacted = &five

	data, err := json.Marshal(done)
	require.NoError(t, err)

	// The wrapped original is stored inline, not behind a wrapper object.
	assert.Contains(t, string(data), `"originalEvent":{"id":"tab-1"`)
	assert.Contains(t, string(data), `"source":"tabling"`)
	assert.Contains(t, string(data), `"spaceStatus":"submitted"`)

	var decoded CompletedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, done.ID, decoded.ID)
	assert.Equal(t, 5, decoded.InteractedCount())
	require.NotNil(t, decoded.Original.Tabling)
	assert.Nil(t, decoded.Original.Presentation)
	assert.Equal(t, *done.Original.Tabling, *decoded.Original.Tabling)
}

func TestOriginalEventSniffsShape(t *testing.T) {
	// Presentation originals are recognized by their course field.
	var o OriginalEvent
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","course":"LEAD 260"}`), &o))
	require.NotNil(t, o.Presentation)
	assert.Equal(t, "LEAD 260", o.Presentation.Course)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"t1","name":"Quad Day"}`), &o))
	require.NotNil(t, o.Tabling)
	assert.Nil(t, o.Presentation)

	require.NoError(t, json.Unmarshal([]byte(`null`), &o))
	assert.Nil(t, o.Tabling)
	assert.Nil(t, o.Presentation)
}

func TestInteractedCountTreatsNilAsZero(t *testing.T) {
	var c CompletedEvent
	assert.Equal(t, 0, c.InteractedCount())

	n := 12
	c.Interacted = &n
	assert.Equal(t, 12, c.InteractedCount())
}

func TestRequestStatusStrings(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "submitted", StatusSubmitted.String())
	assert.Equal(t, "n/a", StatusNA.String())

	s, ok := StatusFromString("n/a")
	assert.True(t, ok)
	assert.Equal(t, StatusNA, s)

	_, ok = StatusFromString("done")
	assert.False(t, ok)

	var decoded RequestStatus
	assert.Error(t, json.Unmarshal([]byte(`"done"`), &decoded))
}

func TestSourceStrings(t *testing.T) {
	assert.Equal(t, "tabling", SourceTabling.String())
	assert.Equal(t, "presentations", SourcePresentations.String())

	_, ok := SourceFromString("walk-in")
	assert.False(t, ok)
}

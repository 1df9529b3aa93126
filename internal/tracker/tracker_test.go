package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilcoutreach/outreach-api/internal/domain/event"
	"github.com/ilcoutreach/outreach-api/internal/domain/inventory"
	"github.com/ilcoutreach/outreach-api/internal/domain/notes"
	"github.com/ilcoutreach/outreach-api/internal/mail"
	"github.com/ilcoutreach/outreach-api/internal/storage"
	"github.com/ilcoutreach/outreach-api/internal/storage/memory"
	"github.com/ilcoutreach/outreach-api/internal/validation"
)

func newTracker(t *testing.T) *Tracker {
	t.Helper()
	tr, err := New(memory.NewStore())
	require.NoError(t, err)
	return tr
}

func sampleDate() *time.Time {
	d := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	return &d
}

func sampleTabling() event.TablingEvent {
	return event.TablingEvent{
		Name:      "Quad Day Table",
		Date:      sampleDate(),
		StartTime: "10",
		EndTime:   "2",
		Location:  "Main Quad",
		Staff:     []string{"Alex", "Sam"},
	}
}

func samplePresentation() event.PresentationEvent {
	return event.PresentationEvent{
		Course:          "LEAD 260",
		InstructorName:  "Dr. Smith",
		InstructorEmail: "smith@illinois.edu",
		Date:            sampleDate(),
		Time:            "9",
		Location:        "Lincoln Hall 1002",
		Staff:           []string{"Alex"},
	}
}

func TestAddTablingNormalizesTimes(t *testing.T) {
	tr := newTracker(t)

	added, err := tr.AddTabling(sampleTabling())
	require.NoError(t, err)

	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "10 PM", added.StartTime)
	assert.Equal(t, "2 AM", added.EndTime)
	assert.Len(t, tr.Tabling(), 1)
}

func TestAddTablingRejectsMissingFields(t *testing.T) {
	tr := newTracker(t)

	e := sampleTabling()
	e.Location = ""
	_, err := tr.AddTabling(e)

	assert.ErrorIs(t, err, event.ErrMissingFields)
	assert.Empty(t, tr.Tabling())
}

func TestAddPresentationRejectsBadEmail(t *testing.T) {
	tr := newTracker(t)

	e := samplePresentation()
	e.InstructorEmail = "not-an-address"
	_, err := tr.AddPresentation(e)

	var fieldErr validation.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Empty(t, tr.Presentations())
}

func TestEditTablingUnknownID(t *testing.T) {
	tr := newTracker(t)

	_, err := tr.EditTabling("missing", sampleTabling())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAbsentIsNoOp(t *testing.T) {
	tr := newTracker(t)
	added, err := tr.AddTabling(sampleTabling())
	require.NoError(t, err)

	require.NoError(t, tr.DeleteTabling("missing"))
	assert.Len(t, tr.Tabling(), 1)

	require.NoError(t, tr.DeleteTabling(added.ID))
	assert.Empty(t, tr.Tabling())
}

func TestRequestStatusPatch(t *testing.T) {
	tr := newTracker(t)
	added, err := tr.AddTabling(sampleTabling())
	require.NoError(t, err)

	updated, err := tr.SetSpaceStatus(added.ID, event.StatusSubmitted)
	require.NoError(t, err)
	assert.Equal(t, event.StatusSubmitted, updated.SpaceStatus)
	assert.Equal(t, event.StatusPending, updated.CateringStatus)

	updated, err = tr.SetCateringStatus(added.ID, event.StatusNA)
	require.NoError(t, err)
	assert.Equal(t, event.StatusNA, updated.CateringStatus)
	assert.Equal(t, event.StatusSubmitted, updated.SpaceStatus)
}

func TestCompleteAndMarkIncompleteRoundTrip(t *testing.T) {
	tr := newTracker(t)
	added, err := tr.AddTabling(sampleTabling())
	require.NoError(t, err)

	done, err := tr.CompleteTabling(added.ID)
	require.NoError(t, err)
	assert.Empty(t, tr.Tabling())
	require.Len(t, tr.Completed(), 1)
	assert.Equal(t, added.ID, done.ID)
	assert.Equal(t, "10 PM - 2 AM", done.Time)
	assert.Equal(t, event.SourceTabling, done.Source)
	require.NotNil(t, done.Original.Tabling)
	assert.Equal(t, added, *done.Original.Tabling)

	src, err := tr.MarkIncomplete(done.ID)
	require.NoError(t, err)
	assert.Equal(t, event.SourceTabling, src)
	assert.Empty(t, tr.Completed())
	require.Len(t, tr.Tabling(), 1)
	assert.Equal(t, added, tr.Tabling()[0])
}

func TestCompletePresentationUsesCourseAsName(t *testing.T) {
	tr := newTracker(t)
	added, err := tr.AddPresentation(samplePresentation())
	require.NoError(t, err)
	assert.Equal(t, "9 PM", added.Time)

	done, err := tr.CompletePresentation(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "LEAD 260", done.Name)
	assert.Equal(t, event.SourcePresentations, done.Source)
	require.NotNil(t, done.Original.Presentation)
	assert.Nil(t, done.Original.Tabling)
}

func TestCompleteUnknownIDLeavesStateUntouched(t *testing.T) {
	tr := newTracker(t)
	_, err := tr.AddTabling(sampleTabling())
	require.NoError(t, err)

	_, err = tr.CompleteTabling("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, tr.Tabling(), 1)
	assert.Empty(t, tr.Completed())
}

func TestAddCompletedDirect(t *testing.T) {
	tr := newTracker(t)

	five := 5
	done, err := tr.AddCompleted(CompletedInput{
		Source:     event.SourceTabling,
		Name:       "Winter Involvement Fair",
		Date:       sampleDate(),
		Location:   "ARC",
		StartTime:  "11",
		EndTime:    "1",
		Interacted: &five,
	})
	require.NoError(t, err)

	assert.Equal(t, "11 PM - 1 AM", done.Time)
	assert.Equal(t, 5, done.InteractedCount())
	require.NotNil(t, done.Original.Tabling)
	assert.Equal(t, event.StatusPending, done.Original.Tabling.SpaceStatus)
	assert.Equal(t, event.StatusPending, done.Original.Tabling.CateringStatus)

	// Direct archive entries support reversal like any other.
	src, err := tr.MarkIncomplete(done.ID)
	require.NoError(t, err)
	assert.Equal(t, event.SourceTabling, src)
	assert.Len(t, tr.Tabling(), 1)
}

func TestEditCompletedKeepsOriginalUntouched(t *testing.T) {
	tr := newTracker(t)
	added, err := tr.AddTabling(sampleTabling())
	require.NoError(t, err)
	done, err := tr.CompleteTabling(added.ID)
	require.NoError(t, err)

	newDate := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	updated, err := tr.EditCompleted(done.ID, CompletedPatch{
		Name:     "Quad Day Table (rescheduled)",
		Date:     &newDate,
		Time:     "whenever",
		Location: "Union",
	})
	require.NoError(t, err)

	// The display time is stored as given, with no normalization.
	assert.Equal(t, "whenever", updated.Time)
	assert.Nil(t, updated.Interacted)
	require.NotNil(t, updated.Original.Tabling)
	assert.Equal(t, added, *updated.Original.Tabling)

	// Reversal restores the archived original, not the edited display fields.
	_, err = tr.MarkIncomplete(done.ID)
	require.NoError(t, err)
	assert.Equal(t, added, tr.Tabling()[0])
}

func TestTotalInteracted(t *testing.T) {
	tr := newTracker(t)

	five, ten := 5, 10
	for _, count := range []*int{&five, nil, &ten} {
		_, err := tr.AddCompleted(CompletedInput{
			Source:     event.SourcePresentations,
			Name:       "LEAD 260",
			Date:       sampleDate(),
			Location:   "Lincoln Hall",
			Time:       "9",
			Interacted: count,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 15, tr.TotalInteracted())
}

func TestUpdateInteracted(t *testing.T) {
	tr := newTracker(t)
	done, err := tr.AddCompleted(CompletedInput{
		Source:   event.SourcePresentations,
		Name:     "LEAD 260",
		Date:     sampleDate(),
		Location: "Lincoln Hall",
		Time:     "9",
	})
	require.NoError(t, err)

	neg := -3
	_, err = tr.UpdateInteracted(done.ID, &neg)
	assert.Error(t, err)

	twelve := 12
	updated, err := tr.UpdateInteracted(done.ID, &twelve)
	require.NoError(t, err)
	assert.Equal(t, 12, updated.InteractedCount())

	updated, err = tr.UpdateInteracted(done.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, updated.Interacted)
}

func TestStatePersistsAcrossTrackers(t *testing.T) {
	store := memory.NewStore()
	tr, err := New(store)
	require.NoError(t, err)

	added, err := tr.AddTabling(sampleTabling())
	require.NoError(t, err)
	_, err = tr.AddPresentation(samplePresentation())
	require.NoError(t, err)
	_, err = tr.CompleteTabling(added.ID)
	require.NoError(t, err)

	_, err = tr.AddItem(inventory.Item{Name: "Stickers", Quantity: 120, Category: "Swag"})
	require.NoError(t, err)
	_, err = tr.CreateNote(notes.KindAgenda, time.Date(2026, time.February, 17, 0, 0, 0, 0, time.UTC), "Sam")
	require.NoError(t, err)

	// Same store, fresh tracker: the snapshot slots carry everything over.
	reborn, err := New(store)
	require.NoError(t, err)
	assert.Empty(t, reborn.Tabling())
	assert.Len(t, reborn.Presentations(), 1)
	require.Len(t, reborn.Completed(), 1)
	assert.Equal(t, added.ID, reborn.Completed()[0].ID)
	require.NotNil(t, reborn.Completed()[0].Original.Tabling)
	assert.Equal(t, added, *reborn.Completed()[0].Original.Tabling)
	assert.Len(t, reborn.Items(), 1)
	require.Len(t, reborn.Notes(), 1)
	assert.Equal(t, "February 17, 2026", reborn.Notes()[0].Title)
}

func TestInventoryLifecycle(t *testing.T) {
	tr := newTracker(t)

	item, err := tr.AddItem(inventory.Item{Name: "Pens", Quantity: -4})
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
	assert.Equal(t, "General", item.Category)
	assert.True(t, item.LowStock())

	item.Quantity = 50
	item.Category = "Supplies"
	updated, err := tr.EditItem(item.ID, item)
	require.NoError(t, err)
	assert.False(t, updated.LowStock())

	_, err = tr.AddItem(inventory.Item{Name: "   "})
	assert.ErrorIs(t, err, inventory.ErrNameRequired)

	require.NoError(t, tr.DeleteItem(item.ID))
	assert.Empty(t, tr.Items())
}

func TestNotesLifecycle(t *testing.T) {
	tr := newTracker(t)

	first, err := tr.CreateNote(notes.KindNote, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), "Alex")
	require.NoError(t, err)
	assert.Equal(t, "January 5, 2026", first.Title)

	second, err := tr.CreateNote(notes.KindAgenda, time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC), "Sam")
	require.NoError(t, err)

	// Newest first.
	all := tr.Notes()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	_, err = tr.UpdateNoteContent(first.ID, "Recap of quad day planning")
	require.NoError(t, err)

	retitled, err := tr.UpdateNoteDetails(first.ID, time.Date(2026, time.January, 6, 0, 0, 0, 0, time.UTC), "Riley")
	require.NoError(t, err)
	assert.Equal(t, "January 6, 2026", retitled.Title)
	assert.Equal(t, "Recap of quad day planning", retitled.Content)

	_, err = tr.CreateNote(notes.KindNote, time.Time{}, "Alex")
	assert.Error(t, err)

	require.NoError(t, tr.DeleteNote(second.ID))
	assert.Len(t, tr.Notes(), 1)
}

// flakyStore delegates to a memory store but fails every Save to one slot.
type flakyStore struct {
	*memory.Store
	failSlot string
}

func (f *flakyStore) Save(slot string, v any) error {
	if slot == f.failSlot {
		return errors.New("disk full")
	}
	return f.Store.Save(slot, v)
}

func TestCompleteRollsBackSnapshotOnSecondSaveFailure(t *testing.T) {
	store := &flakyStore{Store: memory.NewStore()}
	tr, err := New(store)
	require.NoError(t, err)

	added, err := tr.AddTabling(sampleTabling())
	require.NoError(t, err)

	// The completed slot writes fine; the active slot write fails, so the
	// completed slot must be restored or a reboot would see the event twice.
	store.failSlot = storage.SlotTablingEvents
	_, err = tr.CompleteTabling(added.ID)
	require.Error(t, err)
	assert.Len(t, tr.Tabling(), 1)
	assert.Empty(t, tr.Completed())

	store.failSlot = ""
	reborn, err := New(store)
	require.NoError(t, err)
	require.Len(t, reborn.Tabling(), 1)
	assert.Equal(t, added, reborn.Tabling()[0])
	assert.Empty(t, reborn.Completed())
}

func TestMarkIncompleteRollsBackSnapshotOnSecondSaveFailure(t *testing.T) {
	store := &flakyStore{Store: memory.NewStore()}
	tr, err := New(store)
	require.NoError(t, err)

	added, err := tr.AddTabling(sampleTabling())
	require.NoError(t, err)
	done, err := tr.CompleteTabling(added.ID)
	require.NoError(t, err)

	store.failSlot = storage.SlotCompletedEvents
	_, err = tr.MarkIncomplete(done.ID)
	require.Error(t, err)
	assert.Empty(t, tr.Tabling())
	assert.Len(t, tr.Completed(), 1)

	store.failSlot = ""
	reborn, err := New(store)
	require.NoError(t, err)
	assert.Empty(t, reborn.Tabling())
	require.Len(t, reborn.Completed(), 1)
	assert.Equal(t, done.ID, reborn.Completed()[0].ID)
}

func TestEmailDraftsSurviveReload(t *testing.T) {
	store := memory.NewStore()
	tr, err := New(store)
	require.NoError(t, err)

	draft := mail.PresentationFields{InstructorName: "Dr. Smith", YourName: "Alex"}
	require.NoError(t, tr.SavePresentationDraft(draft))

	catering := mail.CateringForm{YourName: "Alex", RecipientEmail: "catering@illinois.edu"}
	require.NoError(t, tr.SaveCateringDraft(catering))

	reborn, err := New(store)
	require.NoError(t, err)
	assert.Equal(t, draft, reborn.PresentationDraft())
	assert.Equal(t, catering, reborn.CateringDraft())
}

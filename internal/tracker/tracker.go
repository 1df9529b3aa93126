// Package tracker owns the in-memory working state of the dashboard and the
// snapshot discipline around it: every successful mutation rewrites the
// affected slot in the store before the new state becomes visible. Mutations
// are all-or-nothing; a validation or persistence failure leaves the
// collections untouched.
package tracker

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ilcoutreach/outreach-api/internal/domain/event"
	"github.com/ilcoutreach/outreach-api/internal/domain/inventory"
	"github.com/ilcoutreach/outreach-api/internal/domain/notes"
	"github.com/ilcoutreach/outreach-api/internal/logger"
	"github.com/ilcoutreach/outreach-api/internal/mail"
	"github.com/ilcoutreach/outreach-api/internal/storage"
	"github.com/ilcoutreach/outreach-api/internal/timeformat"
	"github.com/ilcoutreach/outreach-api/internal/validation"
)

// ErrNotFound is returned when an operation names an id that is not in the
// targeted collection.
var ErrNotFound = errors.New("record not found")

// Tracker holds every collection the dashboard works with. Collections are
// replaced wholesale on mutation, never edited in place, so a slice returned
// by a listing method is a stable snapshot.
type Tracker struct {
	mu    sync.Mutex
	store storage.Store
	log   *log.Logger

	tabling       []event.TablingEvent
	presentations []event.PresentationEvent
	completed     []event.CompletedEvent
	items         []inventory.Item
	notes         []notes.Note

	presDraft     mail.PresentationFields
	cateringDraft mail.CateringForm
}

// New builds a tracker rehydrated from the store. A slot that fails to decode
// aborts construction; serving with silently dropped state is worse than
// failing the boot.
func New(store storage.Store) (*Tracker, error) {
	t := &Tracker{store: store, log: logger.Tracker()}

	for _, s := range []struct {
		slot string
		into any
	}{
		{storage.SlotTablingEvents, &t.tabling},
		{storage.SlotPresentationEvents, &t.presentations},
		{storage.SlotCompletedEvents, &t.completed},
		{storage.SlotInventoryItems, &t.items},
		{storage.SlotMeetingNotes, &t.notes},
		{storage.SlotPresFormData, &t.presDraft},
		{storage.SlotCateringFormData, &t.cateringDraft},
	} {
		if _, err := store.Load(s.slot, s.into); err != nil {
			return nil, fmt.Errorf("rehydrate slot %s: %w", s.slot, err)
		}
	}

	for _, c := range t.completed {
		if err := c.CheckSourceAgreement(); err != nil {
			return nil, fmt.Errorf("rehydrate slot %s: %w", storage.SlotCompletedEvents, err)
		}
	}

	t.log.Info("tracker rehydrated",
		"tabling", len(t.tabling),
		"presentations", len(t.presentations),
		"completed", len(t.completed),
		"items", len(t.items),
		"notes", len(t.notes))
	return t, nil
}

func (t *Tracker) persist(slot string, v any) error {
	if err := t.store.Save(slot, v); err != nil {
		t.log.Error("snapshot failed", "slot", slot, "error", err)
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	return nil
}

// unpersist restores a slot to its pre-mutation value after the second write
// of a two-slot transition fails. Without it a reboot would rehydrate the
// moved event into both collections.
func (t *Tracker) unpersist(slot string, v any) {
	if err := t.store.Save(slot, v); err != nil {
		t.log.Error("snapshot rollback failed", "slot", slot, "error", err)
	}
}

// --- tabling events ---

// Tabling returns the active tabling events.
func (t *Tracker) Tabling() []event.TablingEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tabling
}

// AddTabling validates, normalizes the clock fields, assigns an id and
// appends the event.
func (t *Tracker) AddTabling(e event.TablingEvent) (event.TablingEvent, error) {
	if err := e.Validate(); err != nil {
		return event.TablingEvent{}, err
	}
	e = e.Clone()
	e.ID = uuid.New().String()
	e.StartTime = timeformat.EnsureMeridiem(e.StartTime)
	e.EndTime = timeformat.EnsureMeridiem(e.EndTime)

	t.mu.Lock()
	defer t.mu.Unlock()

	next := append(slices.Clone(t.tabling), e)
	if err := t.persist(storage.SlotTablingEvents, next); err != nil {
		return event.TablingEvent{}, err
	}
	t.tabling = next
	t.log.Info("tabling event added", "id", e.ID, "name", e.Name)
	return e, nil
}

// EditTabling replaces the event with the given id, keeping its id and
// re-normalizing the clock fields.
func (t *Tracker) EditTabling(id string, e event.TablingEvent) (event.TablingEvent, error) {
	if err := e.Validate(); err != nil {
		return event.TablingEvent{}, err
	}
	e = e.Clone()
	e.ID = id
	e.StartTime = timeformat.EnsureMeridiem(e.StartTime)
	e.EndTime = timeformat.EnsureMeridiem(e.EndTime)

	t.mu.Lock()
	defer t.mu.Unlock()

	i := slices.IndexFunc(t.tabling, func(ev event.TablingEvent) bool { return ev.ID == id })
	if i < 0 {
		return event.TablingEvent{}, ErrNotFound
	}

	next := slices.Clone(t.tabling)
	next[i] = e
	if err := t.persist(storage.SlotTablingEvents, next); err != nil {
		return event.TablingEvent{}, err
	}
	t.tabling = next
	return e, nil
}

// DeleteTabling removes the event with the given id. Deleting an absent id
// is a no-op.
func (t *Tracker) DeleteTabling(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(t.tabling), func(ev event.TablingEvent) bool { return ev.ID == id })
	if len(next) == len(t.tabling) {
		return nil
	}
	if err := t.persist(storage.SlotTablingEvents, next); err != nil {
		return err
	}
	t.tabling = next
	return nil
}

// SetSpaceStatus updates the space reservation status on a tabling event.
func (t *Tracker) SetSpaceStatus(id string, status event.RequestStatus) (event.TablingEvent, error) {
	return t.patchTabling(id, func(ev *event.TablingEvent) { ev.SpaceStatus = status })
}

// SetCateringStatus updates the catering request status on a tabling event.
func (t *Tracker) SetCateringStatus(id string, status event.RequestStatus) (event.TablingEvent, error) {
	return t.patchTabling(id, func(ev *event.TablingEvent) { ev.CateringStatus = status })
}

func (t *Tracker) patchTabling(id string, apply func(*event.TablingEvent)) (event.TablingEvent, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := slices.IndexFunc(t.tabling, func(ev event.TablingEvent) bool { return ev.ID == id })
	if i < 0 {
		return event.TablingEvent{}, ErrNotFound
	}

	next := slices.Clone(t.tabling)
	updated := next[i].Clone()
	apply(&updated)
	next[i] = updated
	if err := t.persist(storage.SlotTablingEvents, next); err != nil {
		return event.TablingEvent{}, err
	}
	t.tabling = next
	return updated, nil
}

// --- presentation events ---

// Presentations returns the active presentation events.
func (t *Tracker) Presentations() []event.PresentationEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.presentations
}

// AddPresentation validates, normalizes the clock field, assigns an id and
// appends the event.
func (t *Tracker) AddPresentation(e event.PresentationEvent) (event.PresentationEvent, error) {
	if err := e.Validate(); err != nil {
		return event.PresentationEvent{}, err
	}
	if err := validation.ValidateEmail(e.InstructorEmail); err != nil {
		return event.PresentationEvent{}, err
	}
	e = e.Clone()
	e.ID = uuid.New().String()
	e.Time = timeformat.EnsureMeridiem(e.Time)

	t.mu.Lock()
	defer t.mu.Unlock()

	next := append(slices.Clone(t.presentations), e)
	if err := t.persist(storage.SlotPresentationEvents, next); err != nil {
		return event.PresentationEvent{}, err
	}
	t.presentations = next
	t.log.Info("presentation event added", "id", e.ID, "course", e.Course)
	return e, nil
}

// EditPresentation replaces the event with the given id.
func (t *Tracker) EditPresentation(id string, e event.PresentationEvent) (event.PresentationEvent, error) {
	if err := e.Validate(); err != nil {
		return event.PresentationEvent{}, err
	}
	if err := validation.ValidateEmail(e.InstructorEmail); err != nil {
		return event.PresentationEvent{}, err
	}
	e = e.Clone()
	e.ID = id
	e.Time = timeformat.EnsureMeridiem(e.Time)

	t.mu.Lock()
	defer t.mu.Unlock()

	i := slices.IndexFunc(t.presentations, func(ev event.PresentationEvent) bool { return ev.ID == id })
	if i < 0 {
		return event.PresentationEvent{}, ErrNotFound
	}

	next := slices.Clone(t.presentations)
	next[i] = e
	if err := t.persist(storage.SlotPresentationEvents, next); err != nil {
		return event.PresentationEvent{}, err
	}
	t.presentations = next
	return e, nil
}

// DeletePresentation removes the event with the given id. Deleting an absent
// id is a no-op.
func (t *Tracker) DeletePresentation(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(t.presentations), func(ev event.PresentationEvent) bool { return ev.ID == id })
	if len(next) == len(t.presentations) {
		return nil
	}
	if err := t.persist(storage.SlotPresentationEvents, next); err != nil {
		return err
	}
	t.presentations = next
	return nil
}

// --- completed events ---

// Completed returns the archived events.
func (t *Tracker) Completed() []event.CompletedEvent {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completed
}

// CompleteTabling moves a tabling event into the archive, wrapping the
// original record so the move can be reversed exactly.
func (t *Tracker) CompleteTabling(id string) (event.CompletedEvent, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := slices.IndexFunc(t.tabling, func(ev event.TablingEvent) bool { return ev.ID == id })
	if i < 0 {
		return event.CompletedEvent{}, ErrNotFound
	}

	done := t.tabling[i].Complete()
	nextCompleted := append(slices.Clone(t.completed), done)
	nextTabling := slices.Delete(slices.Clone(t.tabling), i, i+1)

	if err := t.persist(storage.SlotCompletedEvents, nextCompleted); err != nil {
		return event.CompletedEvent{}, err
	}
	if err := t.persist(storage.SlotTablingEvents, nextTabling); err != nil {
		t.unpersist(storage.SlotCompletedEvents, t.completed)
		return event.CompletedEvent{}, err
	}
	t.completed = nextCompleted
	t.tabling = nextTabling
	t.log.Info("event completed", "id", id, "source", event.SourceTabling)
	return done, nil
}

// CompletePresentation moves a presentation event into the archive.
func (t *Tracker) CompletePresentation(id string) (event.CompletedEvent, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := slices.IndexFunc(t.presentations, func(ev event.PresentationEvent) bool { return ev.ID == id })
	if i < 0 {
		return event.CompletedEvent{}, ErrNotFound
	}

	done := t.presentations[i].Complete()
	nextCompleted := append(slices.Clone(t.completed), done)
	nextPresentations := slices.Delete(slices.Clone(t.presentations), i, i+1)

	if err := t.persist(storage.SlotCompletedEvents, nextCompleted); err != nil {
		return event.CompletedEvent{}, err
	}
	if err := t.persist(storage.SlotPresentationEvents, nextPresentations); err != nil {
		t.unpersist(storage.SlotCompletedEvents, t.completed)
		return event.CompletedEvent{}, err
	}
	t.completed = nextCompleted
	t.presentations = nextPresentations
	t.log.Info("event completed", "id", id, "source", event.SourcePresentations)
	return done, nil
}

// MarkIncomplete reverses a completion: the archived entry is removed and
// the wrapped original record rejoins its source collection verbatim.
func (t *Tracker) MarkIncomplete(id string) (event.Source, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := slices.IndexFunc(t.completed, func(ev event.CompletedEvent) bool { return ev.ID == id })
	if i < 0 {
		return 0, ErrNotFound
	}

	done := t.completed[i]
	if err := done.CheckSourceAgreement(); err != nil {
		return 0, err
	}

	nextCompleted := slices.Delete(slices.Clone(t.completed), i, i+1)

	switch done.Source {
	case event.SourceTabling:
		nextTabling := append(slices.Clone(t.tabling), *done.Original.Tabling)
		if err := t.persist(storage.SlotTablingEvents, nextTabling); err != nil {
			return 0, err
		}
		if err := t.persist(storage.SlotCompletedEvents, nextCompleted); err != nil {
			t.unpersist(storage.SlotTablingEvents, t.tabling)
			return 0, err
		}
		t.tabling = nextTabling
	case event.SourcePresentations:
		nextPresentations := append(slices.Clone(t.presentations), *done.Original.Presentation)
		if err := t.persist(storage.SlotPresentationEvents, nextPresentations); err != nil {
			return 0, err
		}
		if err := t.persist(storage.SlotCompletedEvents, nextCompleted); err != nil {
			t.unpersist(storage.SlotPresentationEvents, t.presentations)
			return 0, err
		}
		t.presentations = nextPresentations
	}
	t.completed = nextCompleted
	t.log.Info("event marked incomplete", "id", id, "source", done.Source)
	return done.Source, nil
}

// CompletedInput is the payload for archiving an event that was never
// tracked in an active collection. The tabling fields and the presentation
// time are alternatives selected by Source.
type CompletedInput struct {
	Source     event.Source `json:"source"`
	Name       string       `json:"name"`
	Date       *time.Time   `json:"date"`
	Location   string       `json:"location"`
	StartTime  string       `json:"startTime"`
	EndTime    string       `json:"endTime"`
	Time       string       `json:"time"`
	Staff      []string     `json:"staff"`
	Interacted *int         `json:"interacted"`
}

// AddCompleted archives an untracked event directly, synthesizing an
// original record so the entry can still be marked incomplete later.
func (t *Tracker) AddCompleted(in CompletedInput) (event.CompletedEvent, error) {
	id := uuid.New().String()
	done := event.CompletedEvent{
		ID:         id,
		Name:       in.Name,
		Date:       in.Date,
		Location:   in.Location,
		Interacted: in.Interacted,
		Source:     in.Source,
	}

	switch in.Source {
	case event.SourceTabling:
		// The synthesized record keeps the zero-value pending statuses so a
		// later reversal surfaces it like any newly added event.
		orig := event.TablingEvent{
			ID:        id,
			Name:      in.Name,
			Date:      in.Date,
			StartTime: timeformat.EnsureMeridiem(in.StartTime),
			EndTime:   timeformat.EnsureMeridiem(in.EndTime),
			Location:  in.Location,
			Staff:     slices.Clone(in.Staff),
		}
		if err := orig.Validate(); err != nil {
			return event.CompletedEvent{}, err
		}
		done.Time = orig.TimeRange()
		done.Original = event.OriginalEvent{Tabling: &orig}
	case event.SourcePresentations:
		orig := event.PresentationEvent{
			ID:       id,
			Course:   in.Name,
			Date:     in.Date,
			Time:     timeformat.EnsureMeridiem(in.Time),
			Location: in.Location,
			Staff:    slices.Clone(in.Staff),
		}
		// The synthesized record has no instructor; only the fields the
		// archive displays are required here.
		if in.Name == "" || in.Date == nil || in.Time == "" || in.Location == "" {
			return event.CompletedEvent{}, event.ErrMissingFields
		}
		done.Time = orig.Time
		done.Original = event.OriginalEvent{Presentation: &orig}
	default:
		return event.CompletedEvent{}, validation.FieldError("unknown event source")
	}

	if err := done.Validate(); err != nil {
		return event.CompletedEvent{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	next := append(slices.Clone(t.completed), done)
	if err := t.persist(storage.SlotCompletedEvents, next); err != nil {
		return event.CompletedEvent{}, err
	}
	t.completed = next
	return done, nil
}

// CompletedPatch carries the editable display fields of an archived event.
// The wrapped original record is deliberately not editable: it must stay
// exactly what was archived so marking incomplete restores it verbatim.
type CompletedPatch struct {
	Name       string     `json:"name"`
	Date       *time.Time `json:"date"`
	Time       string     `json:"time"`
	Location   string     `json:"location"`
	Interacted *int       `json:"interacted"`
}

// EditCompleted updates the display fields of an archived event. The time is
// stored as given, with no normalization.
func (t *Tracker) EditCompleted(id string, p CompletedPatch) (event.CompletedEvent, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := slices.IndexFunc(t.completed, func(ev event.CompletedEvent) bool { return ev.ID == id })
	if i < 0 {
		return event.CompletedEvent{}, ErrNotFound
	}

	updated := t.completed[i]
	updated.Name = p.Name
	updated.Date = p.Date
	updated.Time = p.Time
	updated.Location = p.Location
	updated.Interacted = p.Interacted
	if err := updated.Validate(); err != nil {
		return event.CompletedEvent{}, err
	}

	next := slices.Clone(t.completed)
	next[i] = updated
	if err := t.persist(storage.SlotCompletedEvents, next); err != nil {
		return event.CompletedEvent{}, err
	}
	t.completed = next
	return updated, nil
}

// DeleteCompleted removes an archived event. Deleting an absent id is a
// no-op.
func (t *Tracker) DeleteCompleted(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(t.completed), func(ev event.CompletedEvent) bool { return ev.ID == id })
	if len(next) == len(t.completed) {
		return nil
	}
	if err := t.persist(storage.SlotCompletedEvents, next); err != nil {
		return err
	}
	t.completed = next
	return nil
}

// UpdateInteracted records (or clears, with nil) the attendance count of an
// archived event.
func (t *Tracker) UpdateInteracted(id string, count *int) (event.CompletedEvent, error) {
	if count != nil {
		if err := validation.ValidateNonNegative(*count, "interacted"); err != nil {
			return event.CompletedEvent{}, err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := slices.IndexFunc(t.completed, func(ev event.CompletedEvent) bool { return ev.ID == id })
	if i < 0 {
		return event.CompletedEvent{}, ErrNotFound
	}

	updated := t.completed[i]
	updated.Interacted = count
	next := slices.Clone(t.completed)
	next[i] = updated
	if err := t.persist(storage.SlotCompletedEvents, next); err != nil {
		return event.CompletedEvent{}, err
	}
	t.completed = next
	return updated, nil
}

// TotalInteracted sums the recorded attendance counts, treating unset as
// zero.
func (t *Tracker) TotalInteracted() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	total := 0
	for _, c := range t.completed {
		total += c.InteractedCount()
	}
	return total
}

// --- inventory ---

// Items returns the inventory.
func (t *Tracker) Items() []inventory.Item {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.items
}

// AddItem validates and appends an inventory item.
func (t *Tracker) AddItem(item inventory.Item) (inventory.Item, error) {
	if err := item.Validate(); err != nil {
		return inventory.Item{}, err
	}
	item.Normalize()
	item.ID = uuid.New().String()

	t.mu.Lock()
	defer t.mu.Unlock()

	next := append(slices.Clone(t.items), item)
	if err := t.persist(storage.SlotInventoryItems, next); err != nil {
		return inventory.Item{}, err
	}
	t.items = next
	return item, nil
}

// EditItem replaces the item with the given id.
func (t *Tracker) EditItem(id string, item inventory.Item) (inventory.Item, error) {
	if err := item.Validate(); err != nil {
		return inventory.Item{}, err
	}
	item.Normalize()
	item.ID = id

	t.mu.Lock()
	defer t.mu.Unlock()

	i := slices.IndexFunc(t.items, func(it inventory.Item) bool { return it.ID == id })
	if i < 0 {
		return inventory.Item{}, ErrNotFound
	}

	next := slices.Clone(t.items)
	next[i] = item
	if err := t.persist(storage.SlotInventoryItems, next); err != nil {
		return inventory.Item{}, err
	}
	t.items = next
	return item, nil
}

// DeleteItem removes the item with the given id. Deleting an absent id is a
// no-op.
func (t *Tracker) DeleteItem(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(t.items), func(it inventory.Item) bool { return it.ID == id })
	if len(next) == len(t.items) {
		return nil
	}
	if err := t.persist(storage.SlotInventoryItems, next); err != nil {
		return err
	}
	t.items = next
	return nil
}

// --- meeting notes ---

// Notes returns all meeting notes and agendas, newest first.
func (t *Tracker) Notes() []notes.Note {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notes
}

// CreateNote opens a new empty note or agenda, titled from its date, at the
// front of the list.
func (t *Tracker) CreateNote(kind notes.Kind, date time.Time, noteTaker string) (notes.Note, error) {
	if err := validation.ValidateRequired(noteTaker, "note taker"); err != nil {
		return notes.Note{}, err
	}
	if err := validation.ValidateDate(&date, "date"); err != nil {
		return notes.Note{}, err
	}

	n := notes.Note{
		ID:        uuid.New().String(),
		NoteTaker: noteTaker,
		Kind:      kind,
	}
	n.SetDate(date)

	t.mu.Lock()
	defer t.mu.Unlock()

	next := append([]notes.Note{n}, t.notes...)
	if err := t.persist(storage.SlotMeetingNotes, next); err != nil {
		return notes.Note{}, err
	}
	t.notes = next
	return n, nil
}

// UpdateNoteContent replaces the body of a note.
func (t *Tracker) UpdateNoteContent(id, content string) (notes.Note, error) {
	return t.patchNote(id, func(n *notes.Note) { n.Content = content })
}

// UpdateNoteDetails changes a note's date and note taker, re-deriving the
// title from the new date.
func (t *Tracker) UpdateNoteDetails(id string, date time.Time, noteTaker string) (notes.Note, error) {
	if err := validation.ValidateRequired(noteTaker, "note taker"); err != nil {
		return notes.Note{}, err
	}
	if err := validation.ValidateDate(&date, "date"); err != nil {
		return notes.Note{}, err
	}
	return t.patchNote(id, func(n *notes.Note) {
		n.SetDate(date)
		n.NoteTaker = noteTaker
	})
}

// DeleteNote removes the note with the given id. Deleting an absent id is a
// no-op.
func (t *Tracker) DeleteNote(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(t.notes), func(n notes.Note) bool { return n.ID == id })
	if len(next) == len(t.notes) {
		return nil
	}
	if err := t.persist(storage.SlotMeetingNotes, next); err != nil {
		return err
	}
	t.notes = next
	return nil
}

func (t *Tracker) patchNote(id string, apply func(*notes.Note)) (notes.Note, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := slices.IndexFunc(t.notes, func(n notes.Note) bool { return n.ID == id })
	if i < 0 {
		return notes.Note{}, ErrNotFound
	}

	next := slices.Clone(t.notes)
	updated := next[i]
	apply(&updated)
	next[i] = updated
	if err := t.persist(storage.SlotMeetingNotes, next); err != nil {
		return notes.Note{}, err
	}
	t.notes = next
	return updated, nil
}

// --- email drafts ---

// PresentationDraft returns the saved presentation email form.
func (t *Tracker) PresentationDraft() mail.PresentationFields {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.presDraft
}

// SavePresentationDraft persists the presentation email form as typed, valid
// or not, so half-finished drafts survive restarts.
func (t *Tracker) SavePresentationDraft(f mail.PresentationFields) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.persist(storage.SlotPresFormData, f); err != nil {
		return err
	}
	t.presDraft = f
	return nil
}

// CateringDraft returns the saved catering email form.
func (t *Tracker) CateringDraft() mail.CateringForm {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cateringDraft
}

// SaveCateringDraft persists the catering email form as typed.
func (t *Tracker) SaveCateringDraft(f mail.CateringForm) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.persist(storage.SlotCateringFormData, f); err != nil {
		return err
	}
	t.cateringDraft = f
	return nil
}

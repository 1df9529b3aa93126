// Package storage defines the snapshot store: every dashboard collection is
// persisted whole, as JSON, under a named slot, and rehydrated on startup.
// The slot names match the keys the legacy dashboard used.
package storage

// Slot names for the persisted collections and form drafts.
const (
	SlotTablingEvents      = "tablingEvents"
	SlotPresentationEvents = "presentationEvents"
	SlotCompletedEvents    = "completedEvents"
	SlotInventoryItems     = "inventoryItems"
	SlotMeetingNotes       = "meetingNotes"
	SlotPresFormData       = "presFormData"
	SlotCateringFormData   = "cateringFormData"
)

// Store persists JSON snapshots under named slots.
type Store interface {
	// Load decodes the slot's payload into v. It returns false with a nil
	// error when the slot has never been written.
	Load(slot string, v any) (bool, error)

	// Save encodes v and replaces the slot's payload atomically.
	Save(slot string, v any) error

	// Close releases the underlying resources.
	Close() error
}

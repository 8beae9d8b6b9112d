package key

import (
	"fmt"
	"time"
)

// EventKind distinguishes key presses from releases.
type EventKind uint8

const (
	// Press is a key-down event.
	Press EventKind = iota
	// Release is a key-up event.
	Release
)

// String returns "press" or "release".
func (k EventKind) String() string {
	if k == Release {
		return "release"
	}
	return "press"
}

// Event represents a single keyboard event from a host surface.
type Event struct {
	// Kind is press or release.
	Kind EventKind

	// Name is the raw key name as reported by the host ("a", "T", "1",
	// "Numpad5", "Enter", "Control"). Use CanonicalName to normalize it.
	Name string

	// Modifiers contains the modifier keys held during the event.
	Modifiers Modifier

	// When is the event timestamp.
	When time.Time
}

// NewPress creates a key-down event with the current timestamp.
func NewPress(name string, mods Modifier) Event {
	return Event{Kind: Press, Name: name, Modifiers: mods, When: time.Now()}
}

// NewRelease creates a key-up event with the current timestamp.
func NewRelease(name string, mods Modifier) Event {
	return Event{Kind: Release, Name: name, Modifiers: mods, When: time.Now()}
}

// IsModifierKey returns true if the event is for a modifier key itself
// (Control, Alt, Shift, Meta) rather than a regular key.
func (e Event) IsModifierKey() bool {
	return IsModifierName(e.Name)
}

// Canonical returns the canonical name of the event's key.
func (e Event) Canonical() string {
	return CanonicalName(e.Name)
}

// String returns a readable form like "press Ctrl+Alt+T".
func (e Event) String() string {
	if e.Modifiers.IsEmpty() {
		return fmt.Sprintf("%s %s", e.Kind, e.Canonical())
	}
	return fmt.Sprintf("%s %s+%s", e.Kind, e.Modifiers, e.Canonical())
}

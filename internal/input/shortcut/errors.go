package shortcut

import "errors"

// Validation errors.
var (
	// ErrEmptySpec indicates an empty shortcut specification.
	ErrEmptySpec = errors.New("shortcut: empty specification")

	// ErrNoModifier indicates a shortcut without any modifier key.
	// A bare-key shortcut would make every combination beginning with
	// that key unreachable, so it is never valid.
	ErrNoModifier = errors.New("shortcut: at least one modifier is required")

	// ErrNoKey indicates a shortcut with modifiers but no regular key.
	ErrNoKey = errors.New("shortcut: at least one non-modifier key is required")

	// ErrTooManyKeys indicates more than two non-modifier keys.
	ErrTooManyKeys = errors.New("shortcut: at most two non-modifier keys are supported")

	// ErrUnknownModifier indicates an unrecognized modifier name.
	ErrUnknownModifier = errors.New("shortcut: unknown modifier")
)

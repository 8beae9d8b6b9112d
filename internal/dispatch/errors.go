package dispatch

import "errors"

var (
	// ErrInvalidAction indicates an action spec that cannot be
	// registered: missing ID, unknown kind, or a malformed shortcut.
	ErrInvalidAction = errors.New("dispatch: invalid action")

	// ErrConflict indicates a shortcut that duplicates or shadows an
	// already-registered one. The wrapped message names the owner.
	ErrConflict = errors.New("dispatch: shortcut conflict")

	// ErrFocusChanged indicates the focused field changed while a
	// transform was running; the result is discarded unwritten.
	ErrFocusChanged = errors.New("dispatch: focus changed during operation")

	// ErrNothingToTransform indicates an empty field with no selection.
	// Callers treat it as a silent no-op.
	ErrNothingToTransform = errors.New("dispatch: nothing to transform")
)

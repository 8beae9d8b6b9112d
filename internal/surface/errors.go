package surface

import "errors"

// Surface errors.
var (
	// ErrNoTarget indicates no focused editable field and no page-level
	// selection. Callers treat this as a silent no-op.
	ErrNoTarget = errors.New("surface: no editable target")

	// ErrInvalidOffsets indicates selection offsets outside the field's
	// content or with start > end.
	ErrInvalidOffsets = errors.New("surface: invalid selection offsets")

	// ErrReadOnly indicates a field that rejects mutation.
	ErrReadOnly = errors.New("surface: field is read-only")
)

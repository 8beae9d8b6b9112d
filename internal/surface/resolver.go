package surface

// Host is one level of the focus hierarchy: a document or a
// shadow-boundary host element. A host either has a focused editable
// field of its own or delegates into an inner host.
type Host interface {
	// ActiveField returns the focused editable field at this level.
	ActiveField() (Field, bool)

	// InnerHost returns the nested host holding focus, if any.
	InnerHost() (Host, bool)
}

// StaticSelector is implemented by hosts that can report a page-level
// text selection outside any editable field.
type StaticSelector interface {
	StaticSelection() (string, bool)
}

// maxHostDepth bounds the shadow-host descent; real pages nest a
// handful of levels, a cycle would otherwise hang us.
const maxHostDepth = 32

// Target is what an operation acts on: an editable field, or, failing
// that, a read-only page-level selection.
type Target struct {
	// Field is the focused editable field, nil for static targets.
	Field Field

	// Static holds the page-level selected text when Field is nil.
	Static string
}

// IsStatic returns true for a read-only page-selection target.
func (t Target) IsStatic() bool {
	return t.Field == nil
}

// Resolve walks the host hierarchy to the deepest focused editable
// field. If none exists it falls back to the page-level selection.
// Returns ErrNoTarget when neither is available; callers treat that as
// a silent no-op.
func Resolve(root Host) (Target, error) {
	host := root
	var field Field
	for depth := 0; host != nil && depth < maxHostDepth; depth++ {
		if f, ok := host.ActiveField(); ok {
			field = f
		}
		inner, ok := host.InnerHost()
		if !ok {
			break
		}
		host = inner
	}
	if field != nil {
		return Target{Field: field}, nil
	}

	if sel, ok := root.(StaticSelector); ok {
		if text, has := sel.StaticSelection(); has && text != "" {
			return Target{Static: text}, nil
		}
	}

	return Target{}, ErrNoTarget
}

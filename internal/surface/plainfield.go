package surface

import "strings"

// PlainField is an in-memory plain input field (input/textarea
// semantics). It is the reference surface for the playground and the
// tests; behavior knobs simulate host frameworks that intercept or
// swallow individual mutation paths.
type PlainField struct {
	text []rune
	sel  SelectionOffsets

	focused bool

	// CancelBeforeInput simulates a framework that cancels the
	// pre-mutation notification and performs the insertion itself.
	CancelBeforeInput bool

	// CancelAndDrop simulates a broken framework that cancels the
	// pre-mutation notification but never performs the insertion.
	CancelAndDrop bool

	// SwallowReplace simulates a framework that silently ignores the
	// structured replacement command.
	SwallowReplace bool

	// RejectPaste simulates a field that refuses synthesized paste
	// events.
	RejectPaste bool

	// PasteNormalizer, when set, rewrites pasted text the way hosts
	// normalize whitespace or line breaks on insertion.
	PasteNormalizer func(string) string

	// ApplyOnAfterInput simulates a host that consumes the raw
	// pre-/post-mutation event pair directly.
	ApplyOnAfterInput bool
}

// static interface checks
var (
	_ Field       = (*PlainField)(nil)
	_ EventSink   = (*PlainField)(nil)
	_ Replacer    = (*PlainField)(nil)
	_ PasteTarget = (*PlainField)(nil)
	_ Focusable   = (*PlainField)(nil)
	_ Restorer    = (*PlainField)(nil)
)

// NewPlainField creates a plain field with the given content and a
// collapsed cursor at the end.
func NewPlainField(text string) *PlainField {
	runes := []rune(text)
	return &PlainField{
		text:    runes,
		sel:     Collapsed(len(runes)),
		focused: true,
	}
}

// Text returns the field content.
func (f *PlainField) Text() string {
	return string(f.text)
}

// Len returns the content length in characters.
func (f *PlainField) Len() int {
	return len(f.text)
}

// Selection returns the current selection.
func (f *PlainField) Selection() SelectionOffsets {
	return f.sel
}

// SetSelection moves the selection, validating against the content.
func (f *PlainField) SetSelection(sel SelectionOffsets) error {
	sel = sel.Normalize()
	if err := sel.Validate(len(f.text)); err != nil {
		return err
	}
	f.sel = sel
	return nil
}

// SelectAll selects the whole content.
func (f *PlainField) SelectAll() {
	f.sel = SelectionOffsets{Start: 0, End: len(f.text), Direction: DirForward}
}

// Rich returns false.
func (f *PlainField) Rich() bool {
	return false
}

// Focused reports the focus state.
func (f *PlainField) Focused() bool {
	return f.focused
}

// Focus marks the field focused.
func (f *PlainField) Focus() {
	f.focused = true
}

// Blur marks the field unfocused.
func (f *PlainField) Blur() {
	f.focused = false
}

// BeforeInput implements EventSink.
func (f *PlainField) BeforeInput(intent EditIntent) bool {
	if f.CancelAndDrop {
		return true
	}
	if f.CancelBeforeInput {
		f.applyInsert(intent.Data)
		return true
	}
	return false
}

// AfterInput implements EventSink.
func (f *PlainField) AfterInput(intent EditIntent) {
	if f.ApplyOnAfterInput {
		f.applyInsert(intent.Data)
	}
}

// ReplaceSelection implements Replacer.
func (f *PlainField) ReplaceSelection(text string) error {
	if f.SwallowReplace {
		return nil
	}
	f.applyInsert(text)
	return nil
}

// PasteTransfer implements PasteTarget.
func (f *PlainField) PasteTransfer(t Transfer) error {
	if f.RejectPaste {
		return ErrReadOnly
	}
	text := t.Text
	if f.PasteNormalizer != nil {
		text = f.PasteNormalizer(text)
	}
	f.applyInsert(text)
	return nil
}

// RestoreSnapshot implements Restorer.
func (f *PlainField) RestoreSnapshot(s Snapshot) error {
	f.text = []rune(s.Text)
	f.sel = s.Selection.Clamp(len(f.text))
	return nil
}

// applyInsert replaces the current selection with text and collapses
// the cursor to the end of the inserted text.
func (f *PlainField) applyInsert(text string) {
	ins := []rune(text)
	sel := f.sel.Clamp(len(f.text))

	out := make([]rune, 0, len(f.text)-sel.Len()+len(ins))
	out = append(out, f.text[:sel.Start]...)
	out = append(out, ins...)
	out = append(out, f.text[sel.End:]...)

	f.text = out
	f.sel = Collapsed(sel.Start + len(ins))
}

// NormalizeParagraphs is a PasteNormalizer that mimics hosts turning
// single line breaks into paragraph breaks.
func NormalizeParagraphs(text string) string {
	return strings.ReplaceAll(text, "\n", "\n\n")
}

package surface

import (
	"strings"
	"unicode"
)

// RichField is an in-memory rich editable surface: a flat tree of text
// nodes managed by a simulated editing framework. The framework owns
// the document model, so it cancels pre-mutation notifications and
// performs insertions itself, and it exposes a native word-selection
// primitive instead of allowing offset arithmetic from outside.
type RichField struct {
	nodes []string
	sel   SelectionOffsets

	focused bool

	// DropStructuredEdits simulates an editor build that cancels the
	// pre-mutation notification but loses the insertion.
	DropStructuredEdits bool

	// AcceptPaste controls whether the framework handles synthesized
	// paste events. Most rich editors do.
	AcceptPaste bool

	// reconciled counts blur/focus reconciliation cycles, observable
	// in tests.
	reconciled int
}

var (
	_ Field          = (*RichField)(nil)
	_ EventSink      = (*RichField)(nil)
	_ PasteTarget    = (*RichField)(nil)
	_ Focusable      = (*RichField)(nil)
	_ Restorer       = (*RichField)(nil)
	_ WordSelectable = (*RichField)(nil)
	_ NodeCollapser  = (*RichField)(nil)
)

// NewRichField creates a rich surface from one text node per argument.
func NewRichField(nodes ...string) *RichField {
	f := &RichField{
		nodes:       append([]string(nil), nodes...),
		AcceptPaste: true,
		focused:     true,
	}
	f.sel = Collapsed(f.Len())
	return f
}

// Text returns the flattened content of all text nodes.
func (f *RichField) Text() string {
	return strings.Join(f.nodes, "")
}

// Len returns the flattened content length in characters.
func (f *RichField) Len() int {
	n := 0
	for _, node := range f.nodes {
		n += len([]rune(node))
	}
	return n
}

// Nodes returns a copy of the text-node contents.
func (f *RichField) Nodes() []string {
	return append([]string(nil), f.nodes...)
}

// Selection returns the selection in flattened character offsets.
func (f *RichField) Selection() SelectionOffsets {
	return f.sel
}

// SetSelection moves the selection.
func (f *RichField) SetSelection(sel SelectionOffsets) error {
	sel = sel.Normalize()
	if err := sel.Validate(f.Len()); err != nil {
		return err
	}
	f.sel = sel
	return nil
}

// Rich returns true.
func (f *RichField) Rich() bool {
	return true
}

// Focus marks the surface focused.
func (f *RichField) Focus() {
	if !f.focused {
		f.reconciled++
	}
	f.focused = true
}

// Blur marks the surface unfocused.
func (f *RichField) Blur() {
	f.focused = false
}

// Reconciliations returns how many blur/refocus cycles occurred.
func (f *RichField) Reconciliations() int {
	return f.reconciled
}

// BeforeInput implements EventSink. The framework cancels the
// notification and applies the edit through its own document model.
func (f *RichField) BeforeInput(intent EditIntent) bool {
	if f.DropStructuredEdits {
		return true
	}
	f.applyInsert(intent.Data)
	return true
}

// AfterInput implements EventSink. The framework already handled the
// edit in BeforeInput, so this is a no-op.
func (f *RichField) AfterInput(EditIntent) {}

// PasteTransfer implements PasteTarget.
func (f *RichField) PasteTransfer(t Transfer) error {
	if !f.AcceptPaste {
		return ErrReadOnly
	}
	f.applyInsert(t.Text)
	return nil
}

// RestoreSnapshot implements Restorer. The whole node tree is replaced
// by a single node holding the snapshot text.
func (f *RichField) RestoreSnapshot(s Snapshot) error {
	f.nodes = []string{s.Text}
	f.sel = s.Selection.Clamp(f.Len())
	return nil
}

// CollapseToLastTextNode implements NodeCollapser: the caret moves to
// the end of the last non-empty text node.
func (f *RichField) CollapseToLastTextNode() {
	end := 0
	pos := 0
	for _, node := range f.nodes {
		pos += len([]rune(node))
		if node != "" {
			end = pos
		}
	}
	f.sel = Collapsed(end)
}

// ExtendWordSelection implements the framework's native extend/shrink
// by word. The active end moves by one word in the requested direction;
// moving against a selection's direction shrinks it.
func (f *RichField) ExtendWordSelection(dir Direction) error {
	runes := []rune(f.Text())
	sel := f.sel

	active := sel.ActiveEnd()
	var moved int
	if dir == DirForward {
		moved = nativeNextWordEnd(runes, active)
	} else {
		moved = nativePrevWordStart(runes, active)
	}

	anchor := sel.InactiveEnd()
	if sel.IsCollapsed() {
		anchor = active
	}

	next := SelectionOffsets{Start: anchor, End: moved, Direction: DirForward}
	if moved < anchor {
		next = SelectionOffsets{Start: moved, End: anchor, Direction: DirBackward}
	} else if moved == anchor {
		next = Collapsed(anchor)
	}
	f.sel = next
	return nil
}

// nativeNextWordEnd mirrors browser Selection.modify("extend",
// "forward", "word"): skip non-letters, then the following word.
func nativeNextWordEnd(runes []rune, pos int) int {
	n := len(runes)
	for pos < n && !isLetterOrDigit(runes[pos]) {
		pos++
	}
	for pos < n && isLetterOrDigit(runes[pos]) {
		pos++
	}
	return pos
}

func nativePrevWordStart(runes []rune, pos int) int {
	for pos > 0 && !isLetterOrDigit(runes[pos-1]) {
		pos--
	}
	for pos > 0 && isLetterOrDigit(runes[pos-1]) {
		pos--
	}
	return pos
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// applyInsert replaces the selected flat range with text inside the
// node tree, merging partially covered boundary nodes.
func (f *RichField) applyInsert(text string) {
	sel := f.sel.Clamp(f.Len())

	var prefix, suffix strings.Builder
	var kept []string
	pos := 0
	inserted := false
	for _, node := range f.nodes {
		nodeRunes := []rune(node)
		nodeStart, nodeEnd := pos, pos+len(nodeRunes)
		pos = nodeEnd

		switch {
		case nodeEnd <= sel.Start || nodeStart >= sel.End:
			if nodeEnd <= sel.Start {
				kept = append(kept, node)
			} else {
				if !inserted {
					kept = append(kept, prefix.String()+text+suffix.String())
					inserted = true
				}
				kept = append(kept, node)
			}
		default:
			if nodeStart < sel.Start {
				prefix.WriteString(string(nodeRunes[:sel.Start-nodeStart]))
			}
			if nodeEnd > sel.End {
				suffix.WriteString(string(nodeRunes[sel.End-nodeStart:]))
			}
		}
	}
	if !inserted {
		kept = append(kept, prefix.String()+text+suffix.String())
	}

	f.nodes = kept
	f.sel = Collapsed(sel.Start + len([]rune(text)))
}

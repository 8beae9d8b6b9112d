package surface

// Field is the minimal contract every editable surface satisfies.
// Offsets are in plain-text character (rune) units.
type Field interface {
	// Text returns the field's full logical content.
	Text() string

	// Selection returns the current selection offsets.
	Selection() SelectionOffsets

	// SetSelection moves the selection.
	SetSelection(SelectionOffsets) error

	// Rich reports whether the field is a rich editable surface owned
	// by a host editing framework, as opposed to a plain input.
	Rich() bool
}

// EditIntent describes a mutation about to happen (or having happened),
// carried by the pre-/post-mutation notifications host frameworks
// observe.
type EditIntent struct {
	// InputType is the kind of edit, e.g. "insertText" or
	// "insertFromPaste".
	InputType string

	// Data is the text being inserted.
	Data string
}

// Transfer is an in-memory data-transfer object for a synthesized
// paste-like event. No OS clipboard is involved.
type Transfer struct {
	Text string
}

// EventSink receives pre- and post-mutation notifications. BeforeInput
// returns true when the host cancels the notification, signalling that
// it will perform the insertion itself.
type EventSink interface {
	BeforeInput(EditIntent) (cancelled bool)
	AfterInput(EditIntent)
}

// Replacer performs a structured text-replacement command on the
// current selection.
type Replacer interface {
	ReplaceSelection(text string) error
}

// PasteTarget accepts a synthesized paste event.
type PasteTarget interface {
	PasteTransfer(Transfer) error
}

// Focusable supports losing and regaining focus. The mutation pipeline
// uses it to force rich editors that cache their document model to
// re-read the DOM.
type Focusable interface {
	Blur()
	Focus()
}

// Restorer restores a previously captured snapshot verbatim. Fields
// that support it make rollback exact; others are restored through the
// mutation pipeline.
type Restorer interface {
	RestoreSnapshot(Snapshot) error
}

// WordSelectable exposes the host's native "extend selection by word"
// primitive. Rich surfaces maintain their own selection model that
// offset-based manipulation cannot safely address, so the word selector
// delegates to this when present.
type WordSelectable interface {
	ExtendWordSelection(dir Direction) error
}

// NodeCollapser collapses the selection into the last text node of a
// rich surface's node tree, used for cursor placement after insertion.
type NodeCollapser interface {
	CollapseToLastTextNode()
}

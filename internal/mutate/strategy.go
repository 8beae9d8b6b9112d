package mutate

import (
	"github.com/keyscribe/keyscribe/internal/surface"
)

// Input types carried by edit intents.
const (
	InputTypeInsert = "insertText"
	InputTypePaste  = "insertFromPaste"
)

// Strategy is one way of pushing text into a field. Attempt replaces
// the field's current selection with text; a nil return only means the
// attempt ran, the pipeline decides success by verification.
type Strategy interface {
	Name() string
	Attempt(target surface.Field, text string) error
}

// StructuredEdit emits a pre-mutation notification and, unless the host
// cancels it (announcing it will perform the insertion itself), runs a
// direct structured replacement followed by a post-mutation
// notification.
type StructuredEdit struct{}

// Name returns "structured-edit".
func (StructuredEdit) Name() string { return "structured-edit" }

// Attempt implements Strategy.
func (StructuredEdit) Attempt(target surface.Field, text string) error {
	intent := surface.EditIntent{InputType: InputTypeInsert, Data: text}

	sink, hasSink := target.(surface.EventSink)
	if hasSink && sink.BeforeInput(intent) {
		// Cancelled: the host framework does the insertion itself.
		return nil
	}

	rep, ok := target.(surface.Replacer)
	if !ok {
		return ErrStrategyNotSupported
	}
	if err := rep.ReplaceSelection(text); err != nil {
		return err
	}
	if hasSink {
		sink.AfterInput(intent)
	}
	return nil
}

// ClipboardPaste synthesizes a paste-like event carrying the text in an
// in-memory transfer object. No OS clipboard permission is involved.
type ClipboardPaste struct{}

// Name returns "clipboard-paste".
func (ClipboardPaste) Name() string { return "clipboard-paste" }

// Attempt implements Strategy.
func (ClipboardPaste) Attempt(target surface.Field, text string) error {
	pt, ok := target.(surface.PasteTarget)
	if !ok {
		return ErrStrategyNotSupported
	}
	return pt.PasteTransfer(surface.Transfer{Text: text})
}

// RawEvents emits the pre-/post-mutation notification pair only, for
// hosts that consume these events directly.
type RawEvents struct{}

// Name returns "raw-events".
func (RawEvents) Name() string { return "raw-events" }

// Attempt implements Strategy.
func (RawEvents) Attempt(target surface.Field, text string) error {
	sink, ok := target.(surface.EventSink)
	if !ok {
		return ErrStrategyNotSupported
	}
	intent := surface.EditIntent{InputType: InputTypeInsert, Data: text}
	if !sink.BeforeInput(intent) {
		sink.AfterInput(intent)
	}
	return nil
}

// DefaultStrategies returns the standard ordered strategy chain.
func DefaultStrategies() []Strategy {
	return []Strategy{StructuredEdit{}, ClipboardPaste{}, RawEvents{}}
}

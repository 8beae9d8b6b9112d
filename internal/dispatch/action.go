package dispatch

import "github.com/keyscribe/keyscribe/internal/input/shortcut"

// Kind names the category of work an action performs. It selects the
// default transformer when the action does not name one explicitly.
type Kind string

const (
	// Translation converts text between languages.
	Translation Kind = "translation"

	// Transformation applies a stylistic rewrite (case, letterforms).
	Transformation Kind = "transformation"

	// LLMPrompt sends the text to a language model with an instruction.
	LLMPrompt Kind = "llmPrompt"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case Translation, Transformation, LLMPrompt:
		return true
	}
	return false
}

// defaultTransformer maps each kind to its built-in transformer name.
var defaultTransformer = map[Kind]string{
	Translation:    "translate",
	Transformation: "style",
	LLMPrompt:      "llm",
}

// Spec is the raw input for one action registration, as loaded from
// settings. The shortcut is in wire format and gets normalized during
// table construction.
type Spec struct {
	ID          string
	DisplayName string
	Shortcut    string
	Kind        Kind
	Transformer string
	Args        map[string]string
}

// Action is a validated, dispatchable entry of the table.
type Action struct {
	ID          string
	DisplayName string
	Shortcut    shortcut.Normalized
	Kind        Kind
	Transformer string
	Args        map[string]string
}

// TransformerName returns the explicit transformer, falling back to the
// kind's default.
func (a Action) TransformerName() string {
	if a.Transformer != "" {
		return a.Transformer
	}
	return defaultTransformer[a.Kind]
}

// Name returns the display name, falling back to the ID.
func (a Action) Name() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.ID
}

package shortcut

import (
	"strings"

	"github.com/keyscribe/keyscribe/internal/input/key"
)

// Normalized is the canonical string form of a shortcut: modifiers in
// fixed order (Ctrl, Alt, Shift, Meta) followed by the non-modifier keys
// sorted lexicographically, all joined by "+". It is the dispatch-table
// key, the conflict-detection unit, and the persisted wire format.
type Normalized string

// Normalize canonicalizes a spec.
//
// Rules, in order: keypad digits map to base-row digits; single
// alphanumeric keys are upper-cased; zero modifiers is rejected; more
// than MaxKeys non-modifier keys is rejected (as is zero); keys are
// sorted lexicographically so entry-order permutations normalize
// identically; the canonical string is Mod1+Mod2+...+Key1[+Key2].
func Normalize(spec Spec) (Normalized, error) {
	if spec.Modifiers.IsEmpty() && len(spec.Keys) == 0 {
		return "", ErrEmptySpec
	}
	if spec.Modifiers.IsEmpty() {
		return "", ErrNoModifier
	}
	if len(spec.Keys) == 0 {
		return "", ErrNoKey
	}
	if len(spec.Keys) > MaxKeys {
		return "", ErrTooManyKeys
	}

	parts := spec.Modifiers.Names()
	parts = append(parts, canonicalKeys(spec.Keys)...)
	return Normalized(strings.Join(parts, "+")), nil
}

// NormalizeString parses and normalizes a wire-format string.
// Normalizing an already-canonical string yields itself.
func NormalizeString(s string) (Normalized, error) {
	spec, err := ParseSpec(s)
	if err != nil {
		return "", err
	}
	return Normalize(spec)
}

// Spec parses the canonical string back into its components. The bool is
// false if n is not a valid canonical form.
func (n Normalized) Spec() (Spec, bool) {
	spec, err := ParseSpec(string(n))
	if err != nil {
		return Spec{}, false
	}
	if _, err := Normalize(spec); err != nil {
		return Spec{}, false
	}
	return spec, true
}

// Modifiers returns the modifier set of a canonical shortcut.
func (n Normalized) Modifiers() key.Modifier {
	spec, _ := n.Spec()
	return spec.Modifiers
}

// Keys returns the sorted non-modifier keys of a canonical shortcut.
func (n Normalized) Keys() []string {
	spec, ok := n.Spec()
	if !ok {
		return nil
	}
	return canonicalKeys(spec.Keys)
}

// String returns the canonical string.
func (n Normalized) String() string {
	return string(n)
}

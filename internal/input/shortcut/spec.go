package shortcut

import (
	"strings"

	"github.com/keyscribe/keyscribe/internal/input/key"
)

// MaxKeys is the maximum number of non-modifier keys in a shortcut.
const MaxKeys = 2

// Spec is a key combination before canonicalization: a modifier set plus
// an ordered sequence of one or two non-modifier key names. Key order is
// preserved for display; equality treats the keys as a set.
type Spec struct {
	// Modifiers is the required modifier set.
	Modifiers key.Modifier

	// Keys holds the non-modifier key names in the order they were
	// entered. Names may be raw; Normalize canonicalizes them.
	Keys []string
}

// NewSpec creates a spec from a modifier set and key names.
func NewSpec(mods key.Modifier, keys ...string) Spec {
	return Spec{Modifiers: mods, Keys: keys}
}

// Equal reports whether two specs denote the same shortcut: equal
// modifier sets and equal key sets, regardless of key order.
func (s Spec) Equal(other Spec) bool {
	if s.Modifiers != other.Modifiers || len(s.Keys) != len(other.Keys) {
		return false
	}
	a := canonicalKeys(s.Keys)
	b := canonicalKeys(other.Keys)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Display returns the spec in wire format but with keys in entry order,
// for rendering a shortcut the way the user typed it.
func (s Spec) Display() string {
	parts := s.Modifiers.Names()
	for _, k := range s.Keys {
		parts = append(parts, key.CanonicalName(k))
	}
	return strings.Join(parts, "+")
}

// canonicalKeys canonicalizes and sorts key names lexicographically.
func canonicalKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = key.CanonicalName(k)
	}
	// At most two entries, a comparison swap is all we need.
	if len(out) == 2 && out[1] < out[0] {
		out[0], out[1] = out[1], out[0]
	}
	return out
}

// ParseSpec parses a wire-format string like "Ctrl+Alt+T" or
// "Ctrl+Shift+T+1" into a Spec. Leading "+"-separated components that
// name modifiers are collected into the modifier set; the remainder are
// non-modifier keys in written order.
func ParseSpec(s string) (Spec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Spec{}, ErrEmptySpec
	}

	var spec Spec
	inKeys := false
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !inKeys && key.IsModifierName(part) {
			spec.Modifiers = spec.Modifiers.With(key.ModifierFromName(part))
			continue
		}
		inKeys = true
		spec.Keys = append(spec.Keys, part)
	}
	return spec, nil
}

// FromEvent builds a single-key spec from a key press event.
func FromEvent(ev key.Event) Spec {
	return Spec{Modifiers: ev.Modifiers, Keys: []string{ev.Name}}
}

// FromPair builds a two-key spec from an armed first key and a second
// key press, preserving the physical entry order.
func FromPair(mods key.Modifier, first, second string) Spec {
	return Spec{Modifiers: mods, Keys: []string{first, second}}
}

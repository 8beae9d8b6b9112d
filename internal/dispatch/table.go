package dispatch

import (
	"fmt"

	"github.com/keyscribe/keyscribe/internal/input/shortcut"
)

// Table maps canonical shortcuts to actions. It is immutable once
// built; the dispatcher swaps whole tables on reconfiguration, so
// lookups from the event path never take a lock.
type Table struct {
	byShortcut map[shortcut.Normalized]Action
	ordered    []Action
}

// BuildTable validates specs and constructs a conflict-free table.
// Every shortcut is normalized and checked against the entries accepted
// so far; the first duplicate, prefix conflict, or malformed spec
// rejects the whole build and the error names the offender.
func BuildTable(specs []Spec) (*Table, error) {
	t := &Table{
		byShortcut: make(map[shortcut.Normalized]Action, len(specs)),
		ordered:    make([]Action, 0, len(specs)),
	}

	var owners []shortcut.Owner
	for _, sp := range specs {
		if sp.ID == "" {
			return nil, fmt.Errorf("%w: action without id", ErrInvalidAction)
		}
		if !sp.Kind.Valid() {
			return nil, fmt.Errorf("%w: action %q: unknown kind %q", ErrInvalidAction, sp.ID, sp.Kind)
		}

		norm, err := shortcut.NormalizeString(sp.Shortcut)
		if err != nil {
			return nil, fmt.Errorf("%w: action %q: shortcut %q: %v", ErrInvalidAction, sp.ID, sp.Shortcut, err)
		}

		if c := shortcut.CheckConflict(norm, owners); !c.OK() {
			return nil, fmt.Errorf("%w: action %q: %s %q held by %q",
				ErrConflict, sp.ID, c.Kind, c.Owner.Shortcut, c.Owner.ActionID)
		}
		owners = append(owners, shortcut.Owner{
			Shortcut:    norm,
			ActionID:    sp.ID,
			DisplayName: sp.DisplayName,
		})

		action := Action{
			ID:          sp.ID,
			DisplayName: sp.DisplayName,
			Shortcut:    norm,
			Kind:        sp.Kind,
			Transformer: sp.Transformer,
			Args:        sp.Args,
		}
		t.byShortcut[norm] = action
		t.ordered = append(t.ordered, action)
	}

	return t, nil
}

// Has reports whether a canonical shortcut is registered. It satisfies
// the sequence detector's lookup contract.
func (t *Table) Has(n shortcut.Normalized) bool {
	_, ok := t.byShortcut[n]
	return ok
}

// Resolve returns the action registered under a canonical shortcut.
func (t *Table) Resolve(n shortcut.Normalized) (Action, bool) {
	a, ok := t.byShortcut[n]
	return a, ok
}

// Actions returns the registered actions in registration order.
func (t *Table) Actions() []Action {
	out := make([]Action, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// Len returns the number of registered actions.
func (t *Table) Len() int {
	return len(t.ordered)
}

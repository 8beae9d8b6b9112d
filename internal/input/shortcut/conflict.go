package shortcut

// ConflictKind classifies the result of a conflict check.
type ConflictKind uint8

const (
	// NoConflict means the candidate can be registered.
	NoConflict ConflictKind = iota

	// Duplicate means an existing shortcut is exactly the candidate.
	Duplicate

	// CandidateIsPrefix means the candidate's single key combination is
	// the first keystroke of an existing two-key shortcut: registering
	// it would make that shortcut permanently unreachable.
	CandidateIsPrefix

	// ExistingIsPrefix means an existing single-key shortcut is the
	// first keystroke of the two-key candidate: the candidate could
	// never fire because the existing one dispatches immediately.
	ExistingIsPrefix
)

// String returns a short name for the conflict kind.
func (k ConflictKind) String() string {
	switch k {
	case NoConflict:
		return "none"
	case Duplicate:
		return "duplicate"
	case CandidateIsPrefix:
		return "candidate-is-prefix"
	case ExistingIsPrefix:
		return "existing-is-prefix"
	default:
		return "unknown"
	}
}

// Owner identifies the registration holding a shortcut.
type Owner struct {
	// Shortcut is the owner's canonical shortcut.
	Shortcut Normalized

	// ActionID identifies the owning action.
	ActionID string

	// DisplayName is the owner's human-readable name.
	DisplayName string
}

// Conflict is the outcome of CheckConflict. Owner is meaningful only
// when Kind is not NoConflict.
type Conflict struct {
	Kind  ConflictKind
	Owner Owner
}

// OK returns true if no conflict was found.
func (c Conflict) OK() bool {
	return c.Kind == NoConflict
}

// CheckConflict determines whether candidate can coexist with the
// already-registered shortcuts. It flags exact duplicates and prefix
// conflicts in both directions. This runs at registration/edit time,
// never at dispatch time, so a dispatch table built from validated
// entries is conflict-free by construction.
//
// Shortcut A is a prefix of shortcut B iff their modifier sets are
// equal, A has exactly one non-modifier key, B has exactly two, and A's
// key equals one of B's keys. A single-key shortcut fires immediately on
// key-down with no lookahead, so any two-key shortcut sharing its first
// keystroke is unreachable.
func CheckConflict(candidate Normalized, existing []Owner) Conflict {
	candMods := candidate.Modifiers()
	candKeys := candidate.Keys()

	for _, owner := range existing {
		if owner.Shortcut == candidate {
			return Conflict{Kind: Duplicate, Owner: owner}
		}

		if owner.Shortcut.Modifiers() != candMods {
			continue
		}
		ownerKeys := owner.Shortcut.Keys()

		if len(candKeys) == 1 && len(ownerKeys) == 2 && containsKey(ownerKeys, candKeys[0]) {
			return Conflict{Kind: CandidateIsPrefix, Owner: owner}
		}
		if len(ownerKeys) == 1 && len(candKeys) == 2 && containsKey(candKeys, ownerKeys[0]) {
			return Conflict{Kind: ExistingIsPrefix, Owner: owner}
		}
	}

	return Conflict{Kind: NoConflict}
}

func containsKey(keys []string, k string) bool {
	for _, v := range keys {
		if v == k {
			return true
		}
	}
	return false
}

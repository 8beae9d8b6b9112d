// Package shortcut canonicalizes key combinations into stable shortcut
// strings and validates new shortcuts against an existing set.
//
// A shortcut is one or more modifiers plus one or two non-modifier keys.
// Its canonical string form (modifiers in fixed order, keys sorted
// lexicographically) is the only persisted representation and the unit
// used for dispatch lookup and conflict detection.
package shortcut

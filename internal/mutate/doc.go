// Package mutate commits replacement text into host fields reliably.
//
// Host frameworks differ in which mutation path they honor, so the
// pipeline tries an ordered list of strategies (structured edit,
// clipboard-style paste, raw event pair), verifying the field content
// after each until one sticks. If none does, the caller restores the
// pre-operation snapshot; a failed mutation must never leave the field
// partially changed without attempted restoration.
package mutate

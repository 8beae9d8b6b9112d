// Package sequence recognizes shortcut keystrokes from a stream of key
// press/release events. It handles both single combinations (fire on
// key-down) and two-key sequences: a first key held with modifiers,
// followed by a second key while those modifiers are still down.
package sequence

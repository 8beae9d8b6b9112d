// Package key defines keyboard modifiers, key names, and press/release
// events as delivered by host surfaces. It is the lowest layer of the
// input stack; shortcut normalization and sequence detection build on it.
package key

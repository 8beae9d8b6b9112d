// Package style implements stylistic text transforms: case changes and
// Unicode letterform styles built on the Mathematical Alphanumeric
// Symbols block, so styled text survives plain-text fields that carry
// no formatting.
package style

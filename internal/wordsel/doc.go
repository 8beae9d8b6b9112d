// Package wordsel grows and shrinks selections one word at a time,
// mirroring native word-selection semantics.
//
// Plain fields are manipulated through rune offsets with an explicit
// active-end direction. Rich editable surfaces maintain their own
// selection model that offset arithmetic cannot safely address, so the
// selector delegates to the host's native extend-by-word primitive.
package wordsel

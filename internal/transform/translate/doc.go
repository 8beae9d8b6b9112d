// Package translate implements dictionary-backed word translation.
// Translation quality is out of scope; the engine consumes whatever
// dictionaries the host supplies and substitutes word by word,
// preserving capitalization and leaving unknown words untouched.
package translate

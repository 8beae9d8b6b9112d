// Package transform defines the text-transform contract consumed by
// the dispatcher: a Transformer turns selected text into replacement
// text. Concrete families (translation, stylistic transforms, LLM
// rewriting, Lua user scripts) live in subpackages and register
// themselves in a Registry keyed by name.
package transform

// Package surface abstracts the editable text fields of a host page.
//
// Two kinds of field exist: plain fields (inputs, textareas) addressed by
// character offsets, and rich editable surfaces owned by third-party
// editing frameworks that keep their own document and selection model.
// The package defines the capability interfaces the mutation pipeline
// and the word selector probe for, a focus resolver that walks nested
// shadow-boundary hosts, and in-memory reference fields used by the
// playground and the tests.
package surface

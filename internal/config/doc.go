// Package config loads, validates and watches keyscribe settings.
//
// Settings files may be JSON, YAML or TOML, selected by extension. JSON
// documents are schema-validated before decoding and support targeted
// single-field updates that preserve the rest of the document. A loaded
// settings set is only handed to the application after full validation,
// including pairwise shortcut conflict checks; a reload that fails
// validation leaves the previous settings active.
package config

package config

import "errors"

var (
	// ErrUnsupportedFormat indicates a settings file with an unknown
	// extension.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalidSettings indicates a settings document that failed
	// validation. The wrapped message names the offending entry.
	ErrInvalidSettings = errors.New("config: invalid settings")

	// ErrShortcutConflict indicates two actions whose shortcuts cannot
	// coexist.
	ErrShortcutConflict = errors.New("config: shortcut conflict")

	// ErrUnknownAction indicates a targeted update naming no action.
	ErrUnknownAction = errors.New("config: unknown action id")
)

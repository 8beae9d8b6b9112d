package mutate

import "errors"

// Pipeline errors.
var (
	// ErrAllStrategiesFailed indicates no insertion strategy verified
	// successfully. The caller must restore the snapshot and surface a
	// user-visible error.
	ErrAllStrategiesFailed = errors.New("mutate: all insertion strategies failed")

	// ErrStrategyNotSupported indicates the target lacks the
	// capabilities a strategy needs. The pipeline moves on.
	ErrStrategyNotSupported = errors.New("mutate: strategy not supported by target")

	// ErrEmptyText indicates a commit with no replacement text.
	ErrEmptyText = errors.New("mutate: empty replacement text")

	// ErrRestoreFailed indicates the snapshot could not be written back.
	ErrRestoreFailed = errors.New("mutate: snapshot restore failed")
)

package domain

import "errors"

// Validation failure categories surfaced to the caller before any mutation
// takes place. Everything else degrades to partial results (counts, reports)
// rather than aborting.
var (
	// ErrMissingSetName is returned when extract is called without a
	// keying-set name.
	ErrMissingSetName = errors.New("keying set name is required")

	// ErrNoSuchSet is returned when a capture references a keying set that
	// does not exist in the scene.
	ErrNoSuchSet = errors.New("no such keying set")

	// ErrMissingPresetName is returned when a capture is requested without a
	// preset name.
	ErrMissingPresetName = errors.New("preset name is required")
)

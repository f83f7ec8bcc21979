package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoFeatures is returned when a picker has nothing to choose from.
	ErrNoFeatures = errors.New("tui: picker has no features")
	// ErrPickerRequired is returned when a picker view carries no picker to
	// dispatch events to.
	ErrPickerRequired = errors.New("tui: picker view has no picker")
)

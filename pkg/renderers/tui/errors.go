package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrTooManyAttempts is returned when the submission still fails
	// validation after the configured number of rounds.
	ErrTooManyAttempts = errors.New("tui: validation failed after maximum attempts")
)

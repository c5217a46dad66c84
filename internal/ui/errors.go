// Package ui provides the interactive terminal components of switch: the
// project selector and the init form. Both degrade to an error when no
// terminal is attached.
package ui

import "errors"

// Error definitions for the ui package.
var (
	// ErrNotInteractive is returned when an interactive component is
	// requested without a terminal on stdin.
	ErrNotInteractive = errors.New("interactive terminal required")

	// ErrCancelled is returned when the user aborts a form.
	ErrCancelled = errors.New("cancelled by user")
)

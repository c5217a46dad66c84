// Package shell probes the user's environment (editors on PATH, the active
// shell) and turns the result of a switch into a launch directive that the
// CLI entry point executes.
package shell

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoEditorFound indicates none of the editor candidates is on PATH.
var ErrNoEditorFound = errors.New("no suitable text editor found")

// NoEditorFoundError lists the candidates that were probed.
type NoEditorFoundError struct {
	Candidates []string
}

// Error implements the error interface.
func (e *NoEditorFoundError) Error() string {
	return fmt.Sprintf("%v (tried: %s)", ErrNoEditorFound, strings.Join(e.Candidates, ", "))
}

// Hint returns the remedial action for the user.
func (e *NoEditorFoundError) Hint() string {
	return "install one of the editors above or set SWITCH_EDITOR"
}

// Unwrap returns ErrNoEditorFound.
func (e *NoEditorFoundError) Unwrap() error {
	return ErrNoEditorFound
}

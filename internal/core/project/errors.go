// Package project implements the switch commands: registering projects,
// removing them and choosing one to open. It returns launch directives
// instead of changing the process state itself, so every operation can be
// exercised without a terminal.
package project

import (
	"errors"
	"fmt"
)

// Sentinel errors for the project package.
var (
	// ErrProjectExists indicates the directory already contains a marker file.
	ErrProjectExists = errors.New("project already initialized")
)

// AlreadyInitializedError is returned by Init when the directory already
// holds a marker file. Nothing is written in that case.
type AlreadyInitializedError struct {
	Dir string
}

func (e *AlreadyInitializedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProjectExists, e.Dir)
}

// Hint suggests registering the existing project instead.
func (e *AlreadyInitializedError) Hint() string {
	return fmt.Sprintf("run 'switch add --directory %s' to register it", e.Dir)
}

func (e *AlreadyInitializedError) Unwrap() error {
	return ErrProjectExists
}

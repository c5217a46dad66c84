// Package store persists the user registry and the per-project marker
// records as TOML files. It is a pure data-mapping layer: no prompts,
// no process side effects beyond reading and writing the two files.
package store

import (
	"errors"
	"fmt"

	"github.com/modu-ai/switch/internal/defs"
)

// Sentinel errors for the store package.
var (
	// ErrNotAProject indicates the marker file is missing from a directory.
	ErrNotAProject = errors.New("not a switch project")

	// ErrParse indicates a registry or marker file has malformed content.
	ErrParse = errors.New("malformed record")
)

// NotAProjectError reports a directory without a marker file.
type NotAProjectError struct {
	Dir string
}

// Error implements the error interface.
func (e *NotAProjectError) Error() string {
	return fmt.Sprintf("not a switch project, missing '%s' file in %s", defs.MarkerFile, e.Dir)
}

// Hint returns the remedial command for the user.
func (e *NotAProjectError) Hint() string {
	return fmt.Sprintf("use 'init' command to make a new project\n\n  switch init --directory %s", e.Dir)
}

// Unwrap returns ErrNotAProject.
func (e *NotAProjectError) Unwrap() error {
	return ErrNotAProject
}

// ParseError reports a record that could not be decoded. Field is set when a
// required field is missing; otherwise Err carries the decoder failure.
type ParseError struct {
	Path  string
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("parse %s: missing required field %q", e.Path, e.Field)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

// Hint returns the remedial action for the user.
func (e *ParseError) Hint() string {
	return fmt.Sprintf("fix or remove the malformed file %s", e.Path)
}

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Unwrap returns the underlying decoder error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

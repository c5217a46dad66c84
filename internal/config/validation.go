package config

import (
	"fmt"
	"slices"
	"strings"
)

// validLogLevels lists the accepted log_level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the settings for correctness.
func Validate(cfg *Settings) error {
	var errs []ValidationError

	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
			Value:   cfg.LogLevel,
			Wrapped: ErrInvalidConfig,
		})
	}

	for i, editor := range cfg.Editors {
		if strings.TrimSpace(editor) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("editors[%d]", i),
				Message: "editor name must not be empty",
				Wrapped: ErrInvalidConfig,
			})
		}
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

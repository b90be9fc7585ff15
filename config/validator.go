// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/gridrect/logging"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // config key, e.g. "decompose.min_width"
	Value   any
	Message string
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}

	return sb.String()
}

// Validate checks c for invalid values and returns every failure found.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if c.Decompose.MinWidth < 1 {
		errs = append(errs, ValidationError{"decompose.min_width", c.Decompose.MinWidth, "must be at least 1"})
	}
	if c.Decompose.MinHeight < 1 {
		errs = append(errs, ValidationError{"decompose.min_height", c.Decompose.MinHeight, "must be at least 1"})
	}
	if !slices.Contains(ValidFormats(), c.Output.Format) {
		errs = append(errs, ValidationError{
			"output.format", c.Output.Format,
			"must be one of " + strings.Join(ValidFormats(), ", "),
		})
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, ValidationError{
			"logging.level", c.Logging.Level,
			"must be one of " + strings.Join(logging.ValidLevels(), ", "),
		})
	}
	if !slices.Contains(logging.ValidFormats(), strings.ToLower(c.Logging.Format)) {
		errs = append(errs, ValidationError{
			"logging.format", c.Logging.Format,
			"must be one of " + strings.Join(logging.ValidFormats(), ", "),
		})
	}

	return errs
}

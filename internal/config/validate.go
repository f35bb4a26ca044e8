package config

import (
	"fmt"
	"regexp"
)

// defineVarPattern matches valid CMake cache variable names.
var defineVarPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidationError represents a settings validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks settings for semantic errors. It assumes defaults have
// already been applied, so empty required fields are rejected.
func Validate(cfg *Settings) error {
	if cfg.ConfigRoot == "" {
		return &ValidationError{Field: "configRoot", Message: "must not be empty"}
	}
	if cfg.BuildRoot == "" {
		return &ValidationError{Field: "buildRoot", Message: "must not be empty"}
	}
	if !defineVarPattern.MatchString(cfg.DefineVar) {
		return &ValidationError{
			Field:   "defineVar",
			Message: fmt.Sprintf("%q is not a valid CMake cache variable name", cfg.DefineVar),
		}
	}
	for i, arg := range cfg.CmakeArgs {
		if arg == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("cmakeArgs[%d]", i),
				Message: "must not be empty",
			}
		}
	}
	for gen, tool := range cfg.ToolHints {
		if tool == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("toolHints[%q]", gen),
				Message: "must not be empty",
			}
		}
	}
	return nil
}

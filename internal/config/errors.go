package config

import (
	"fmt"
)

// MissingConfigError indicates no config file exists at the given path.
type MissingConfigError struct {
	Path string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("no config file found at %s", e.Path)
}

// InvalidYAMLError wraps a YAML parse failure.
type InvalidYAMLError struct {
	Path    string
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("%s is not valid YAML: %v", e.Path, e.Wrapped)
}

func (e *InvalidYAMLError) Unwrap() error {
	return e.Wrapped
}

// InvalidWorkerCountError indicates a negative worker count.
type InvalidWorkerCountError struct {
	Value int
}

func (e *InvalidWorkerCountError) Error() string {
	return fmt.Sprintf("workers must be 0 or greater, got %d", e.Value)
}

// InvalidOutputFormatError indicates an unsupported report format.
type InvalidOutputFormatError struct {
	Value string
}

func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("output must be '%s' or '%s', got %q", OutputText, OutputJSON, e.Value)
}

// InvalidExtensionError indicates an empty or dot-only extension entry.
type InvalidExtensionError struct {
	Value string
}

func (e *InvalidExtensionError) Error() string {
	return fmt.Sprintf("%q is not a valid file extension", e.Value)
}

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes for wstest-env
const (
	ExitSuccess            = 0
	ExitGeneralError       = 1
	ExitToolsMissing       = 2
	ExitTemplateNotFound   = 3
	ExitProvisionFailed    = 4
	ExitConfigError        = 5
	ExitCaptureUnavailable = 6
)

// HarnessError is the base error type for wstest-env
type HarnessError struct {
	Code    int
	Message string
	Cause   error
}

func (e *HarnessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *HarnessError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *HarnessError) ExitCode() int {
	return e.Code
}

// New creates a new HarnessError
func New(code int, message string) *HarnessError {
	return &HarnessError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a HarnessError
func Wrap(code int, message string, cause error) *HarnessError {
	return &HarnessError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ToolsMissing returns an error naming the tools that could not be located
func ToolsMissing(dir string, missing []string) *HarnessError {
	return New(ExitToolsMissing, fmt.Sprintf("tools not found in %s: %s", dir, strings.Join(missing, ", ")))
}

// TemplateNotFound returns an error for a missing config template
func TemplateNotFound(name string, cause error) *HarnessError {
	return Wrap(ExitTemplateNotFound, fmt.Sprintf("template not found: %s", name), cause)
}

// ProvisionFailed returns an error for test home operations
func ProvisionFailed(op string, cause error) *HarnessError {
	return Wrap(ExitProvisionFailed, fmt.Sprintf("test home %s failed", op), cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *HarnessError {
	return Wrap(ExitConfigError, message, cause)
}

// CaptureUnavailable returns an error when no capture interface can be used
func CaptureUnavailable(reason string) *HarnessError {
	return New(ExitCaptureUnavailable, fmt.Sprintf("capture unavailable: %s", reason))
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *HarnessError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var harnessErr *HarnessError
	if errors.As(err, &harnessErr) {
		return harnessErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}

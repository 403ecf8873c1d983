// Package errors provides typed errors with exit codes for wstest-env.
//
// # Error Types
//
// HarnessError wraps an error with an exit code:
//
//	type HarnessError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess            = 0  // Success
//	ExitGeneralError       = 1  // General/unknown errors
//	ExitToolsMissing       = 2  // Required executables not found
//	ExitTemplateNotFound   = 3  // Config template does not exist
//	ExitProvisionFailed    = 4  // Test home could not be created or written
//	ExitConfigError        = 5  // Settings file error
//	ExitCaptureUnavailable = 6  // No usable capture interface
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors

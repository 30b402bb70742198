// Package errors provides typed errors with exit codes for rrepo and rdev.
//
// # Error Types
//
// RkitError is the base error type that wraps an error with an exit code:
//
//	type RkitError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess         = 0  // Success
//	ExitGeneralError    = 1  // General/unknown errors
//	ExitRuntimeNotFound = 2  // Rscript interpreter not on PATH
//	ExitNotARepository  = 3  // Path has no PACKAGES index
//	ExitAlreadyRepo     = 4  // Path already has a PACKAGES index
//	ExitBadTargetPath   = 5  // Target exists but is not an empty directory
//
// A failing Rscript invocation produces an error whose code is the
// subprocess exit status, propagated verbatim.
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.NotARepository("/srv/cran")
//	errors.AlreadyRepository("/srv/cran")
//	errors.ExternalFailure(1, "devtools::check()")
//	errors.RuntimeNotFound(err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors

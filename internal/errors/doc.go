// Package errors provides typed errors with exit codes for vlsm-ctl.
//
// # Error Types
//
// CtlError wraps an error with an exit code:
//
//	type CtlError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess          = 0 // Success
//	ExitGeneralError     = 1 // General/unknown errors
//	ExitInvalidInput     = 2 // Malformed network, prefix or demand list
//	ExitCapacityExceeded = 3 // Demands do not fit the base network
//	ExitConfigError      = 4 // Configuration or plan file error
//	ExitPlanNotFound     = 5 // Named plan does not exist
//
// # Allocation Errors
//
// FromAllocation maps the allocator's sentinel errors to exit codes so the
// two failure kinds stay distinguishable at the process boundary:
//
//	report, err := vlsm.Allocate(addr, prefix, demands)
//	if err != nil {
//	    return errors.FromAllocation(err)
//	}
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors

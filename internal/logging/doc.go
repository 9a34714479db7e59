// Package logging provides logging utilities for vlsm-ctl.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog. Warnings and errors are always shown;
// debug output needs --verbose:
//
//	logging.Debug("allocating", "network", cidr, "demands", len(demands))
//	logging.Warn("failed to record history", "plan", name, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Loading plan %s...", name)
//	logging.UserSuccess("Plan %s saved", name)
//	logging.UserWarning("%d addresses left unassigned", free)
//	logging.UserError("Failed to plan network: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: Stdout (os.Stdout by default)
//   - UserWarning, UserError: Stderr (os.Stderr by default)
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging

// Package errors provides structured error handling for roll-cli.
//
// Errors carry a code, a user-facing message, optional metadata, and an
// optional wrapped cause:
//
//	err := errors.InvalidArgumentf("could not parse %q as dice notation", token)
//	err := errors.Wrap(err, "failed to resolve tokens")
//
// Type checking goes through the helpers rather than direct comparison:
//
//	if errors.IsInvalidArgument(err) {
//	    // bad user input
//	}
//
// The ValidationBuilder accumulates field-level configuration errors and is
// used by orchestrator Config.Validate implementations.
package errors

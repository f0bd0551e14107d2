package cli

import (
	"errors"
	"strings"

	"github.com/ruby-devkit/dk/internal/plan"
)

// Exit codes returned by the dk process.
const (
	// ExitOK means the invocation succeeded.
	ExitOK = 0

	// ExitFailure means an unclassified failure.
	ExitFailure = 1

	// ExitUsage means the invocation was malformed.
	ExitUsage = 2

	// ExitConfig means the plan file is missing, unreadable or invalid.
	ExitConfig = 3
)

// ErrUsage indicates a malformed invocation. Usage text has already been
// printed when it is returned.
var ErrUsage = errors.New("invalid usage")

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case isUsageError(err):
		return ExitUsage
	case isConfigError(err):
		return ExitConfig
	default:
		return ExitFailure
	}
}

// isConfigError reports whether err stems from a bad plan file.
func isConfigError(err error) bool {
	return errors.Is(err, plan.ErrNotFound) ||
		errors.Is(err, plan.ErrInvalid) ||
		errors.Is(err, plan.ErrEmpty)
}

// isUsageError reports whether err stems from a malformed invocation.
// Cobra reports unrecognized subcommands and flags as plain errors, so
// classification falls back to message inspection for those.
func isUsageError(err error) bool {
	if errors.Is(err, ErrUsage) {
		return true
	}
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag") ||
		strings.Contains(msg, "accepts at most")
}

// SPDX-License-Identifier: MPL-2.0

package gotool

import (
	"errors"
	"fmt"
	"strings"
)

// ErrToolchainMissing is the sentinel error wrapped by MissingError.
var ErrToolchainMissing = errors.New("go toolchain not found")

// MissingError is returned by New when the configured toolchain executable
// cannot be located. It is fatal for the session's module features.
type MissingError struct {
	Command string
	Err     error
}

// Error implements the error interface.
func (e *MissingError) Error() string {
	return fmt.Sprintf("go toolchain not found: %q is not available on PATH", e.Command)
}

// Unwrap returns ErrToolchainMissing so callers can use errors.Is.
func (e *MissingError) Unwrap() error { return ErrToolchainMissing }

// InvocationError is returned when a subcommand exits non-zero. Output holds
// the tool's combined stdout/stderr text verbatim; no classification of the
// underlying cause (network, permission, syntax) is attempted because the
// external tool owns that semantics.
type InvocationError struct {
	Args   []string
	Output string
	Err    error
}

// Error returns the subcommand followed by whatever the tool printed, so the
// user can diagnose via the tool's own message.
func (e *InvocationError) Error() string {
	msg := fmt.Sprintf("go %s failed", strings.Join(e.Args, " "))
	if out := strings.TrimSpace(e.Output); out != "" {
		return msg + ":\n" + out
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the process-level error, if any.
func (e *InvocationError) Unwrap() error { return e.Err }

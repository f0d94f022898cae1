// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"modpilot-cli/internal/issue"
)

// ServiceError is an error that carries an issue catalog ID for the CLI
// layer. When a RunE handler returns one, the CLI renders the issue card
// before exiting, so the user gets both the raw error and the remediation
// help. Always create via newServiceError to enforce the Err-must-be-non-nil
// invariant.
type ServiceError struct {
	// Err is the underlying error (must not be nil).
	Err error
	// IssueID is the optional issue catalog ID for rendering help text.
	IssueID issue.Id
}

// newServiceError creates a ServiceError with a nil-Err panic guard.
func newServiceError(err error, issueID issue.Id) *ServiceError {
	if err == nil {
		panic("ServiceError: Err must not be nil")
	}
	return &ServiceError{Err: err, IssueID: issueID}
}

// Error implements the error interface.
func (e *ServiceError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ServiceError) Unwrap() error { return e.Err }

// renderServiceError prints the issue card for a ServiceError. The error
// message itself is printed by the command runner, so only the remediation
// help is rendered here.
func renderServiceError(stderr io.Writer, svcErr *ServiceError) {
	if svcErr == nil || svcErr.IssueID == 0 {
		return
	}
	if entry := issue.Get(svcErr.IssueID); entry != nil {
		if rendered, err := entry.Render("dark"); err == nil {
			fmt.Fprint(stderr, rendered)
		}
	}
}

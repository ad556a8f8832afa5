// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// ActionableError is an error with context for user-facing messages: the
	// operation that failed, the resource involved, suggestions for fixing it
	// and optionally a catalog Issue with longer guidance.
	//
	// Use the ErrorContext builder for construction:
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("write cargo config").
	//		WithResource(".cargo/config").
	//		WithIssue(issue.CargoConfigWriteFailedId).
	//		Wrap(originalErr).
	//		BuildError()
	ActionableError struct {
		// Operation is a verb phrase, e.g. "load configuration".
		Operation string
		// Resource identifies the file or entity involved (optional).
		Resource string
		// Suggestions are short remediation hints (optional).
		Suggestions []string
		// Issue points at catalog guidance; zero means none.
		Issue Id
		// Cause is the underlying error (optional).
		Cause error
	}

	// ErrorContext is a builder for ActionableError.
	ErrorContext struct {
		operation   string
		resource    string
		suggestions []string
		issue       Id
		cause       error
	}
)

// NewErrorContext creates a new ErrorContext builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error joins "failed to <operation>", the resource and the cause with ": ".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error { return e.Cause }

// Format renders the error for a terminal: the message, a blank line and one
// "•" bullet per suggestion. With verbose set, every error in the cause
// chain is numbered below an "Error chain:" heading.
func (e *ActionableError) Format(verbose bool) string {
	lines := []string{e.Error()}
	if e.HasSuggestions() {
		lines = append(lines, "")
		for _, s := range e.Suggestions {
			lines = append(lines, "  • "+s)
		}
	}
	if verbose && e.Cause != nil {
		lines = append(lines, "", "Error chain:")
		for n, err := 1, e.Cause; err != nil; n, err = n+1, errors.Unwrap(err) {
			lines = append(lines, fmt.Sprintf("  %d. %v", n, err))
		}
	}
	return strings.Join(lines, "\n")
}

func (e *ActionableError) HasSuggestions() bool { return len(e.Suggestions) > 0 }

// CatalogIssue returns the linked catalog entry, or nil.
func (e *ActionableError) CatalogIssue() *Issue {
	return Get(e.Issue)
}

// WithOperation names the failed step as a verb phrase.
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource names the file or entity involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithSuggestion appends one remediation hint.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	return c.WithSuggestions(sug)
}

// WithSuggestions appends remediation hints in order.
func (c *ErrorContext) WithSuggestions(sugs ...string) *ErrorContext {
	c.suggestions = append(c.suggestions, sugs...)
	return c
}

// WithIssue links the error to catalog guidance.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.issue = id
	return c
}

// Wrap records the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build snapshots the builder into an ActionableError. Without an operation
// there is nothing to report and Build returns nil.
func (c *ErrorContext) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: slices.Clone(c.suggestions),
		Issue:       c.issue,
		Cause:       c.cause,
	}
}

// BuildError is Build for return statements; it yields an untyped nil when
// Build would return nil.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}

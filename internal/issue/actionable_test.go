// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load configuration"},
			want: "failed to load configuration",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "load configuration", Resource: "./ginit.cue"},
			want: "failed to load configuration: ./ginit.cue",
		},
		{
			name: "with cause",
			err: &ActionableError{
				Operation: "write cargo config",
				Resource:  ".cargo/config",
				Cause:     errors.New("permission denied"),
			},
			want: "failed to write cargo config: .cargo/config: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_UnwrapChain(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("read cargo config").
		Wrap(fs.ErrNotExist).
		BuildError()

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see through ActionableError")
	}
	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("errors.As failed for %T", err)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("no such file")
	err := &ActionableError{
		Operation:   "load configuration",
		Resource:    "./ginit.cue",
		Suggestions: []string{"Run 'ginit config show'", "Check file permissions"},
		Cause:       inner,
	}

	brief := err.Format(false)
	for _, want := range []string{"failed to load configuration", "• Run 'ginit config show'", "• Check file permissions"} {
		if !strings.Contains(brief, want) {
			t.Errorf("Format(false) should contain %q, got:\n%s", want, brief)
		}
	}
	if strings.Contains(brief, "Error chain") {
		t.Error("Format(false) should not include the error chain")
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") || !strings.Contains(verbose, "1. no such file") {
		t.Errorf("Format(true) should list the chain, got:\n%s", verbose)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	ctx := NewErrorContext().
		WithOperation("generate cargo config").
		WithResource("/work/app").
		WithSuggestion("first").
		WithSuggestions("second", "third").
		WithIssue(CargoConfigWriteFailedId).
		Wrap(cause)

	got := ctx.Build()
	want := &ActionableError{
		Operation:   "generate cargo config",
		Resource:    "/work/app",
		Suggestions: []string{"first", "second", "third"},
		Issue:       CargoConfigWriteFailedId,
		Cause:       cause,
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b error) bool { return a == b })); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
	if got.CatalogIssue() != Get(CargoConfigWriteFailedId) {
		t.Error("CatalogIssue() should resolve the linked issue")
	}

	// Later builder calls must not leak into an already built error.
	ctx.WithSuggestion("fourth")
	if len(got.Suggestions) != 3 {
		t.Errorf("built error changed after reuse: %v", got.Suggestions)
	}
}

func TestErrorContext_NoOperation(t *testing.T) {
	t.Parallel()

	ctx := NewErrorContext().WithResource("x").Wrap(errors.New("e"))
	if ctx.Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := ctx.BuildError(); err != nil {
		t.Errorf("BuildError() without operation should return untyped nil, got %#v", err)
	}
}

func TestActionableError_NoCatalogIssue(t *testing.T) {
	t.Parallel()

	err := &ActionableError{Operation: "x"}
	if err.CatalogIssue() != nil {
		t.Error("zero Issue should resolve to nil")
	}
	if err.HasSuggestions() {
		t.Error("HasSuggestions() = true for empty suggestions")
	}
}

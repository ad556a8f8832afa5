// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/ginit/ginit/internal/android"
	"github.com/ginit/ginit/internal/cargo"
	"github.com/ginit/ginit/internal/config"
	"github.com/ginit/ginit/internal/issue"
	"github.com/ginit/ginit/internal/platform"
	"github.com/ginit/ginit/internal/toolchain"

	"github.com/spf13/cobra"
)

// issueStyle is the glamour style used for catalog guidance. "auto" falls
// back to plain text when stdout is not a terminal.
const issueStyle = "auto"

// classifyError maps a failure to an issue catalog ID, or 0 if none fits.
// An ID attached to an ActionableError takes precedence.
func classifyError(err error) issue.Id {
	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.Issue != 0 {
		return ae.Issue
	}

	switch {
	case errors.Is(err, platform.ErrHostNotSupported):
		return issue.HostNotSupportedId
	case errors.Is(err, android.ErrNDKNotFound):
		return issue.NDKNotFoundId
	case errors.Is(err, toolchain.ErrUnknownTarget):
		return issue.UnknownTargetId
	case errors.Is(err, config.ErrInvalidConfig):
		return issue.ProjectConfigInvalidId
	case errors.Is(err, cargo.ErrDirectoryCreate), errors.Is(err, cargo.ErrFileWrite):
		return issue.CargoConfigWriteFailedId
	default:
		return 0
	}
}

// reportError prints err and any matching catalog guidance to stderr and
// returns an ExitError so Cobra and fang do not print it again.
func (a *App) reportError(cmd *cobra.Command, err error, verbose bool) error {
	fmt.Fprintf(a.stderr, "\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))

	if id := classifyError(err); id != 0 {
		if rendered, renderErr := issue.Get(id).Render(issueStyle); renderErr == nil {
			fmt.Fprint(a.stderr, rendered)
		}
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: 1, Err: err}
}

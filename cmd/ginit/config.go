// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/ginit/ginit/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `ginit config` command tree.
func newConfigCommand(app *App, opts *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the project configuration",
		Long: `Inspect the project configuration.

Configuration is read from ` + config.FileName + ` in the project root, the
nearest ancestor of the working directory that contains one. Environment
variables prefixed with ` + config.EnvPrefix + `_ override file values, e.g.
` + config.EnvPrefix + `_ANDROID_NDK_PATH.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.open(cmd.Context(), opts)
			if err != nil {
				return app.reportError(cmd, err, opts.verbose)
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(s.cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file in use",
		Long: `Print the configuration file in use.

Nothing is printed on stdout when the project has no ` + config.FileName + `
and only defaults apply; a note goes to stderr instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigPath(cmd, app, opts)
		},
	})

	return cfgCmd
}

func runConfigPath(cmd *cobra.Command, app *App, opts *rootOptions) error {
	root, err := app.projectRoot(opts)
	if err != nil {
		return app.reportError(cmd, err, opts.verbose)
	}

	path, err := app.Config.Path(cmd.Context(), config.LoadOptions{ProjectDir: root, ConfigFilePath: opts.configPath})
	if err != nil {
		return app.reportError(cmd, err, opts.verbose)
	}
	if path == "" {
		fmt.Fprintf(app.stderr, "%s no %s in %s, using defaults\n",
			WarningStyle.Render("!"), config.FileName, root)
		return nil
	}
	fmt.Fprintln(app.stdout, path)
	return nil
}

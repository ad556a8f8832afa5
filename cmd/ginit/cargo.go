// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ginit/ginit/internal/android"
	"github.com/ginit/ginit/internal/cargo"
	"github.com/ginit/ginit/internal/config"
	"github.com/ginit/ginit/internal/ios"
	"github.com/ginit/ginit/internal/issue"
	"github.com/ginit/ginit/internal/project"
	"github.com/ginit/ginit/internal/toolchain"
	"github.com/ginit/ginit/internal/watch"

	"github.com/spf13/cobra"
)

// newCargoCommand creates the `ginit cargo` command tree.
func newCargoCommand(app *App, opts *rootOptions) *cobra.Command {
	cargoCmd := &cobra.Command{
		Use:   "cargo",
		Short: "Manage the generated .cargo/config",
		Long: `Manage the generated .cargo/config.

ginit owns .cargo/config: every generation rewrites it from scratch, so
hand edits are lost. Put project-specific Cargo settings in
.cargo/config.toml instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var toStdout, watchMode bool
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate .cargo/config for every supported target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if toStdout && watchMode {
				return errors.New("--stdout and --watch cannot be combined")
			}
			if toStdout {
				return runCargoPrint(cmd, app, opts)
			}
			if watchMode {
				return runCargoWatch(cmd, app, opts)
			}
			return runCargoGenerate(cmd, app, opts)
		},
	}
	generateCmd.Flags().BoolVar(&toStdout, "stdout", false, "print the configuration instead of writing it")
	generateCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "regenerate whenever "+config.FileName+" changes")
	cargoCmd.AddCommand(generateCmd)

	cargoCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the target overrides in the existing .cargo/config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCargoShow(cmd, app, opts)
		},
	})

	cargoCmd.AddCommand(&cobra.Command{
		Use:   "targets",
		Short: "List supported targets and whether they are selected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCargoTargets(cmd, app, opts)
		},
	})

	return cargoCmd
}

func runCargoGenerate(cmd *cobra.Command, app *App, opts *rootOptions) error {
	if err := generateOnce(cmd.Context(), app, opts); err != nil {
		return app.reportError(cmd, err, opts.verbose)
	}
	return nil
}

// generateOnce runs one full generation and prints its summary.
func generateOnce(ctx context.Context, app *App, opts *rootOptions) error {
	s, err := app.open(ctx, opts)
	if err != nil {
		return err
	}

	gen, err := app.generator(s)
	if err != nil {
		return err
	}

	res, err := gen.Generate()
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("generate cargo config").
			WithResource(s.root).
			Wrap(err).
			BuildError()
	}

	fmt.Fprintf(app.stdout, "%s Wrote %s\n\n", SuccessStyle.Render("✓"), res.Path)
	printTargets(app.stdout, res.Targets)
	return nil
}

// runCargoWatch generates once and then again whenever the project
// configuration changes, until the command context is cancelled. Failed
// runs are reported and watching continues.
func runCargoWatch(cmd *cobra.Command, app *App, opts *rootOptions) error {
	ctx := cmd.Context()

	if err := generateOnce(ctx, app, opts); err != nil {
		fmt.Fprintf(app.stderr, "\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, opts.verbose))
	}

	files, err := watchedFiles(app, opts)
	if err != nil {
		return app.reportError(cmd, err, opts.verbose)
	}

	w, err := watch.New(watch.Config{
		Files:  files,
		Stderr: app.stderr,
		OnChange: func(ctx context.Context, changed []string) error {
			fmt.Fprintf(app.stdout, "\n%s %s\n", WarningStyle.Render("↻"), SubtitleStyle.Render(strings.Join(changed, ", ")))
			return generateOnce(ctx, app, opts)
		},
	})
	if err != nil {
		return app.reportError(cmd, err, opts.verbose)
	}

	fmt.Fprintf(app.stdout, "%s %s\n", SubtitleStyle.Render("Watching"), strings.Join(files, ", "))
	if err := w.Run(ctx); err != nil {
		return app.reportError(cmd, err, opts.verbose)
	}
	return nil
}

// watchedFiles returns the configuration files a watch run reacts to.
func watchedFiles(app *App, opts *rootOptions) ([]string, error) {
	if opts.configPath != "" {
		return []string{opts.configPath}, nil
	}
	root, err := app.projectRoot(opts)
	if err != nil {
		return nil, err
	}
	return []string{filepath.Join(root, config.FileName)}, nil
}

func runCargoPrint(cmd *cobra.Command, app *App, opts *rootOptions) error {
	s, err := app.open(cmd.Context(), opts)
	if err != nil {
		return app.reportError(cmd, err, opts.verbose)
	}

	targets, err := toolchain.NewBuilder(s.logger, app.sources(s.cfg)...).Build()
	if err == nil {
		var content []byte
		content, err = cargo.Serialize(targets)
		if err == nil {
			_, err = app.stdout.Write(content)
		}
	}
	if err != nil {
		return app.reportError(cmd, issue.NewErrorContext().
			WithOperation("render cargo config").
			WithResource(s.root).
			Wrap(err).
			BuildError(), opts.verbose)
	}
	return nil
}

func runCargoShow(cmd *cobra.Command, app *App, opts *rootOptions) error {
	path, err := cargoConfigPath(app, opts)
	if err != nil {
		return app.reportError(cmd, err, opts.verbose)
	}

	targets, err := cargo.Read(app.Fs, path)
	if err != nil {
		ctx := issue.NewErrorContext().
			WithOperation("read cargo config").
			WithResource(path).
			Wrap(err)
		if errors.Is(err, fs.ErrNotExist) {
			ctx.WithIssue(issue.CargoConfigMissingId)
		} else {
			ctx.WithSuggestion("Run 'ginit cargo generate' to rewrite the file")
		}
		return app.reportError(cmd, ctx.BuildError(), opts.verbose)
	}

	fmt.Fprintf(app.stdout, "%s %s\n\n", TitleStyle.Render("Cargo config"), SubtitleStyle.Render(path))
	printTargets(app.stdout, targets)
	return nil
}

func runCargoTargets(cmd *cobra.Command, app *App, opts *rootOptions) error {
	s, err := app.open(cmd.Context(), opts)
	if err != nil {
		return app.reportError(cmd, err, opts.verbose)
	}

	androidTriples := make([]toolchain.Triple, 0, len(android.Targets()))
	for _, t := range android.Targets() {
		androidTriples = append(androidTriples, t.Triple)
	}
	iosTriples := make([]toolchain.Triple, 0, len(ios.Targets()))
	for _, t := range ios.Targets() {
		iosTriples = append(iosTriples, t.Triple)
	}

	fmt.Fprintln(app.stdout, TitleStyle.Render("Supported targets"))
	printRegistry(app.stdout, android.Platform, androidTriples, s.cfg.Android.Selection())
	printRegistry(app.stdout, ios.Platform, iosTriples, s.cfg.IOS.Selection())
	fmt.Fprintf(app.stdout, "\n%s\n  %s %s\n", SubtitleStyle.Render("desktop"), SuccessStyle.Render("●"), TripleStyle.Render(toolchain.DesktopTriple.String()))
	return nil
}

// cargoConfigPath returns the absolute path of the generated file.
func cargoConfigPath(app *App, opts *rootOptions) (string, error) {
	root, err := app.projectRoot(opts)
	if err != nil {
		return "", err
	}
	resolver, err := project.NewResolver(root)
	if err != nil {
		return "", err
	}
	dir, err := resolver.Resolve(cargo.DirName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, cargo.FileName), nil
}

// printRegistry lists a platform's triples, marking the selected ones.
// A nil selection means every triple is selected.
func printRegistry(w io.Writer, platform string, registry, selection []toolchain.Triple) {
	selected := make(map[toolchain.Triple]bool, len(registry))
	for _, t := range registry {
		selected[t] = selection == nil
	}
	for _, t := range selection {
		selected[t] = true
	}

	fmt.Fprintf(w, "\n%s\n", SubtitleStyle.Render(platform))
	for _, t := range registry {
		mark := SubtitleStyle.Render("○")
		if selected[t] {
			mark = SuccessStyle.Render("●")
		}
		fmt.Fprintf(w, "  %s %s\n", mark, TripleStyle.Render(t.String()))
	}
}

// printTargets writes one block per target in map order.
func printTargets(w io.Writer, m *toolchain.Map) {
	if m.Len() == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("(no target overrides)"))
		return
	}
	for _, e := range m.Entries() {
		fmt.Fprintln(w, TripleStyle.Render(e.Triple.String()))
		if e.Override.Archiver != "" {
			fmt.Fprintf(w, "  %s%s\n", labelStyle.Render("ar"), e.Override.Archiver)
		}
		if e.Override.Linker != "" {
			fmt.Fprintf(w, "  %s%s\n", labelStyle.Render("linker"), e.Override.Linker)
		}
		if len(e.Override.RustFlags) > 0 {
			fmt.Fprintf(w, "  %s%s\n", labelStyle.Render("rustflags"), strings.Join(e.Override.RustFlags, " "))
		}
	}
}

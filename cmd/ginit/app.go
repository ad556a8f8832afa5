// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/ginit/ginit/internal/android"
	"github.com/ginit/ginit/internal/cargo"
	"github.com/ginit/ginit/internal/config"
	"github.com/ginit/ginit/internal/ios"
	"github.com/ginit/ginit/internal/platform"
	"github.com/ginit/ginit/internal/project"
	"github.com/ginit/ginit/internal/toolchain"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

type (
	// App wires CLI services and shared dependencies. All Cobra handlers
	// receive an App reference and build their work from it.
	App struct {
		Config    ConfigProvider
		Fs        afero.Fs
		Host      platform.Host
		LookupEnv func(string) (string, bool)
		stdout    io.Writer
		stderr    io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config    ConfigProvider
		Fs        afero.Fs
		Host      platform.Host
		LookupEnv func(string) (string, bool)
		Stdout    io.Writer
		Stderr    io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		Path(ctx context.Context, opts config.LoadOptions) (string, error)
	}

	// rootOptions holds the global flag values of one invocation.
	rootOptions struct {
		verbose    bool
		projectDir string
		configPath string
	}

	// session is the per-invocation state resolved from the global flags.
	session struct {
		root   string
		cfg    *config.Config
		logger *log.Logger
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider(deps.Fs)
	}
	if deps.Host == (platform.Host{}) {
		deps.Host = platform.Host{OS: runtime.GOOS, Arch: runtime.GOARCH}
	}
	if deps.LookupEnv == nil {
		deps.LookupEnv = os.LookupEnv
	}

	return &App{
		Config:    deps.Config,
		Fs:        deps.Fs,
		Host:      deps.Host,
		LookupEnv: deps.LookupEnv,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
	}, nil
}

// newLogger returns the diagnostic logger for one invocation. Verbose runs
// log at debug level; otherwise only warnings and errors are shown.
func (a *App) newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// projectRoot finds the project root from --project-dir or the working
// directory.
func (a *App) projectRoot(opts *rootOptions) (string, error) {
	start := opts.projectDir
	if start == "" {
		start = "."
	}
	return project.FindRoot(a.Fs, start)
}

// open locates the project root and loads its configuration.
func (a *App) open(ctx context.Context, opts *rootOptions) (*session, error) {
	root, err := a.projectRoot(opts)
	if err != nil {
		return nil, err
	}

	logger := a.newLogger(opts.verbose)
	logger.Debug("project root", "path", root)

	cfg, err := a.Config.Load(ctx, config.LoadOptions{ProjectDir: root, ConfigFilePath: opts.configPath})
	if err != nil {
		return nil, err
	}
	return &session{root: root, cfg: cfg, logger: logger}, nil
}

// sources returns the discovery collaborators for the configured platforms.
func (a *App) sources(cfg *config.Config) []toolchain.Source {
	envOpts := android.EnvOptions{
		NDKPath:       cfg.Android.NDKPath,
		MinSDKVersion: cfg.Android.MinSDKVersion,
		Host:          a.Host,
		LookupEnv:     a.LookupEnv,
		Fs:            a.Fs,
	}
	return []toolchain.Source{
		android.NewDiscovery(envOpts, cfg.Android.Selection()),
		ios.NewDiscovery(cfg.IOS.Selection()),
	}
}

// generator assembles the cargo config pipeline for s.
func (a *App) generator(s *session) (*cargo.Generator, error) {
	resolver, err := project.NewResolver(s.root)
	if err != nil {
		return nil, err
	}
	builder := toolchain.NewBuilder(s.logger, a.sources(s.cfg)...)
	return cargo.NewGenerator(builder, resolver, cargo.NewWriter(a.Fs), s.logger), nil
}

// SPDX-License-Identifier: MPL-2.0

package android

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ginit/ginit/internal/platform"
	"github.com/ginit/ginit/internal/toolchain"

	"github.com/spf13/afero"
)

const (
	// Platform is the name this package reports to the toolchain builder.
	Platform = "android"

	// DefaultMinSDKVersion is the API level used for linker names when none
	// is configured.
	DefaultMinSDKVersion = 24
)

// NDK location environment variables, in lookup order.
const (
	EnvNDKHome      = "ANDROID_NDK_HOME"
	EnvNDKHomeShort = "NDK_HOME"
	EnvNDKRoot      = "ANDROID_NDK_ROOT"
)

// ErrNDKNotFound is the sentinel error wrapped by NDKNotFoundError.
var ErrNDKNotFound = errors.New("android NDK not found")

type (
	// EnvOptions controls how NewEnv locates the NDK.
	// Zero-valued fields fall back to the process environment.
	EnvOptions struct {
		// NDKPath overrides the environment variable lookup when set.
		NDKPath string
		// MinSDKVersion is the Android API level; 0 means DefaultMinSDKVersion.
		MinSDKVersion int
		// Host is the build machine; the zero value means runtime.GOOS/GOARCH.
		Host platform.Host
		// LookupEnv reads environment variables; nil means os.LookupEnv.
		LookupEnv func(string) (string, bool)
		// Fs is used to probe the NDK layout; nil means the OS filesystem.
		Fs afero.Fs
	}

	// Env is an initialized Android host environment.
	Env struct {
		// NDKHome is the NDK root directory.
		NDKHome string
		// Host is the build machine.
		Host platform.Host
		// HostTag names the prebuilt toolchain directory for Host.
		HostTag string
		// MinSDKVersion is the API level baked into linker names.
		MinSDKVersion int
	}

	// NDKNotFoundError is returned when no usable NDK installation is found.
	// It wraps ErrNDKNotFound for errors.Is() compatibility.
	NDKNotFoundError struct {
		// Path is the location that was checked; empty if none was configured.
		Path string
		// Source says where Path came from (an env var name or "configuration").
		Source string
		// Reason describes what was wrong with Path.
		Reason string
	}
)

// NewEnv locates the NDK and its prebuilt LLVM toolchain for the host.
// Every failure is reported as a *toolchain.EnvironmentInitError.
func NewEnv(opts EnvOptions) (*Env, error) {
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Host == (platform.Host{}) {
		opts.Host = platform.Host{OS: runtime.GOOS, Arch: runtime.GOARCH}
	}
	if opts.MinSDKVersion == 0 {
		opts.MinSDKVersion = DefaultMinSDKVersion
	}

	env, err := newEnv(opts)
	if err != nil {
		return nil, &toolchain.EnvironmentInitError{Platform: Platform, Cause: err}
	}
	return env, nil
}

func newEnv(opts EnvOptions) (*Env, error) {
	home, source := resolveNDKHome(opts)
	if home == "" {
		return nil, &NDKNotFoundError{Reason: fmt.Sprintf("none of %s, %s, %s is set", EnvNDKHome, EnvNDKHomeShort, EnvNDKRoot)}
	}

	if ok, err := afero.DirExists(opts.Fs, home); err != nil || !ok {
		return nil, &NDKNotFoundError{Path: home, Source: source, Reason: "directory does not exist"}
	}

	tag, err := opts.Host.NDKTag()
	if err != nil {
		return nil, err
	}

	env := &Env{
		NDKHome:       home,
		Host:          opts.Host,
		HostTag:       tag,
		MinSDKVersion: opts.MinSDKVersion,
	}
	if ok, err := afero.DirExists(opts.Fs, env.PrebuiltDir()); err != nil || !ok {
		return nil, &NDKNotFoundError{
			Path:   home,
			Source: source,
			Reason: fmt.Sprintf("missing prebuilt toolchain %s", filepath.Join("toolchains", "llvm", "prebuilt", tag)),
		}
	}
	return env, nil
}

func resolveNDKHome(opts EnvOptions) (path, source string) {
	if opts.NDKPath != "" {
		return opts.NDKPath, "configuration"
	}
	for _, name := range []string{EnvNDKHome, EnvNDKHomeShort, EnvNDKRoot} {
		if v, ok := opts.LookupEnv(name); ok && v != "" {
			return v, name
		}
	}
	return "", ""
}

// PrebuiltDir returns the host's prebuilt LLVM toolchain directory.
func (e *Env) PrebuiltDir() string {
	return filepath.Join(e.NDKHome, "toolchains", "llvm", "prebuilt", e.HostTag)
}

// BinPath returns the path of a tool in the prebuilt toolchain's bin directory.
func (e *Env) BinPath(name string) string {
	return filepath.Join(e.PrebuiltDir(), "bin", name)
}

// Error implements the error interface for NDKNotFoundError.
func (e *NDKNotFoundError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("android NDK not found: %s", e.Reason)
	}
	return fmt.Sprintf("android NDK not found at %s (from %s): %s", e.Path, e.Source, e.Reason)
}

// Unwrap returns ErrNDKNotFound for errors.Is() compatibility.
func (e *NDKNotFoundError) Unwrap() error { return ErrNDKNotFound }

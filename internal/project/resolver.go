// SPDX-License-Identifier: MPL-2.0

package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginit/ginit/internal/config"

	"github.com/spf13/afero"
)

// ErrPathResolve is the sentinel error wrapped by PathResolveError.
var ErrPathResolve = errors.New("cannot resolve project path")

type (
	// Resolver maps project-relative names to absolute paths under a root.
	Resolver struct {
		root string
	}

	// PathResolveError is returned for logical names that do not stay inside
	// the project. It wraps ErrPathResolve for errors.Is() compatibility.
	PathResolveError struct {
		Logical string
		Reason  string
	}
)

// FindRoot walks up from start looking for the project config file and
// returns the directory holding it. If no ancestor has one, the absolute
// form of start is the root.
func FindRoot(fs afero.Fs, start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}

	for dir := abs; ; {
		if ok, _ := afero.Exists(fs, filepath.Join(dir, config.FileName)); ok {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		dir = parent
	}
}

// NewResolver creates a Resolver rooted at root, which is made absolute.
func NewResolver(root string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve project root %s: %w", root, err)
	}
	return &Resolver{root: abs}, nil
}

// Root returns the absolute project root.
func (r *Resolver) Root() string { return r.root }

// Resolve returns the absolute path of logical inside the project root.
// Absolute names and names that climb out of the root are rejected.
func (r *Resolver) Resolve(logical string) (string, error) {
	if logical == "" {
		return "", &PathResolveError{Logical: logical, Reason: "name is empty"}
	}
	if filepath.IsAbs(logical) {
		return "", &PathResolveError{Logical: logical, Reason: "name must be relative to the project root"}
	}
	clean := filepath.Clean(logical)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", &PathResolveError{Logical: logical, Reason: "name escapes the project root"}
	}
	return filepath.Join(r.root, clean), nil
}

// Error implements the error interface for PathResolveError.
func (e *PathResolveError) Error() string {
	return fmt.Sprintf("cannot resolve project path %q: %s", e.Logical, e.Reason)
}

// Unwrap returns ErrPathResolve for errors.Is() compatibility.
func (e *PathResolveError) Unwrap() error { return ErrPathResolve }

// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"errors"
	"fmt"

	"github.com/ginit/ginit/internal/toolchain"
)

var (
	// ErrSerialization is matched by SerializationError.
	ErrSerialization = errors.New("cargo config serialization failed")
	// ErrDirectoryCreate is matched by DirectoryCreateError.
	ErrDirectoryCreate = errors.New("cargo config directory creation failed")
	// ErrFileWrite is matched by FileWriteError.
	ErrFileWrite = errors.New("cargo config write failed")
)

type (
	// SerializationError is returned when the target map cannot be rendered.
	// The data model makes this unreachable for valid triples, so it signals
	// a broken invariant rather than a user mistake.
	SerializationError struct {
		// Triple is the entry being rendered, if the failure is entry-specific.
		Triple toolchain.Triple
		Cause  error
	}

	// DirectoryCreateError is returned when the output directory or one of
	// its ancestors cannot be created.
	DirectoryCreateError struct {
		Path  string
		Cause error
	}

	// FileWriteError is returned when the config file cannot be created,
	// written, flushed or closed.
	FileWriteError struct {
		Path string
		// Op is the step that failed: "create", "write", "sync" or "close".
		Op    string
		Cause error
	}
)

// Error implements the error interface for SerializationError.
func (e *SerializationError) Error() string {
	if e.Triple == "" {
		return fmt.Sprintf("serialize cargo config: %v", e.Cause)
	}
	return fmt.Sprintf("serialize cargo config for target %q: %v", e.Triple, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *SerializationError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrSerialization.
func (e *SerializationError) Is(target error) bool { return target == ErrSerialization }

// Error implements the error interface for DirectoryCreateError.
func (e *DirectoryCreateError) Error() string {
	return fmt.Sprintf("create directory %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *DirectoryCreateError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrDirectoryCreate.
func (e *DirectoryCreateError) Is(target error) bool { return target == ErrDirectoryCreate }

// Error implements the error interface for FileWriteError.
func (e *FileWriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *FileWriteError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrFileWrite.
func (e *FileWriteError) Is(target error) bool { return target == ErrFileWrite }

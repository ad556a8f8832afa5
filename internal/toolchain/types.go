// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var (
	// ErrInvalidTriple is the sentinel error wrapped by InvalidTripleError.
	ErrInvalidTriple = errors.New("invalid target triple")
	// ErrEnvironmentInit is the sentinel error wrapped by EnvironmentInitError.
	ErrEnvironmentInit = errors.New("toolchain environment initialization failed")
	// ErrUnknownTarget is the sentinel error wrapped by UnknownTargetError.
	ErrUnknownTarget = errors.New("unknown target triple")
)

type (
	// Triple identifies a compilation target (architecture-platform-ABI),
	// e.g. "aarch64-linux-android".
	Triple string

	// InvalidTripleError is returned when a Triple is empty or contains
	// characters that cannot appear in a target name.
	// It wraps ErrInvalidTriple for errors.Is() compatibility.
	InvalidTripleError struct {
		Value Triple
	}

	// Override holds the Cargo settings that replace the defaults for one
	// target. An empty Archiver or Linker means "use Cargo's default".
	// RustFlags is order-sensitive: "-C" must stay next to its argument.
	Override struct {
		Archiver  string
		Linker    string
		RustFlags []string
	}

	// Entry pairs a triple with its override.
	Entry struct {
		Triple   Triple
		Override Override
	}

	// EnvironmentInitError is returned when a discovery source cannot set up
	// the host state it needs (e.g. the Android NDK location).
	// It matches ErrEnvironmentInit via errors.Is() and unwraps to its Cause.
	EnvironmentInitError struct {
		// Platform names the source that failed, e.g. "android".
		Platform string
		// Cause is the underlying failure.
		Cause error
	}

	// UnknownTargetError is returned when a target selection names a triple
	// that the platform registry does not support.
	UnknownTargetError struct {
		Platform string
		Triple   Triple
	}
)

// String returns the string representation of the Triple.
func (t Triple) String() string { return string(t) }

// IsValid reports whether the Triple is usable as a target name: non-empty
// and made only of ASCII letters, digits, '-', '_' and '.'.
func (t Triple) IsValid() (bool, []error) {
	if t == "" {
		return false, []error{&InvalidTripleError{Value: t}}
	}
	for _, r := range t {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false, []error{&InvalidTripleError{Value: t}}
		}
	}
	return true, nil
}

// Error implements the error interface for InvalidTripleError.
func (e *InvalidTripleError) Error() string {
	return fmt.Sprintf("invalid target triple %q: must be non-empty and contain only letters, digits, '-', '_' or '.'", e.Value)
}

// Unwrap returns ErrInvalidTriple for errors.Is() compatibility.
func (e *InvalidTripleError) Unwrap() error { return ErrInvalidTriple }

// IsEmpty reports whether the override changes nothing: no archiver, no
// linker and no flags.
func (o Override) IsEmpty() bool {
	return o.Archiver == "" && o.Linker == "" && len(o.RustFlags) == 0
}

// Clone returns a copy that shares no memory with o.
func (o Override) Clone() Override {
	o.RustFlags = slices.Clone(o.RustFlags)
	return o
}

// Error implements the error interface for EnvironmentInitError.
func (e *EnvironmentInitError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("initialize %s environment", e.Platform)
	}
	return fmt.Sprintf("initialize %s environment: %v", e.Platform, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *EnvironmentInitError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrEnvironmentInit.
func (e *EnvironmentInitError) Is(target error) bool { return target == ErrEnvironmentInit }

// Error implements the error interface for UnknownTargetError.
func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown %s target %q", e.Platform, e.Triple)
}

// Unwrap returns ErrUnknownTarget for errors.Is() compatibility.
func (e *UnknownTargetError) Unwrap() error { return ErrUnknownTarget }

// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"fmt"
)

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Architecture constants for runtime.GOARCH comparisons.
const (
	Amd64 = "amd64"
	Arm64 = "arm64"
)

// ErrHostNotSupported is the sentinel error wrapped by HostNotSupportedError.
var ErrHostNotSupported = errors.New("host not supported")

type (
	// Host describes the machine the generator runs on.
	Host struct {
		// OS is a runtime.GOOS value.
		OS string
		// Arch is a runtime.GOARCH value.
		Arch string
	}

	// HostNotSupportedError is returned when no prebuilt toolchain exists for
	// a host. It wraps ErrHostNotSupported for errors.Is() compatibility.
	HostNotSupportedError struct {
		Host Host
	}
)

func (h Host) String() string {
	return h.OS + "-" + h.Arch
}

// NDKTag returns the name of the NDK's prebuilt LLVM directory for the host
// (toolchains/llvm/prebuilt/<tag>). The NDK ships a single universal macOS
// build under darwin-x86_64, so Apple silicon maps there too.
func (h Host) NDKTag() (string, error) {
	switch h.OS {
	case Darwin:
		if h.Arch == Amd64 || h.Arch == Arm64 {
			return "darwin-x86_64", nil
		}
	case Linux:
		if h.Arch == Amd64 {
			return "linux-x86_64", nil
		}
	case Windows:
		if h.Arch == Amd64 {
			return "windows-x86_64", nil
		}
	}
	return "", &HostNotSupportedError{Host: h}
}

// ExecutableSuffix returns the suffix of wrapper scripts the NDK installs for
// clang on this host: ".cmd" on Windows, nothing elsewhere.
func (h Host) ExecutableSuffix() string {
	if h.OS == Windows {
		return ".cmd"
	}
	return ""
}

// Error implements the error interface for HostNotSupportedError.
func (e *HostNotSupportedError) Error() string {
	return fmt.Sprintf("no prebuilt NDK toolchain for host %s", e.Host)
}

// Unwrap returns ErrHostNotSupported for errors.Is() compatibility.
func (e *HostNotSupportedError) Unwrap() error { return ErrHostNotSupported }

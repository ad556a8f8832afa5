// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/ginit/ginit/internal/android"
	"github.com/ginit/ginit/internal/toolchain"
)

const (
	// MinSupportedSDKVersion is the lowest Android API level accepted.
	MinSupportedSDKVersion = 16
	// MaxSupportedSDKVersion is the highest Android API level accepted.
	MaxSupportedSDKVersion = 40
)

var (
	// ErrInvalidMinSDKVersion is returned when an API level is out of range.
	ErrInvalidMinSDKVersion = errors.New("invalid min SDK version")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Config holds the project configuration.
	Config struct {
		// App describes the application being built.
		App AppConfig `json:"app" mapstructure:"app"`
		// Android configures Android target discovery.
		Android AndroidConfig `json:"android" mapstructure:"android"`
		// IOS configures iOS target discovery.
		IOS IOSConfig `json:"ios" mapstructure:"ios"`
	}

	// AppConfig describes the application.
	AppConfig struct {
		Name string `json:"name" mapstructure:"name"`
	}

	// AndroidConfig configures Android target discovery.
	AndroidConfig struct {
		// Enabled turns Android discovery on. Disabled platforms contribute
		// no targets and need no NDK.
		Enabled bool `json:"enabled" mapstructure:"enabled"`
		// MinSDKVersion is the API level used in linker names.
		MinSDKVersion int `json:"min_sdk_version" mapstructure:"min_sdk_version"`
		// NDKPath overrides the NDK environment variables when set.
		NDKPath string `json:"ndk_path" mapstructure:"ndk_path"`
		// Targets restricts the registry; nil means every Android target.
		Targets []toolchain.Triple `json:"targets" mapstructure:"targets"`
	}

	// IOSConfig configures iOS target discovery.
	IOSConfig struct {
		Enabled bool `json:"enabled" mapstructure:"enabled"`
		// Targets restricts the registry; nil means every iOS target.
		Targets []toolchain.Triple `json:"targets" mapstructure:"targets"`
	}

	// InvalidMinSDKVersionError is returned when MinSDKVersion is outside the
	// supported range. It wraps ErrInvalidMinSDKVersion for errors.Is()
	// compatibility.
	InvalidMinSDKVersionError struct {
		Value int
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig and every field error.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the configuration used when no ginit.cue exists.
func DefaultConfig() *Config {
	return &Config{
		Android: AndroidConfig{
			Enabled:       true,
			MinSDKVersion: android.DefaultMinSDKVersion,
		},
		IOS: IOSConfig{
			Enabled: true,
		},
	}
}

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if c.Android.MinSDKVersion < MinSupportedSDKVersion || c.Android.MinSDKVersion > MaxSupportedSDKVersion {
		errs = append(errs, &InvalidMinSDKVersionError{Value: c.Android.MinSDKVersion})
	}
	for _, t := range c.Android.Targets {
		if valid, fieldErrs := t.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	for _, t := range c.IOS.Targets {
		if valid, fieldErrs := t.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Validate returns the first IsValid error, or nil.
func (c Config) Validate() error {
	if valid, errs := c.IsValid(); !valid {
		return errs[0]
	}
	return nil
}

// Selection returns the Android triples to discover: nil for the whole
// registry, an empty slice when Android is disabled.
func (c AndroidConfig) Selection() []toolchain.Triple {
	return selection(c.Enabled, c.Targets)
}

// Selection returns the iOS triples to discover: nil for the whole registry,
// an empty slice when iOS is disabled.
func (c IOSConfig) Selection() []toolchain.Triple {
	return selection(c.Enabled, c.Targets)
}

func selection(enabled bool, targets []toolchain.Triple) []toolchain.Triple {
	if !enabled {
		return []toolchain.Triple{}
	}
	return targets
}

// Error implements the error interface for InvalidMinSDKVersionError.
func (e *InvalidMinSDKVersionError) Error() string {
	return fmt.Sprintf("invalid min SDK version %d (must be between %d and %d)",
		e.Value, MinSupportedSDKVersion, MaxSupportedSDKVersion)
}

// Unwrap returns ErrInvalidMinSDKVersion for errors.Is() compatibility.
func (e *InvalidMinSDKVersionError) Unwrap() error { return ErrInvalidMinSDKVersion }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return "invalid config: " + e.FieldErrors[0].Error()
	}
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so
// errors.Is() matches both the sentinel and individual field sentinels.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

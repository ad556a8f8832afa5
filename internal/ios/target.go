// SPDX-License-Identifier: MPL-2.0

package ios

import (
	"github.com/ginit/ginit/internal/toolchain"

	"golang.org/x/exp/slices"
)

// Platform is the name this package reports to the toolchain builder.
const Platform = "ios"

// Target is an iOS architecture that Rust can build for.
type Target struct {
	Triple toolchain.Triple
	// Arch is the Xcode architecture name.
	Arch string
	// Simulator is true for targets that run in the iOS simulator.
	Simulator bool
}

var targets = []Target{
	{Triple: "aarch64-apple-ios", Arch: "arm64"},
	{Triple: "aarch64-apple-ios-sim", Arch: "arm64", Simulator: true},
	{Triple: "x86_64-apple-ios", Arch: "x86_64", Simulator: true},
}

// Targets returns every supported iOS target.
func Targets() []Target {
	return slices.Clone(targets)
}

// GenerateOverride returns the Cargo settings for this target.
func (t Target) GenerateOverride() toolchain.Override {
	return toolchain.Override{}
}

// Discovery reports iOS overrides to a toolchain.Builder. It never fails
// except on an unknown target selection.
type Discovery struct {
	only []toolchain.Triple
}

// NewDiscovery creates a Discovery. A nil only selects every target.
func NewDiscovery(only []toolchain.Triple) *Discovery {
	return &Discovery{only: only}
}

// Platform implements toolchain.Source.
func (d *Discovery) Platform() string { return Platform }

// Overrides implements toolchain.Source.
func (d *Discovery) Overrides() ([]toolchain.Entry, error) {
	selected, err := toolchain.Select(Platform, targets, func(t Target) toolchain.Triple { return t.Triple }, d.only)
	if err != nil {
		return nil, err
	}
	entries := make([]toolchain.Entry, 0, len(selected))
	for _, t := range selected {
		entries = append(entries, toolchain.Entry{Triple: t.Triple, Override: t.GenerateOverride()})
	}
	return entries, nil
}

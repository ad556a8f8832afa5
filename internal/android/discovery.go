// SPDX-License-Identifier: MPL-2.0

package android

import "github.com/ginit/ginit/internal/toolchain"

// Discovery reports Android overrides to a toolchain.Builder.
type Discovery struct {
	opts EnvOptions
	only []toolchain.Triple
}

// NewDiscovery creates a Discovery that initializes its environment with
// opts. A nil only selects every supported target.
func NewDiscovery(opts EnvOptions, only []toolchain.Triple) *Discovery {
	return &Discovery{opts: opts, only: only}
}

// Platform implements toolchain.Source.
func (d *Discovery) Platform() string { return Platform }

// Overrides implements toolchain.Source. The NDK is only located when at
// least one target is selected, so a project with Android disabled never
// needs one installed.
func (d *Discovery) Overrides() ([]toolchain.Entry, error) {
	selected, err := toolchain.Select(Platform, targets, func(t Target) toolchain.Triple { return t.Triple }, d.only)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, nil
	}

	env, err := NewEnv(d.opts)
	if err != nil {
		return nil, err
	}

	entries := make([]toolchain.Entry, 0, len(selected))
	for _, t := range selected {
		entries = append(entries, toolchain.Entry{Triple: t.Triple, Override: t.GenerateOverride(env)})
	}
	return entries, nil
}

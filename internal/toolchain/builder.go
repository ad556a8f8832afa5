// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// desktopPlatform labels the hand-authored desktop entry in log output.
const desktopPlatform = "desktop"

type (
	// Source is a discovery collaborator that reports the override each of
	// its supported targets needs. Entries may come back in any order and may
	// contain empty overrides; Builder handles ordering and pruning.
	Source interface {
		// Platform names the source for diagnostics, e.g. "android".
		Platform() string
		// Overrides returns one entry per supported target.
		Overrides() ([]Entry, error)
	}

	// Builder produces the pruned target map for one generation run.
	// It holds no state between runs.
	Builder struct {
		sources []Source
		logger  *log.Logger
	}
)

// NewBuilder creates a Builder that queries sources in the given order.
// A nil logger discards output.
func NewBuilder(logger *log.Logger, sources ...Source) *Builder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Builder{sources: sources, logger: logger}
}

// Build queries every source, adds the desktop hot-reload entry and drops
// empty overrides. A failing source aborts the build; nothing is returned
// for the sources that succeeded before it.
//
// Sources are expected to report disjoint triples. If two report the same
// triple the later one wins and a warning is logged.
func (b *Builder) Build() (*Map, error) {
	m := NewMap()
	owners := make(map[Triple]string)

	for _, src := range b.sources {
		entries, err := src.Overrides()
		if err != nil {
			return nil, fmt.Errorf("discover %s targets: %w", src.Platform(), err)
		}
		b.logger.Debug("discovered targets", "platform", src.Platform(), "count", len(entries))
		for _, e := range entries {
			b.insert(m, owners, src.Platform(), e)
		}
	}

	b.insert(m, owners, desktopPlatform, Entry{Triple: DesktopTriple, Override: DesktopOverride()})

	pruned, dropped := m.Pruned()
	for _, t := range dropped {
		b.logger.Debug("dropping target without overrides", "triple", t, "platform", owners[t])
	}
	return pruned, nil
}

func (b *Builder) insert(m *Map, owners map[Triple]string, platform string, e Entry) {
	if m.Set(e.Triple, e.Override) {
		b.logger.Warn("target reported twice, keeping the later override",
			"triple", e.Triple, "previous", owners[e.Triple], "current", platform)
	}
	owners[e.Triple] = platform
}

// Select returns the registry items whose triple appears in only, keeping
// registry order. A nil only selects the whole registry; an empty non-nil
// only selects nothing. Naming a triple the registry lacks is an
// UnknownTargetError.
func Select[T any](platform string, registry []T, tripleOf func(T) Triple, only []Triple) ([]T, error) {
	if only == nil {
		return registry, nil
	}

	wanted := make(map[Triple]bool, len(only))
	for _, t := range only {
		wanted[t] = true
	}

	selected := make([]T, 0, len(only))
	for _, item := range registry {
		t := tripleOf(item)
		if wanted[t] {
			selected = append(selected, item)
			delete(wanted, t)
		}
	}

	// Report the first unknown triple in the caller's order.
	for _, t := range only {
		if wanted[t] {
			return nil, &UnknownTargetError{Platform: platform, Triple: t}
		}
	}
	return selected, nil
}

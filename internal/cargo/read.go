// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"fmt"

	"github.com/ginit/ginit/internal/toolchain"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// Read loads the target tables of an existing Cargo config file. Settings
// outside [target.*] are ignored. A missing file yields an error matching
// fs.ErrNotExist.
func Read(fs afero.Fs, path string) (*toolchain.Map, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read cargo config: %w", err)
	}

	var doc struct {
		Target map[string]cargoTarget `toml:"target"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode cargo config %s: %w", path, err)
	}

	m := toolchain.NewMap()
	for triple, target := range doc.Target {
		m.Set(toolchain.Triple(triple), target.override())
	}
	return m, nil
}

// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"bytes"
	"strings"

	"github.com/ginit/ginit/internal/toolchain"

	"github.com/pelletier/go-toml/v2"
)

// cargoTarget is the on-disk shape of one [target.<triple>] table.
type cargoTarget struct {
	Ar        string   `toml:"ar,omitempty"`
	Linker    string   `toml:"linker,omitempty"`
	Rustflags []string `toml:"rustflags"`
}

func newCargoTarget(o toolchain.Override) cargoTarget {
	// A non-nil slice keeps "rustflags = []" in the output.
	flags := make([]string, len(o.RustFlags))
	copy(flags, o.RustFlags)
	return cargoTarget{Ar: o.Archiver, Linker: o.Linker, Rustflags: flags}
}

func (c cargoTarget) override() toolchain.Override {
	return toolchain.Override{Archiver: c.Ar, Linker: c.Linker, RustFlags: c.Rustflags}
}

// Serialize renders m as Cargo configuration TOML. Tables are emitted in the
// order of m.Entries(), which is sorted by triple, so equal maps always
// produce identical bytes. Table bodies are encoded by go-toml.
func Serialize(m *toolchain.Map) ([]byte, error) {
	var buf bytes.Buffer
	for i, e := range m.Entries() {
		if ok, errs := e.Triple.IsValid(); !ok {
			return nil, &SerializationError{Triple: e.Triple, Cause: errs[0]}
		}

		body, err := toml.Marshal(newCargoTarget(e.Override))
		if err != nil {
			return nil, &SerializationError{Triple: e.Triple, Cause: err}
		}

		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString("[target.")
		buf.WriteString(tableKey(e.Triple))
		buf.WriteString("]\n")
		buf.Write(body)
	}
	return buf.Bytes(), nil
}

// tableKey renders a valid triple as a TOML key. Triples with a dot (e.g.
// "thumbv8m.main-none-eabi") must be quoted so the dot is not read as a
// nested table; the validated alphabet needs no escaping inside quotes.
func tableKey(t toolchain.Triple) string {
	if strings.Contains(string(t), ".") {
		return `"` + string(t) + `"`
	}
	return string(t)
}

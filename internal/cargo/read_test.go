// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/ginit/ginit/internal/toolchain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/afero"
)

func TestRead_RoundTrip(t *testing.T) {
	t.Parallel()

	m := toolchain.NewMap()
	m.Set("aarch64-linux-android", toolchain.Override{
		Archiver:  "/ndk/bin/llvm-ar",
		Linker:    "/ndk/bin/aarch64-linux-android24-clang",
		RustFlags: []string{"-C", "link-arg=-llog"},
	})
	m.Set("i686-linux-android", toolchain.Override{Linker: "ld.lld"})
	m.Set(toolchain.DesktopTriple, toolchain.DesktopOverride())

	text, err := Serialize(m)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	memFs := afero.NewMemMapFs()
	if err := afero.WriteFile(memFs, "/p/.cargo/config", text, 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, err := Read(memFs, "/p/.cargo/config")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if diff := cmp.Diff(m.Entries(), got.Entries(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_IgnoresOtherTables(t *testing.T) {
	t.Parallel()

	memFs := afero.NewMemMapFs()
	content := "[build]\njobs = 4\n\n[target.aarch64-apple-ios]\nlinker = 'cc'\n"
	if err := afero.WriteFile(memFs, "/config", []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, err := Read(memFs, "/config")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if diff := cmp.Diff([]toolchain.Triple{"aarch64-apple-ios"}, got.Triples()); diff != "" {
		t.Errorf("triples mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	memFs := afero.NewMemMapFs()
	if _, err := Read(memFs, "/missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: error = %v, want fs.ErrNotExist", err)
	}

	if err := afero.WriteFile(memFs, "/broken", []byte("[target.x\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := Read(memFs, "/broken"); err == nil {
		t.Error("malformed file: expected a decode error")
	}
}

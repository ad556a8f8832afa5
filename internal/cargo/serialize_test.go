// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ginit/ginit/internal/toolchain"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"
)

// tableHeaders returns the table header lines of a rendered config, in order.
func tableHeaders(text []byte) []string {
	var headers []string
	for _, line := range strings.Split(string(text), "\n") {
		if strings.HasPrefix(line, "[") {
			headers = append(headers, line)
		}
	}
	return headers
}

func decodeTargets(t *testing.T, text []byte) map[string]map[string]any {
	t.Helper()
	var doc struct {
		Target map[string]map[string]any `toml:"target"`
	}
	if err := toml.Unmarshal(text, &doc); err != nil {
		t.Fatalf("rendered config is not valid TOML: %v\n%s", err, text)
	}
	return doc.Target
}

func TestSerialize_ExactOutput(t *testing.T) {
	t.Parallel()

	m := toolchain.NewMap()
	m.Set(toolchain.DesktopTriple, toolchain.DesktopOverride())
	m.Set("aarch64-linux-android", toolchain.Override{Linker: "ld.lld", RustFlags: []string{}})
	m.Set("armv7-linux-androideabi", toolchain.Override{
		Archiver:  "/ndk/bin/llvm-ar",
		Linker:    "/ndk/bin/armv7a-linux-androideabi24-clang",
		RustFlags: []string{"-C", "link-arg=-landroid"},
	})

	text, err := Serialize(m)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	want := `[target.aarch64-linux-android]
linker = 'ld.lld'
rustflags = []

[target.armv7-linux-androideabi]
ar = '/ndk/bin/llvm-ar'
linker = '/ndk/bin/armv7a-linux-androideabi24-clang'
rustflags = ['-C', 'link-arg=-landroid']

[target.x86_64-apple-darwin]
rustflags = ['-C', 'target-cpu=native', '-C', 'link-arg=-headerpad_max_install_names']
`
	if diff := cmp.Diff(want, string(text)); diff != "" {
		t.Errorf("Serialize() output mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_AndroidLinkerScenario(t *testing.T) {
	t.Parallel()

	m := toolchain.NewMap()
	m.Set("aarch64-linux-android", toolchain.Override{Linker: "ld.lld", RustFlags: []string{}})
	m.Set(toolchain.DesktopTriple, toolchain.DesktopOverride())

	text, err := Serialize(m)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	wantHeaders := []string{"[target.aarch64-linux-android]", "[target.x86_64-apple-darwin]"}
	if diff := cmp.Diff(wantHeaders, tableHeaders(text)); diff != "" {
		t.Errorf("table headers mismatch (-want +got):\n%s", diff)
	}

	targets := decodeTargets(t, text)
	if len(targets) != 2 {
		t.Fatalf("decoded %d targets, want 2:\n%s", len(targets), text)
	}

	android := targets["aarch64-linux-android"]
	if android["linker"] != "ld.lld" {
		t.Errorf("linker = %v, want ld.lld", android["linker"])
	}
	if _, ok := android["ar"]; ok {
		t.Error("absent archiver should not be rendered")
	}
	if flags, ok := android["rustflags"].([]any); !ok || len(flags) != 0 {
		t.Errorf("rustflags = %#v, want an empty array", android["rustflags"])
	}

	desktop := targets["x86_64-apple-darwin"]
	wantFlags := []any{"-C", "target-cpu=native", "-C", "link-arg=-headerpad_max_install_names"}
	if diff := cmp.Diff(wantFlags, desktop["rustflags"]); diff != "" {
		t.Errorf("desktop rustflags mismatch (-want +got):\n%s", diff)
	}
	if _, ok := desktop["linker"]; ok {
		t.Error("desktop entry should not set a linker")
	}
}

func TestSerialize_OrderIndependentOfInsertion(t *testing.T) {
	t.Parallel()

	entries := []toolchain.Entry{
		{Triple: "x86_64-linux-android", Override: toolchain.Override{Archiver: "ar"}},
		{Triple: "aarch64-linux-android", Override: toolchain.Override{Archiver: "ar"}},
		{Triple: "armv7-linux-androideabi", Override: toolchain.Override{Archiver: "ar"}},
		{Triple: toolchain.DesktopTriple, Override: toolchain.DesktopOverride()},
	}

	forward := toolchain.NewMap()
	for _, e := range entries {
		forward.Set(e.Triple, e.Override)
	}
	backward := toolchain.NewMap()
	for i := len(entries) - 1; i >= 0; i-- {
		backward.Set(entries[i].Triple, entries[i].Override)
	}

	a, err := Serialize(forward)
	if err != nil {
		t.Fatalf("Serialize(forward) error: %v", err)
	}
	b, err := Serialize(backward)
	if err != nil {
		t.Fatalf("Serialize(backward) error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("insertion order changed the output:\n--- forward\n%s\n--- backward\n%s", a, b)
	}

	want := []string{
		"[target.aarch64-linux-android]",
		"[target.armv7-linux-androideabi]",
		"[target.x86_64-apple-darwin]",
		"[target.x86_64-linux-android]",
	}
	if diff := cmp.Diff(want, tableHeaders(a)); diff != "" {
		t.Errorf("table headers mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_QuotesDottedTriples(t *testing.T) {
	t.Parallel()

	m := toolchain.NewMap()
	m.Set("thumbv8m.main-none-eabi", toolchain.Override{Linker: "rust-lld"})

	text, err := Serialize(m)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	if diff := cmp.Diff([]string{`[target."thumbv8m.main-none-eabi"]`}, tableHeaders(text)); diff != "" {
		t.Errorf("table headers mismatch (-want +got):\n%s", diff)
	}
	if _, ok := decodeTargets(t, text)["thumbv8m.main-none-eabi"]; !ok {
		t.Errorf("dotted triple did not decode as a single key:\n%s", text)
	}
}

func TestSerialize_KeepsFlagOrder(t *testing.T) {
	t.Parallel()

	flags := []string{"-C", "link-arg=-z", "-C", "link-arg=nostart-stop-gc", "--cfg", "foo"}
	m := toolchain.NewMap()
	m.Set("aarch64-linux-android", toolchain.Override{RustFlags: flags})

	text, err := Serialize(m)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	got := decodeTargets(t, text)["aarch64-linux-android"]["rustflags"]
	want := []any{"-C", "link-arg=-z", "-C", "link-arg=nostart-stop-gc", "--cfg", "foo"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rustflags mismatch (-want +got):\n%s", diff)
	}
}

func TestSerialize_InvalidTriple(t *testing.T) {
	t.Parallel()

	m := toolchain.NewMap()
	m.Set("bad triple", toolchain.Override{Linker: "cc"})

	_, err := Serialize(m)
	if !errors.Is(err, ErrSerialization) {
		t.Fatalf("Serialize() error = %v, want ErrSerialization", err)
	}
	var serErr *SerializationError
	if !errors.As(err, &serErr) || serErr.Triple != "bad triple" {
		t.Errorf("error should name the offending triple, got %v", err)
	}
	if !errors.Is(err, toolchain.ErrInvalidTriple) {
		t.Errorf("error should wrap ErrInvalidTriple, got %v", err)
	}
}

func TestSerialize_EmptyMap(t *testing.T) {
	t.Parallel()

	text, err := Serialize(toolchain.NewMap())
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	if len(text) != 0 {
		t.Errorf("Serialize(empty) = %q, want no output", text)
	}
}

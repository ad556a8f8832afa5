// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMap_TriplesAreSortedRegardlessOfInsertionOrder(t *testing.T) {
	t.Parallel()

	m := NewMap()
	m.Set("x86_64-linux-android", Override{Linker: "d"})
	m.Set("aarch64-linux-android", Override{Linker: "a"})
	m.Set("i686-linux-android", Override{Linker: "c"})
	m.Set("armv7-linux-androideabi", Override{Linker: "b"})

	want := []Triple{
		"aarch64-linux-android",
		"armv7-linux-androideabi",
		"i686-linux-android",
		"x86_64-linux-android",
	}
	if diff := cmp.Diff(want, m.Triples()); diff != "" {
		t.Errorf("Triples() mismatch (-want +got):\n%s", diff)
	}

	entries := m.Entries()
	for i, e := range entries {
		if e.Triple != want[i] {
			t.Errorf("Entries()[%d].Triple = %q, want %q", i, e.Triple, want[i])
		}
	}
}

func TestMap_SetReportsReplacement(t *testing.T) {
	t.Parallel()

	m := NewMap()
	if m.Set("aarch64-apple-ios", Override{}) {
		t.Error("first Set reported a replacement")
	}
	if !m.Set("aarch64-apple-ios", Override{Linker: "ld"}) {
		t.Error("second Set did not report a replacement")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
	got, ok := m.Get("aarch64-apple-ios")
	if !ok || got.Linker != "ld" {
		t.Errorf("Get() = %+v, %v; want the later override", got, ok)
	}
}

func TestMap_StoresCopies(t *testing.T) {
	t.Parallel()

	flags := []string{"-C", "target-cpu=native"}
	m := NewMap()
	m.Set(DesktopTriple, Override{RustFlags: flags})
	flags[1] = "target-cpu=generic"

	got, _ := m.Get(DesktopTriple)
	got.RustFlags[0] = "-Z"

	again, _ := m.Get(DesktopTriple)
	if diff := cmp.Diff([]string{"-C", "target-cpu=native"}, again.RustFlags); diff != "" {
		t.Errorf("stored flags changed through an alias (-want +got):\n%s", diff)
	}
}

func TestMap_Pruned(t *testing.T) {
	t.Parallel()

	m := NewMap()
	m.Set("aarch64-apple-ios", Override{})
	m.Set("x86_64-apple-ios", Override{RustFlags: []string{}})
	m.Set("aarch64-linux-android", Override{Linker: "ld.lld"})
	m.Set(DesktopTriple, DesktopOverride())

	pruned, dropped := m.Pruned()

	if diff := cmp.Diff([]Triple{"aarch64-linux-android", DesktopTriple}, pruned.Triples()); diff != "" {
		t.Errorf("pruned triples mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Triple{"aarch64-apple-ios", "x86_64-apple-ios"}, dropped); diff != "" {
		t.Errorf("dropped triples mismatch (-want +got):\n%s", diff)
	}
	if m.Len() != 4 {
		t.Errorf("Pruned() modified the receiver: Len() = %d, want 4", m.Len())
	}
	for _, e := range pruned.Entries() {
		if e.Override.IsEmpty() {
			t.Errorf("pruned map still holds empty override for %q", e.Triple)
		}
	}
}

func TestDesktopOverride(t *testing.T) {
	t.Parallel()

	want := Override{RustFlags: []string{
		"-C", "target-cpu=native",
		"-C", "link-arg=-headerpad_max_install_names",
	}}
	if diff := cmp.Diff(want, DesktopOverride()); diff != "" {
		t.Errorf("DesktopOverride() mismatch (-want +got):\n%s", diff)
	}
	if DesktopOverride().IsEmpty() {
		t.Error("desktop override must never be empty")
	}
}

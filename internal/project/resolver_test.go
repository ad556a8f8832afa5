// SPDX-License-Identifier: MPL-2.0

package project

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ginit/ginit/internal/config"
	"github.com/ginit/ginit/internal/testutil"

	"github.com/spf13/afero"
)

func TestFindRoot(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	root := filepath.FromSlash("/work/app")
	if err := afero.WriteFile(fs, filepath.Join(root, config.FileName), []byte("app: name: \"demo\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	nested := filepath.Join(root, "src", "lib")
	if err := fs.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}

	tests := []struct {
		name  string
		start string
		want  string
	}{
		{"at the root", root, root},
		{"from a nested directory", nested, root},
		{"outside any project", filepath.FromSlash("/elsewhere/dir"), filepath.FromSlash("/elsewhere/dir")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FindRoot(fs, tt.start)
			if err != nil {
				t.Fatalf("FindRoot() error: %v", err)
			}
			// filepath.Abs adds a volume name on Windows.
			want, _ := filepath.Abs(tt.want)
			if got != want {
				t.Errorf("FindRoot() = %q, want %q", got, want)
			}
		})
	}
}

// Changes the working directory, so it cannot run in parallel.
func TestFindRoot_RelativeStart(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	fs := afero.NewOsFs()
	if err := afero.WriteFile(fs, filepath.Join(root, config.FileName), nil, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	nested := filepath.Join(root, "crates", "core")
	if err := fs.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}
	defer testutil.MustChdir(t, nested)()

	got, err := FindRoot(fs, ".")
	if err != nil {
		t.Fatalf("FindRoot() error: %v", err)
	}
	if got != root {
		t.Errorf("FindRoot(\".\") = %q, want %q", got, root)
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	r, err := NewResolver(root)
	if err != nil {
		t.Fatalf("NewResolver() error: %v", err)
	}
	if r.Root() != root {
		t.Errorf("Root() = %q, want %q", r.Root(), root)
	}

	tests := []struct {
		logical string
		want    string
		wantErr bool
	}{
		{".cargo", filepath.Join(root, ".cargo"), false},
		{"gen/android", filepath.Join(root, "gen", "android"), false},
		{"gen/../.cargo", filepath.Join(root, ".cargo"), false},
		{".", root, false},
		{"", "", true},
		{"..", "", true},
		{"../sibling", "", true},
		{root, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.logical, func(t *testing.T) {
			t.Parallel()

			got, err := r.Resolve(filepath.FromSlash(tt.logical))
			if tt.wantErr {
				if !errors.Is(err, ErrPathResolve) {
					t.Errorf("Resolve(%q) error = %v, want ErrPathResolve", tt.logical, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.logical, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.logical, got, tt.want)
			}
		})
	}
}

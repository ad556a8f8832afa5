// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
)

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ProjectDir is searched for ginit.cue; empty means the working directory.
	ProjectDir string
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
	// Path returns the config file Load would read, or "" when only
	// defaults apply.
	Path(ctx context.Context, opts LoadOptions) (string, error)
}

type fileProvider struct {
	fs afero.Fs
}

// NewProvider creates a configuration provider reading from fs.
// A nil fs means the OS filesystem.
func NewProvider(fs afero.Fs) Provider {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &fileProvider{fs: fs}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, p.fs, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Path resolves the config file for opts without loading it.
func (p *fileProvider) Path(ctx context.Context, opts LoadOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("resolve config path canceled: %w", err)
	}
	return resolveConfigPath(p.fs, opts)
}

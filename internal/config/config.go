// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginit/ginit/internal/cueutil"
	"github.com/ginit/ginit/internal/issue"
	"github.com/ginit/ginit/internal/toolchain"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "ginit"
	// FileName is the project configuration file looked up at the project root.
	FileName = "ginit.cue"
	// EnvPrefix prefixes environment overrides, e.g. GINIT_ANDROID_NDK_PATH.
	EnvPrefix = "GINIT"
)

//go:embed config_schema.cue
var configSchema []byte

// loadWithOptions performs option-driven config loading. It returns the
// loaded configuration and the path of the file it came from, which is
// empty when only defaults and environment overrides applied.
func loadWithOptions(ctx context.Context, fs afero.Fs, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("app.name", defaults.App.Name)
	v.SetDefault("android.enabled", defaults.Android.Enabled)
	v.SetDefault("android.min_sdk_version", defaults.Android.MinSDKVersion)
	v.SetDefault("android.ndk_path", defaults.Android.NDKPath)
	v.SetDefault("ios.enabled", defaults.IOS.Enabled)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath, err := resolveConfigPath(fs, opts)
	if err != nil {
		return nil, "", err
	}

	if resolvedPath != "" {
		if err := loadCUEIntoViper(fs, v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Run 'ginit config show' to see the default configuration").
				WithIssue(issue.ProjectConfigInvalidId).
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// Environment overrides bypass the CUE schema, so check again here.
	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion(fmt.Sprintf("Set android.min_sdk_version between %d and %d", MinSupportedSDKVersion, MaxSupportedSDKVersion)).
			WithSuggestion("Check " + EnvPrefix + "_* environment variables for stale values").
			WithIssue(issue.ProjectConfigInvalidId).
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// resolveConfigPath returns the file Load reads for opts, or "" when no
// project file exists and only defaults apply. An explicit ConfigFilePath
// must exist.
func resolveConfigPath(fs afero.Fs, opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(fs, opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Omit --config to use " + FileName + " from the project root").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	dir := opts.ProjectDir
	if dir == "" {
		dir = "."
	}
	candidate := filepath.Join(dir, FileName)
	if fileExists(fs, candidate) {
		return candidate, nil
	}
	return "", nil
}

// loadCUEIntoViper validates a CUE file against the #Config schema and merges
// its contents into Viper. Fields the file omits keep their defaults.
func loadCUEIntoViper(fs afero.Fs, v *viper.Viper, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	configMap, err := cueutil.DecodeMap(configSchema, data, "#Config", path)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// GenerateCUE renders cfg in the ginit.cue format.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// ginit project configuration\n\n")

	if cfg.App.Name != "" {
		fmt.Fprintf(&sb, "app: {\n\tname: %q\n}\n\n", cfg.App.Name)
	}

	sb.WriteString("android: {\n")
	fmt.Fprintf(&sb, "\tenabled: %v\n", cfg.Android.Enabled)
	fmt.Fprintf(&sb, "\tmin_sdk_version: %d\n", cfg.Android.MinSDKVersion)
	if cfg.Android.NDKPath != "" {
		fmt.Fprintf(&sb, "\tndk_path: %q\n", cfg.Android.NDKPath)
	}
	writeTargets(&sb, cfg.Android.Targets)
	sb.WriteString("}\n\n")

	sb.WriteString("ios: {\n")
	fmt.Fprintf(&sb, "\tenabled: %v\n", cfg.IOS.Enabled)
	writeTargets(&sb, cfg.IOS.Targets)
	sb.WriteString("}\n")

	return sb.String()
}

func writeTargets(sb *strings.Builder, targets []toolchain.Triple) {
	if targets == nil {
		return
	}
	sb.WriteString("\ttargets: [")
	for i, t := range targets {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%q", t)
	}
	sb.WriteString("]\n")
}

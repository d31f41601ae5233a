// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches the standard rbstr locations for a configuration
//              file and loads the first one found.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-01
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation
// - 2026-10-13 v0.2.0: XDG and home directory candidates

package config

import (
	"os"
	"path/filepath"
	"strings"

	rberr "github.com/msto63/rbstr/foundation/core/error"
)

// DefaultEnvPrefix is the environment prefix used by the rbstr command
const DefaultEnvPrefix = "RBSTR"

// DiscoveryOptions controls where Discover looks
type DiscoveryOptions struct {
	// Files are tried in order; the first existing regular file wins
	Files     []string
	EnvPrefix string
	// Required makes Discover fail when no file exists
	Required bool
}

// DefaultDiscoveryOptions returns the rbstr search list:
// ./rbstr.toml, ./rbstr.yaml, $XDG_CONFIG_HOME/rbstr/config.toml and
// ~/.rbstr.toml.
func DefaultDiscoveryOptions() DiscoveryOptions {
	files := []string{"rbstr.toml", "rbstr.yaml"}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		files = append(files, filepath.Join(xdg, "rbstr", "config.toml"))
	} else if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".config", "rbstr", "config.toml"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".rbstr.toml"))
	}

	return DiscoveryOptions{
		Files:     files,
		EnvPrefix: DefaultEnvPrefix,
	}
}

// Discover loads the first configuration file found. When none exists and
// the file is optional, it returns an empty configuration that still honors
// environment overrides.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, found := FindConfigFile(options)
	if !found {
		if options.Required {
			return nil, rberr.New("no configuration file found").
				WithCode(rberr.CodeNotFound).
				WithOperation("config.Discover").
				WithDetail("searched", strings.Join(options.Files, ", "))
		}
		return Empty(options.EnvPrefix), nil
	}

	return LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
}

// FindConfigFile returns the first candidate that exists
func FindConfigFile(options DiscoveryOptions) (string, bool) {
	for _, candidate := range options.Files {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

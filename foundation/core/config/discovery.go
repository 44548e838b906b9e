// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds the settings file when none is given on the command line.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-16 v0.2.0: numcore file names and user config directory

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
)

// DiscoveryOptions defines where FindConfigFile looks
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try
}

// DefaultDiscoveryOptions searches the working directory and the user
// configuration directory for numcore.{toml,yaml,yml}
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "numcore"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"numcore", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// ListPossibleConfigFiles returns every path FindConfigFile would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first existing candidate file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, configPath := range candidates {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// manifest is the optional fjson.toml at the project root:
//
//	[format]
//	mode = "annotated"
//	indent = 2
//	max_depth = 128
//
//	[files]
//	include = ["config", "data/fixtures"]
type manifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Format formatConfig `toml:"format"`
	Files  filesConfig  `toml:"files"`
}

type formatConfig struct {
	Mode     string `toml:"mode"`
	Indent   int    `toml:"indent"`
	MaxDepth int    `toml:"max_depth"`
}

type filesConfig struct {
	Include []string `toml:"include"`
}

// IncludePaths returns the manifest include list resolved against the
// manifest's directory; an empty list defaults to the root itself.
func (m *manifest) IncludePaths() []string {
	if len(m.Config.Files.Include) == 0 {
		return []string{m.Root}
	}
	paths := make([]string, 0, len(m.Config.Files.Include))
	for _, p := range m.Config.Files.Include {
		if !filepath.IsAbs(p) {
			p = filepath.Join(m.Root, p)
		}
		paths = append(paths, p)
	}
	return paths
}

// findManifest walks from startDir to the filesystem root looking for
// fjson.toml.
func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "fjson.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(startDir string) (*manifest, bool, error) {
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}

	var cfg manifestConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

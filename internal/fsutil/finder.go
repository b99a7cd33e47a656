// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ConfigPattern matches every configuration file format the loaders accept.
const ConfigPattern = "**/*.{hcl,yaml,yml}"

// FindConfigFiles expands each root into configuration files. A file root is
// returned as is; a directory root is searched recursively with ConfigPattern.
// Files found under one directory are sorted, and a file reached twice is
// returned once.
func FindConfigFiles(roots ...string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", root, err)
		}
		if !info.IsDir() {
			add(filepath.Clean(root))
			continue
		}

		matches, err := doublestar.Glob(os.DirFS(root), ConfigPattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to search %s: %w", root, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(filepath.Join(root, filepath.FromSlash(m)))
		}
	}
	return files, nil
}

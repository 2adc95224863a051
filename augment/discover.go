// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// Discover lists the regular files in dir accepted by accept, sorted by
// path. Symlinks to regular files are listed too; dangling links and links
// to directories are not. With recursive set, subdirectories are walked,
// without descending into symlinked ones. A nil accept takes every file.
func Discover(dir string, recursive bool, accept func(path string) bool) ([]string, error) {
	if accept == nil {
		accept = func(string) bool { return true }
	}

	var paths []string

	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", dir, err)
		}

		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			if isFile(path, e) && accept(path) {
				paths = append(paths, path)
			}
		}

		return paths, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if isFile(path, d) && accept(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	slices.Sort(paths)

	return paths, nil
}

func isFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}

	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

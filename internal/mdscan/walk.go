package mdscan

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// AbsPath normalizes a path to the cleaned absolute form used as anchor
// table key, so the inserter, the scanner and the rewriter all key the same
// document identically.
func AbsPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Clean(abs)
}

// Files returns every markdown file under root in lexical walk order. The
// order is deterministic so repeated runs assign disambiguation suffixes
// identically.
func Files(root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip dot-directories (.git and friends) below the root.
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Package filex holds small filesystem helpers for the client's data directory.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and parents) if needed and returns its absolute
// path. Relative paths are resolved against the working directory. The
// directory is private to the user because it holds the session token.
func EnsureDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// PathIn ensures dir exists and returns the path of name inside it.
func PathIn(dir, name string) (string, error) {
	abs, err := EnsureDir(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(abs, name), nil
}

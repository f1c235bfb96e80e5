// Package fileurl has small path helpers used during startup.
package fileurl

import (
	"os"
	"path/filepath"
)

// IsExist reports whether the path exists.
func IsExist(dst string) bool {
	_, err := os.Stat(dst)
	if err == nil {
		return true
	}
	return !os.IsNotExist(err)
}

// CreatePath creates the parent directories of dst.
func CreatePath(dst string, perm os.FileMode) error {
	return os.MkdirAll(filepath.Dir(dst), perm)
}

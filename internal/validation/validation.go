// Package validation provides input validation for user-supplied paths
// before the CLI touches the filesystem.
package validation

import (
	"errors"
	"path/filepath"
	"strings"
)

// Limits on user-supplied paths.
const (
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrEmptyPath   = errors.New("path cannot be empty")
	ErrPathTooLong = errors.New("path too long")
	ErrInvalidPath = errors.New("invalid path")
)

// ValidatePath checks a user-supplied path for basic sanity. It does not
// resolve the path against a base directory; the CLI operates on paths the
// user already controls.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	return nil
}

// OutputPath derives a default output path by replacing the extension of
// base. An empty extension strips the current one.
func OutputPath(base, extension string) string {
	trimmed := strings.TrimSuffix(base, filepath.Ext(base))
	if extension == "" {
		return trimmed
	}
	return trimmed + "." + strings.TrimPrefix(extension, ".")
}

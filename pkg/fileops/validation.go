package fileops

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// markdownExtensions lists the extensions treated as template files.
var markdownExtensions = []string{".md", ".markdown"}

// ValidatePathSecurity validates a file name that is meant to live inside a
// fixed base directory.
//
// The function rejects:
//   - Empty or whitespace-only names
//   - Absolute paths
//   - Path traversal using ".." sequences, before and after cleaning
//   - Names containing NUL bytes
//
// This is static analysis only and does not access the filesystem.
//
// Usage example:
//
//	if err := fileops.ValidatePathSecurity("../../etc/passwd"); err != nil {
//	    return err
//	}
func ValidatePathSecurity(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("path contains invalid characters")
	}

	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") || strings.HasPrefix(path, `\`) {
		return fmt.Errorf("path must be relative")
	}

	// Check for path traversal in raw input
	if strings.Contains(path, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	// Clean and re-check for traversal
	cleanPath := filepath.Clean(path)
	if strings.HasPrefix(cleanPath, "..") || cleanPath == "." {
		return fmt.Errorf("path traversal not allowed")
	}

	return nil
}

// ValidateFileSizeLimit checks an already opened file's info against maxSize.
// A non-positive maxSize is an invalid limit.
func ValidateFileSizeLimit(info fs.FileInfo, maxSize int64) error {
	if maxSize <= 0 {
		return fmt.Errorf("invalid size limit: %d", maxSize)
	}
	if info == nil {
		return fmt.Errorf("cannot access file: missing file info")
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", info.Name())
	}

	if info.Size() > maxSize {
		return fmt.Errorf("file size %d bytes exceeds limit %d bytes", info.Size(), maxSize)
	}

	return nil
}

// IsMarkdownFile reports whether filename has a markdown extension.
func IsMarkdownFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range markdownExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ExpandPath expands a leading "~/" to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

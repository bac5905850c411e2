package fileops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Tests for ValidatePathSecurity

func TestValidatePathSecurity(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expectError bool
		errorText   string
	}{
		{
			name:        "valid simple name",
			path:        "parameter_suggest.md",
			expectError: false,
		},
		{
			name:        "valid nested name",
			path:        "flowreg/parameter_suggest.md",
			expectError: false,
		},
		{
			name:        "empty path",
			path:        "",
			expectError: true,
			errorText:   "path cannot be empty",
		},
		{
			name:        "whitespace only path",
			path:        "   \t\n  ",
			expectError: true,
			errorText:   "path cannot be empty",
		},
		{
			name:        "absolute path",
			path:        "/etc/passwd",
			expectError: true,
			errorText:   "path must be relative",
		},
		{
			name:        "path traversal with ..",
			path:        "../../../etc/passwd",
			expectError: true,
			errorText:   "path traversal not allowed",
		},
		{
			name:        "path traversal in middle",
			path:        "valid/../../etc/passwd",
			expectError: true,
			errorText:   "path traversal not allowed",
		},
		{
			name:        "current directory",
			path:        ".",
			expectError: true,
			errorText:   "path traversal not allowed",
		},
		{
			name:        "nul byte",
			path:        "prompt\x00.md",
			expectError: true,
			errorText:   "invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePathSecurity(tt.path)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for path %q, but got none", tt.path)
				} else if tt.errorText != "" && !strings.Contains(err.Error(), tt.errorText) {
					t.Errorf("Expected error containing %q, got %q", tt.errorText, err.Error())
				}
			} else if err != nil {
				t.Errorf("Expected no error for path %q, but got: %v", tt.path, err)
			}
		})
	}
}

func TestValidateFileSizeLimit(t *testing.T) {
	tempDir := t.TempDir()

	smallFile := filepath.Join(tempDir, "small.md")
	if err := os.WriteFile(smallFile, []byte("# small"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	largeFile := filepath.Join(tempDir, "large.md")
	if err := os.WriteFile(largeFile, []byte(strings.Repeat("x", 2048)), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	stat := func(path string) os.FileInfo {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Failed to stat %s: %v", path, err)
		}
		return info
	}

	tests := []struct {
		name        string
		info        os.FileInfo
		maxSize     int64
		expectError bool
		errorText   string
	}{
		{"file within limit", stat(smallFile), 1024, false, ""},
		{"file exceeds limit", stat(largeFile), 1024, true, "exceeds limit"},
		{"directory", stat(tempDir), 1024, true, "is a directory"},
		{"invalid limit", stat(smallFile), 0, true, "invalid size limit"},
		{"missing info", nil, 1024, true, "cannot access file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileSizeLimit(tt.info, tt.maxSize)
			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error, got none")
				}
				if !strings.Contains(err.Error(), tt.errorText) {
					t.Errorf("Expected error containing %q, got %q", tt.errorText, err.Error())
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestIsMarkdownFile(t *testing.T) {
	tests := map[string]bool{
		"parameter_suggest.md": true,
		"README.MD":            true,
		"notes.markdown":       true,
		"config.yaml":          false,
		"noext":                false,
		".md.bak":              false,
	}

	for name, want := range tests {
		if got := IsMarkdownFile(name); got != want {
			t.Errorf("IsMarkdownFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	if got := ExpandPath("~/prompts"); got != filepath.Join(home, "prompts") {
		t.Errorf("ExpandPath(~/prompts) = %q", got)
	}
	if got := ExpandPath("/abs/prompts"); got != "/abs/prompts" {
		t.Errorf("ExpandPath should leave absolute paths alone, got %q", got)
	}
}

// Package fileops provides the path and file checks used before flowreg
// touches anything on disk.
//
// Template names arrive from MCP hosts and the CLI, so they are treated as
// untrusted input. The checks here are static and cheap; the actual read is
// additionally confined with an os.Root by the templates package.
//
// # Validation Order
//
// Combine the checks in this order:
//
// 1. **Path Security**: ValidatePathSecurity() - relative names only, no traversal
// 2. **File Type**: IsMarkdownFile() - catalog listing filter
// 3. **File Size**: ValidateFileSizeLimit() - rejects oversized templates
//
// # Example
//
//	if err := fileops.ValidatePathSecurity(name); err != nil {
//	    return fmt.Errorf("path security: %w", err)
//	}
//	info, _ := f.Stat()
//	if err := fileops.ValidateFileSizeLimit(info, 1<<20); err != nil {
//	    return fmt.Errorf("file size: %w", err)
//	}
package fileops

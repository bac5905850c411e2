// Package templates reads prompt templates from a fixed directory.
//
// Templates are returned byte-for-byte as stored. They are read on every
// call and never cached, so edits on disk are visible to the next request.
package templates

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"flowreg/internal/logging"
	"flowreg/pkg/fileops"

	"github.com/adrg/frontmatter"
)

// Info describes a template for catalog listings.
type Info struct {
	Name        string
	Path        string
	Description string
	Size        int64
}

// catalogFrontmatter is the optional YAML header a template may carry.
// It only feeds listings; Load returns the header as part of the content.
type catalogFrontmatter struct {
	Description string `yaml:"description"`
}

// Loader reads templates from a single directory.
type Loader struct {
	dir     string
	maxSize int64
	logger  *logging.AppLogger
}

// NewLoader creates a Loader for dir. Templates larger than maxSize bytes are
// rejected.
func NewLoader(dir string, maxSize int64, logger *logging.AppLogger) *Loader {
	return &Loader{
		dir:     dir,
		maxSize: maxSize,
		logger:  logger,
	}
}

// Dir returns the templates directory.
func (l *Loader) Dir() string {
	return l.dir
}

// Load returns the full text of the named template. Any failure to locate or
// read it is a *ResourceNotFoundError.
func (l *Loader) Load(name string) (string, error) {
	start := time.Now()
	defer l.logger.LogPerformance("template_load", start)

	path := filepath.Join(l.dir, name)
	notFound := func(err error) error {
		l.logger.Debug("Template lookup failed", "name", name, "path", path, "error", err)
		return &ResourceNotFoundError{Name: name, Path: path, Err: err}
	}

	if err := fileops.ValidatePathSecurity(name); err != nil {
		return "", notFound(err)
	}

	// The root confines the read to dir even through symlinks.
	root, err := os.OpenRoot(l.dir)
	if err != nil {
		return "", notFound(err)
	}
	defer root.Close()

	// Stat before opening: opening a FIFO or device could block.
	info, err := root.Stat(filepath.FromSlash(name))
	if err != nil {
		return "", notFound(err)
	}
	if !info.Mode().IsRegular() {
		return "", notFound(fmt.Errorf("not a regular file (mode %s)", info.Mode().Type()))
	}
	if err := fileops.ValidateFileSizeLimit(info, l.maxSize); err != nil {
		return "", notFound(err)
	}

	f, err := root.Open(filepath.FromSlash(name))
	if err != nil {
		return "", notFound(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, l.maxSize+1))
	if err != nil {
		return "", notFound(err)
	}
	if int64(len(data)) > l.maxSize {
		return "", notFound(fmt.Errorf("file grew beyond the %d byte limit while reading", l.maxSize))
	}
	if !utf8.Valid(data) {
		return "", notFound(fmt.Errorf("content is not valid UTF-8"))
	}

	l.logger.Debug("Template loaded", "name", name, "bytes", len(data))
	return string(data), nil
}

// List returns the markdown templates in the directory, sorted by name.
// Templates that cannot be loaded are skipped and logged.
func (l *Loader) List() ([]Info, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates directory: %w", err)
	}

	var infos []Info
	var skippedCount int
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !fileops.IsMarkdownFile(entry.Name()) {
			continue
		}

		content, err := l.Load(entry.Name())
		if err != nil {
			l.logger.Warn("Skipping template", "name", entry.Name(), "reason", err)
			skippedCount++
			continue
		}

		infos = append(infos, Info{
			Name:        entry.Name(),
			Path:        filepath.Join(l.dir, entry.Name()),
			Description: describe(content),
			Size:        int64(len(content)),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })

	l.logger.Debug("Template listing completed",
		"dir", l.dir,
		"templates", len(infos),
		"skipped", skippedCount)

	return infos, nil
}

// describe picks a one-line summary: the frontmatter description if present,
// otherwise the first markdown heading.
func describe(content string) string {
	var matter catalogFrontmatter
	body, err := frontmatter.Parse(strings.NewReader(content), &matter)
	if err == nil && strings.TrimSpace(matter.Description) != "" {
		return strings.TrimSpace(matter.Description)
	}
	if err != nil {
		body = []byte(content)
	}

	scanner := bufio.NewScanner(strings.NewReader(string(body)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}

package validation

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ValidateTemplate checks that content is a usable prompt template: it is not
// empty, its body opens with a markdown heading, and it contains every phrase
// in sections. Returns nil if valid, or an error describing the first problem.
func ValidateTemplate(content string, sections ...string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("template is empty")
	}

	body := content
	var matter map[string]any
	if rest, err := frontmatter.Parse(strings.NewReader(content), &matter); err == nil {
		body = string(rest)
	}

	scanner := bufio.NewScanner(strings.NewReader(body))
	var first string
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			first = line
			break
		}
	}
	if first == "" {
		return fmt.Errorf("template has no body")
	}
	if !strings.HasPrefix(first, "#") {
		return fmt.Errorf("first line should start with a heading (#)")
	}

	var missing []string
	for _, s := range sections {
		if !strings.Contains(content, s) {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing sections: %s", strings.Join(missing, ", "))
	}
	return nil
}

package validation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		sections []string
		wantErr  string
	}{
		{
			name:    "valid template",
			content: "# Title\nSome content\n",
		},
		{
			name:    "valid with frontmatter",
			content: "---\ndescription: test\n---\n\n# Title\nSome content\n",
		},
		{
			name:    "empty template",
			content: "",
			wantErr: "template is empty",
		},
		{
			name:    "whitespace only",
			content: "  \n\t\n",
			wantErr: "template is empty",
		},
		{
			name:    "frontmatter without body",
			content: "---\ndescription: test\n---\n",
			wantErr: "template has no body",
		},
		{
			name:    "no heading",
			content: "Some content\n# Title\n",
			wantErr: "first line should start with a heading (#)",
		},
		{
			name:     "all sections present",
			content:  "# Title\nsigma and alpha\n",
			sections: []string{"sigma", "alpha"},
		},
		{
			name:     "missing sections",
			content:  "# Title\nsigma only\n",
			sections: []string{"sigma", "alpha", "references"},
			wantErr:  "missing sections: alpha, references",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemplate(tt.content, tt.sections...)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected valid template, got error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("expected %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestShippedTemplateIsValid(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "prompts", "parameter_suggest.md"))
	if err != nil {
		t.Fatalf("failed to read shipped template: %v", err)
	}
	if err := ValidateTemplate(string(data), "Quality Preset Policy", `"quality_choice":`); err != nil {
		t.Errorf("shipped template should be valid: %v", err)
	}
}

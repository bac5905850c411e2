package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"flowreg/internal/prompt"
	"flowreg/internal/templates"

	"github.com/spf13/cobra"
)

type renderOptions struct {
	input    string
	finalRun bool
}

func newRenderCmd(a *app) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Assemble the parameter_suggest prompt and print it as JSON",
		Long: `Assemble the parameter_suggest exchange exactly as the MCP server would and
print the two messages as JSON.

--input takes a JSON object inline, @path to read it from a file, or - for stdin.`,
		Example: `  flowreg render --input '{"video_path": "/a.tif", "channels": ["red", "green"]}' --final-run
  flowreg render --input @video.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input JSON, @file, or - for stdin (required)")
	cmd.Flags().BoolVar(&opts.finalRun, "final-run", false, "mark the request as the final run")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (a *app) runRender(cmd *cobra.Command, opts *renderOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	raw, err := readInput(cmd, opts.input)
	if err != nil {
		return err
	}

	loader := templates.NewLoader(cfg.TemplatesDir, cfg.MaxTemplateBytes, a.logger)
	assembler := prompt.NewAssembler(loader, a.logger)

	exchange, err := assembler.SuggestParameters(prompt.Encoded(raw), opts.finalRun)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Messages []prompt.Message `json:"messages"`
	}{exchange.Messages()})
}

// readInput resolves the --input flag value.
func readInput(cmd *cobra.Command, value string) (string, error) {
	switch {
	case value == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read input from stdin: %w", err)
		}
		return string(data), nil
	case strings.HasPrefix(value, "@"):
		data, err := os.ReadFile(strings.TrimPrefix(value, "@"))
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	default:
		return value, nil
	}
}

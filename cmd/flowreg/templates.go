package main

import (
	"fmt"
	"path/filepath"
	"slices"

	"flowreg/internal/prompt"
	"flowreg/internal/templates"
	"flowreg/internal/validation"
	"flowreg/pkg/fileops"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Inspect prompt templates",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List available templates",
			Args:  cobra.NoArgs,
			RunE:  a.runTemplatesList,
		},
		newTemplatesShowCmd(a),
		&cobra.Command{
			Use:   "check [name...]",
			Short: "Validate templates (all when no name is given)",
			RunE:  a.runTemplatesCheck,
		},
	)

	return cmd
}

func (a *app) newLoader() (*templates.Loader, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	return templates.NewLoader(cfg.TemplatesDir, cfg.MaxTemplateBytes, a.logger), nil
}

func (a *app) runTemplatesList(cmd *cobra.Command, args []string) error {
	loader, err := a.newLoader()
	if err != nil {
		return err
	}

	infos, err := loader.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No templates found in %s\n", loader.Dir())
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "SIZE", "DESCRIPTION")
	for _, info := range infos {
		t.Row(info.Name, fmt.Sprintf("%d", info.Size), info.Description)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}

func newTemplatesShowCmd(a *app) *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a template, rendered for the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := a.newLoader()
			if err != nil {
				return err
			}

			name := args[0]
			if filepath.Ext(name) == "" {
				name += ".md"
			}

			content, err := loader.Load(name)
			if err != nil {
				return err
			}

			if raw || !fileops.IsMarkdownFile(name) {
				_, err = fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("failed to create markdown renderer: %w", err)
			}
			out, err := renderer.Render(content)
			if err != nil {
				return fmt.Errorf("failed to render template: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the template exactly as stored")
	cmd.Flags().IntVar(&width, "width", 100, "word wrap width for rendered output")

	return cmd
}

// requiredSections maps template names to the phrases their prompt
// definitions expect.
func requiredSections() map[string][]string {
	def := prompt.ParameterSuggestDefinition()
	return map[string][]string{def.Template: def.Sections}
}

func (a *app) runTemplatesCheck(cmd *cobra.Command, args []string) error {
	loader, err := a.newLoader()
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		infos, err := loader.List()
		if err != nil {
			return err
		}
		for _, info := range infos {
			names = append(names, info.Name)
		}
		// Templates a prompt depends on are checked even when missing.
		for name := range requiredSections() {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
		slices.Sort(names)
	}

	sections := requiredSections()
	var failed int
	for _, name := range names {
		if filepath.Ext(name) == "" {
			name += ".md"
		}

		content, err := loader.Load(name)
		if err == nil {
			err = validation.ValidateTemplate(content, sections[name]...)
		}
		if err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d templates failed validation", failed, len(names))
	}
	return nil
}

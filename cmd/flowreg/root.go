package main

import (
	"fmt"
	"os"

	"flowreg/internal/config"
	"flowreg/internal/logging"
	"flowreg/pkg/fileops"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// app carries the global flags and the process-wide logger between commands.
type app struct {
	configPath   string
	templatesDir string
	debug        bool

	logger *logging.AppLogger
	cfg    *config.Config
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "flowreg",
		Short: "MCP prompt server for flow-registration parameter suggestions",
		Long: `flowreg serves the parameter_suggest prompt over the Model Context Protocol.

Given a JSON description of a microscopy video and its channels, the prompt
pairs a static instruction template with the caller's input so an external
language model can suggest variational flow-registration parameters.

Run without arguments to serve over stdio.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runServe,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/flowreg/config.yaml)")
	flags.StringVar(&a.templatesDir, "templates-dir", "", "directory containing prompt templates")
	flags.BoolVar(&a.debug, "debug", false, "write debug logs to "+logging.DefaultLogFile)

	root.AddCommand(
		newServeCmd(a),
		newRenderCmd(a),
		newTemplatesCmd(a),
		newConfigCmd(a),
	)

	return root
}

// setup initializes the environment and logger. Configuration is loaded on
// demand so config subcommands work with a broken config file.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	envErr := godotenv.Load()

	logger, err := logging.NewWithOptions(logging.Options{
		Debug:  a.debug || os.Getenv("DEBUG") != "",
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	if envErr == nil {
		a.logger.Debug("Loaded environment from .env")
	}
	return nil
}

// execute runs the command tree. The logger is released whether or not the
// command succeeded; cobra skips post-run hooks after an error.
func (a *app) execute(root *cobra.Command) error {
	defer a.teardown()
	return root.Execute()
}

func (a *app) teardown() {
	if a.logger != nil {
		_ = a.logger.Close()
		a.logger = nil
	}
}

// loadConfig resolves configuration: file, then environment, then flags.
func (a *app) loadConfig() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFrom(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if a.templatesDir != "" {
		cfg.TemplatesDir = fileops.ExpandPath(a.templatesDir)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	a.logger.DebugObject("config", cfg)

	a.cfg = cfg
	return cfg, nil
}

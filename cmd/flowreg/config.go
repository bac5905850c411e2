package main

import (
	"errors"
	"fmt"
	"os"

	"flowreg/internal/config"
	"flowreg/pkg/fileops"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the flowreg config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.resolvedConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check config file: %w", err)
			}

			cfg := config.DefaultConfig()
			if a.templatesDir != "" {
				cfg.TemplatesDir = fileops.ExpandPath(a.templatesDir)
			}

			save := cfg.Save
			if a.configPath != "" {
				save = func() error { return cfg.SaveTo(path) }
			}
			if err := save(); err != nil {
				return err
			}

			a.logger.Info("Configuration created successfully", "path", path)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), a.resolvedConfigPath())
			},
		},
		initCmd,
	)

	return cmd
}

func (a *app) resolvedConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	return config.ConfigPath()
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/opd-ai/swatch/internal/config"
	"github.com/opd-ai/swatch/pkg/swatch"
)

// app carries global flags and the state loaded before every subcommand.
type app struct {
	configPath string
	logLevel   string
	logJSON    bool

	cfg    *config.Config
	logger *swatch.SlogAdapter
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "swatch",
		Short:         "Color and gradient value tooling",
		Long:          `swatch parses, composes, normalizes and previews the CSS color and gradient values stored in content documents.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to Lua configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "Write logs as JSON")

	root.AddCommand(newColorCmd())
	root.AddCommand(newGradientCmd(a))
	root.AddCommand(newNormalizeCmd(a))
	root.AddCommand(newPreviewCmd(a))
	root.AddCommand(newPickCmd(a))
	root.AddCommand(newFieldsCmd(a))
	return root
}

// load sets up logging and reads the configuration file.
func (a *app) load(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	if a.logJSON {
		a.logger = swatch.JSONLogger(cmd.ErrOrStderr(), level)
	} else {
		a.logger = swatch.TextLogger(cmd.ErrOrStderr(), level)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.configPath != "" {
		a.logger.Debug("configuration loaded", "path", a.configPath)
		for _, w := range config.Validate(cfg).Warnings {
			a.logger.Warn("configuration warning", "path", a.configPath, "field", w.Field, "message", w.Message)
		}
	}
	return nil
}

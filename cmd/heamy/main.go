// Command heamy exposes the ensembling helpers on the command line.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/goheamy/config"
	"github.com/YuminosukeSato/goheamy/pkg/log"
)

// cli carries the settings resolved before a subcommand runs.
type cli struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

func newRootCommand() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "heamy",
		Short:         "Ensembling helpers: score reports, blend weights, cache cleanup",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "configuration file (toml, yaml or json)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newFlushCommand(c),
		newReportCommand(c),
		newBlendCommand(c),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = c.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	c.cfg = cfg
	return log.SetupLogger(cfg.LogLevel)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.GetLogger().Error("heamy failed", err)
		os.Exit(1)
	}
}

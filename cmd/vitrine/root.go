package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile string
	envFiles   []string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{flags: flags}

	cmd := &cobra.Command{
		Use:           "vitrine",
		Short:         "Vitrine browses media catalogs in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Settings file (default ./vitrine.yaml or ~/.config/vitrine/vitrine.yaml)")
	cmd.PersistentFlags().StringSliceVar(&flags.envFiles, "env-file", nil, "Dotenv files loaded before reading VITRINE_* variables (default .env)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file; interactive commands discard logs otherwise")

	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newOverlayCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/catloaf567/boilergains/logger"
)

var (
	flagConfig string
	flagDebug  bool
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "boilergains",
		Short:         "Dining-court macro targets and meal suggestions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(flagDebug)
		},
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config.yaml (omit to use ./config.yaml or built-in defaults)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	root.AddCommand(
		newServeCommand(),
		newSuggestCommand(),
		newTargetsCommand(),
	)
	return root
}

func execute() error {
	defer logger.Sync()
	return newRootCommand().Execute()
}

package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	loader := &appLoader{}

	rootCmd := &cobra.Command{
		Use:           "zoo",
		Short:         "Zoo records API (zoo): serve and manage animal and zookeeper records",
		Long:          "zoo serves a small REST API over animal and zookeeper records kept in JSON files, and manages the same files from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&loader.configFile, "config", "", "Config file (default: ./zoo.toml or ~/.config/zoo/zoo.toml)")
	flags.String("data-dir", "", "Directory holding animals.json and zookeepers.json (default \"data\")")
	flags.String("log-level", "", "Log level: debug, info, warn or error (default \"info\")")
	flags.String("log-format", "", "Log format: text or json (default \"text\")")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(loader),
		newAnimalsCmd(loader),
		newZookeepersCmd(loader),
		newExportCmd(loader),
		newHealthCmd(),
	)

	return rootCmd
}

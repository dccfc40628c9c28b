package cmd

import "github.com/spf13/cobra"

func RegisterCommands(root *cobra.Command) {
	root.AddCommand(versionCmd)
	root.AddCommand(serveCmd)
	root.AddCommand(getCmd)
	root.AddCommand(infoCmd)
	root.AddCommand(typesCmd)
	root.AddCommand(configCmd)

	configCmd.AddCommand(
		configShowCmd,
		configPathCmd,
	)
}

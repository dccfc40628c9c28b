package cmd

import (
	"fmt"

	"macclip/pkg/config"
	"macclip/pkg/errors"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect macclip configuration",
	Long:  `Show the effective configuration and where it is read from.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Display the configuration after the config file, environment variables and flags are applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ow := NewOutputWriter(outputFormat, cmd.OutOrStdout())
		if ow.IsStructured() {
			return ow.Write(loadedConfig)
		}

		data, err := yaml.Marshal(loadedConfig)
		if err != nil {
			return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
			}
			path = p
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

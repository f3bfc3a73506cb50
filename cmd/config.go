package cmd

import (
	"github.com/spf13/cobra"
)

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Pounamu configuration",
	Long:  `Shows and updates the user configuration stored in config.toml.`,
}

func init() {
	registerCommonFlags(ConfigCmd)

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configSetCipherCmd)
}

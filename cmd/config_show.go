package cmd

import (
	"fmt"

	"github.com/PolarWolf314/pounamu/internal/configs"
	"github.com/PolarWolf314/pounamu/internal/ui"

	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Shows the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := configs.LoadUserConfig()
		if err != nil {
			fmt.Println(ui.Error.Sprint("✗") + " Failed to load configuration: " + err.Error())
			fmt.Println(ui.Info.Sprint("→") + " Fix or delete " + ui.Muted.Sprint(configs.ConfigFilePath()))
			return nil
		}

		fmt.Println(ui.Muted.Sprint(configs.ConfigFilePath()))
		fmt.Printf("  cipher: %s\n", ui.Highlight.Sprint(config.Seal.Cipher))
		fmt.Printf("  copy:   %t\n", config.Seal.Copy)
		return nil
	},
}

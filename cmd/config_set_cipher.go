package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/pounamu/internal/configs"
	"github.com/PolarWolf314/pounamu/internal/pipeline"
	"github.com/PolarWolf314/pounamu/internal/ui"

	"github.com/spf13/cobra"
)

var configSetCipherCmd = &cobra.Command{
	Use:   "set-cipher <name>",
	Short: "Sets the default cipher suite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if _, err := pipeline.ProviderFor(name); err != nil {
			fmt.Println(ui.Error.Sprint("✗") + " Unknown cipher " + ui.Highlight.Sprint(name))
			fmt.Println(ui.Info.Sprint("→") + " Supported ciphers: " + strings.Join(pipeline.Ciphers(), ", "))
			return nil
		}

		config, err := configs.LoadUserConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}
		config.Seal.Cipher = name
		if err := configs.SaveUserConfig(config); err != nil {
			return Logger.ErrorfAndReturn("failed to save configuration: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Default cipher set to " + ui.Highlight.Sprint(name))
		return nil
	},
}

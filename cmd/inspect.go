package cmd

import (
	"fmt"

	"github.com/PolarWolf314/pounamu/internal/pipeline"
	"github.com/PolarWolf314/pounamu/internal/ui"
	"github.com/PolarWolf314/pounamu/internal/workflows"

	"github.com/spf13/cobra"
)

var InspectCmd = &cobra.Command{
	Use:   "inspect <blob>",
	Short: "Checks a sealed blob and reports its layout",
	Long: `Decodes a sealed blob and reports its wire layout: a 12-byte nonce,
the ciphertext, and a 16-byte authentication tag. Blobs decoding to fewer
than 28 bytes are rejected as malformed.

Inspect never decrypts anything; it only verifies the container format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting inspect command")
		spinner, cleanup := startSpinner("Inspecting blob...", verbose)
		defer cleanup()

		info, err := workflows.Inspect(cmd.Context(), args[0])
		if err != nil {
			Logger.Errorf("Inspect failed: %v", err)
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Malformed blob: must be base64 decoding to at least 28 bytes " +
				ui.Muted.Sprint("12-byte nonce + 16-byte tag")
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Valid sealed blob\n" +
			fmt.Sprintf("  blob:       %d chars\n", info.BlobChars) +
			fmt.Sprintf("  decoded:    %d bytes\n", info.DecodedBytes) +
			fmt.Sprintf("  nonce:      %d bytes\n", pipeline.NonceSize) +
			fmt.Sprintf("  ciphertext: %d bytes\n", info.CiphertextBytes) +
			fmt.Sprintf("  tag:        %d bytes", pipeline.TagSize)
		return nil
	},
}

func init() {
	registerCommonFlags(InspectCmd)
}

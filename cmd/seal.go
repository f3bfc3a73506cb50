package cmd

import (
	"errors"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/pounamu/internal/errors"
	"github.com/PolarWolf314/pounamu/internal/pipeline"
	"github.com/PolarWolf314/pounamu/internal/ui"
	"github.com/PolarWolf314/pounamu/internal/utils"
	"github.com/PolarWolf314/pounamu/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	sealCipher string
	sealCopy   bool
)

var SealCmd = &cobra.Command{
	Use:   "seal [text]",
	Short: "Seals text into a one-time encrypted blob",
	Long: `Seals a piece of text under a fresh single-use 256-bit key with an
authenticated cipher, and prints the result as a transportable base64 blob.

The text comes from the argument, a stdin pipe, or an interactive prompt.
The key is discarded immediately after sealing and is never stored: the
blob is opaque and Pounamu makes no promise about later decryptability.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting seal command")

		// Resolve the input before the spinner starts so an interactive
		// prompt isn't fighting the spinner for the terminal.
		text, err := resolveInputText(args)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read input: %v", err)
		}
		Logger.Debugf("Resolved %d bytes of input", len(text))

		spinner, cleanup := startSpinner("Sealing text...", verbose)
		defer cleanup()

		result, err := workflows.Seal(cmd.Context(), workflows.SealOptions{
			Text:   text,
			Cipher: sealCipher,
			Copy:   sealCopy,
			Logger: Logger,
		})
		if err != nil {
			spinner.FinalMSG = sealFailureMessage(err)
			return nil
		}

		Logger.Infof("Seal command completed successfully (%d blob chars in %s)", len(result.Encoded), result.Elapsed)

		finalMessage := ui.Success.Sprint("✓") + " Text sealed with " + ui.Highlight.Sprint(result.Cipher) + "\n" +
			ui.Blob.Sprint(result.Encoded) + "\n"
		if result.Copied {
			finalMessage += ui.Info.Sprint("→") + " Copied to clipboard"
		} else {
			finalMessage += ui.Info.Sprint("→") + " Run with " + ui.Code.Sprint("--copy") + " to send the blob to your clipboard"
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}

func init() {
	registerCommonFlags(SealCmd)
	SealCmd.Flags().StringVarP(&sealCipher, "cipher", "c", "", "cipher suite: "+strings.Join(pipeline.Ciphers(), " or ")+" (default from config)")
	SealCmd.Flags().BoolVar(&sealCopy, "copy", false, "copy the sealed blob to the clipboard")
}

// resolveInputText picks the input source: argument, piped stdin, or an
// interactive prompt, in that order.
func resolveInputText(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !utils.IsTerminal(os.Stdin) {
		data, err := utils.ReadStdin()
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return utils.PromptLine("Text to seal: ")
}

// sealFailureMessage maps a workflow error to the user-facing final
// message. Crypto failures stay generic; validation reasons pass through.
func sealFailureMessage(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrInvalidInput):
		return ui.Error.Sprint("✗") + " Cannot seal: " + pipeline.UserMessage(err)
	case errors.Is(err, kerrors.ErrUnknownCipher):
		return ui.Error.Sprint("✗") + " Unknown cipher\n" +
			ui.Info.Sprint("→") + " Supported ciphers: " + strings.Join(pipeline.Ciphers(), ", ")
	case errors.Is(err, kerrors.ErrInvalidConfig):
		return ui.Error.Sprint("✗") + " Your configuration is invalid\n" +
			ui.Info.Sprint("→") + " Check " + ui.Code.Sprint("pounamu config show") + " for details"
	default:
		return ui.Error.Sprint("✗") + " " + pipeline.UserMessage(err)
	}
}

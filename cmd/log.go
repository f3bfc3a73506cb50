package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/pounamu/internal/ui"
	"github.com/PolarWolf314/pounamu/internal/workflows"

	"github.com/spf13/cobra"
)

const defaultLogLimit = 20

var logLimit int

var LogCmd = &cobra.Command{
	Use:   "log",
	Short: "Shows recent seal operations from the audit log",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")

		entries, err := workflows.Log(cmd.Context(), logLimit)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read audit log: %v", err)
		}

		if len(entries) == 0 {
			fmt.Println(ui.Muted.Sprint("no audit entries yet"))
			return nil
		}

		var b strings.Builder
		for _, entry := range entries {
			b.WriteString(entry.Timestamp)
			b.WriteString("  ")
			b.WriteString(ui.Highlight.Sprint(entry.Operation))
			if entry.Cipher != "" {
				b.WriteString("  cipher=" + entry.Cipher)
			}
			if entry.InputLen > 0 {
				b.WriteString(fmt.Sprintf("  input=%dB", entry.InputLen))
			}
			if entry.BlobLen > 0 {
				b.WriteString(fmt.Sprintf("  blob=%d chars", entry.BlobLen))
			}
			if entry.Slow {
				b.WriteString("  " + ui.Warning.Sprint("slow"))
			}
			b.WriteString("\n")
		}
		fmt.Print(b.String())
		return nil
	},
}

func init() {
	registerCommonFlags(LogCmd)
	LogCmd.Flags().IntVarP(&logLimit, "limit", "n", defaultLogLimit, "maximum number of entries to show (0 for all)")
}

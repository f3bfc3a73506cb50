package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/pounamu/cmd"
)

var rootCmd = &cobra.Command{
	Use:   "pounamu",
	Short: "Pounamu - A CLI for sealing text into one-time encrypted blobs.",
	Long: `Pounamu seals text under a fresh single-use symmetric key with an
authenticated cipher and prints a transportable base64 blob.

Features:
  - Seal text from an argument, a pipe, or an interactive prompt
  - AES-256-GCM by default, ChaCha20-Poly1305 on request
  - Keys are discarded the moment sealing finishes

Usage:
  pounamu <command> [flags]

Available Commands:
  seal       Seal text into an encrypted blob
  inspect    Check a sealed blob's layout
  log        Show recent seal operations
  config     Manage configuration

Run 'pounamu help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewFigure("pounamu", "", true).Print()
		fmt.Println("Run 'pounamu --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.SealCmd)
	rootCmd.AddCommand(cmd.InspectCmd)
	rootCmd.AddCommand(cmd.LogCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package cmd

import (
	logger "github.com/PolarWolf314/pounamu/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// registerCommonFlags attaches the shared verbosity flags and logger setup
// to a top-level command.
func registerCommonFlags(c *cobra.Command) {
	c.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	c.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	c.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
	}
}

// Helper functions for testing

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	sealCipher = ""
	sealCopy = false
	logLimit = defaultLogLimit
}

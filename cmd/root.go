package cmd

import (
	logger "github.com/PolarWolf314/flowkit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

func init() {
	for _, command := range []*cobra.Command{CreateCmd, UploadCmd, ExecuteCmd} {
		command.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
		command.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	}
}

// initLogger is the PersistentPreRun shared by the top-level commands.
func initLogger(cmd *cobra.Command, args []string) {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}
	Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/PolarWolf314/flowkit/internal/configs"
	flowerrors "github.com/PolarWolf314/flowkit/internal/errors"
	"github.com/PolarWolf314/flowkit/internal/scaffold"
	"github.com/PolarWolf314/flowkit/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ExecuteCmd = &cobra.Command{
	Use:              "execute",
	Short:            "Upload a collection and trigger its final job flow",
	PersistentPreRun: initLogger,
}

var executeCollectionCmd = &cobra.Command{
	Use:   "collection <name>",
	Short: "Upload a collection and execute its final job flow remotely",
	Long: `Re-runs the full upload sequence for the named collection, then triggers
the collection's final job flow on the scheduler. On partial failure the
scheduler finishes whatever branches are still possible and notifies the
configured failure email.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting execute command for collection %s", name)
		spinner, cleanup := startSpinner("Executing collection...", verbose)
		defer cleanup()

		config, err := configs.LoadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load configuration: %v", err)
		}

		result, err := workflows.Execute(cmd.Context(), workflows.ExecuteOptions{
			Collection: name,
			Config:     config,
			Logger:     Logger,
		})
		if err != nil {
			if errors.Is(err, flowerrors.ErrExecutionFailed) {
				spinner.FinalMSG = color.RedString("✗ ") + "Execution of " + color.YellowString(scaffold.FinalJobName(name)) + " was rejected"
			} else {
				spinner.FinalMSG = uploadFailureMessage(name, err)
			}
			return err
		}

		finalMessage := color.GreenString("✓") + " Flow " + color.YellowString(result.Flow) +
			" started as execution " + color.CyanString(fmt.Sprintf("%d", result.ExecID))
		spinner.FinalMSG = finalMessage
		return nil
	},
}

func init() {
	ExecuteCmd.AddCommand(executeCollectionCmd)
}

package cmd

import (
	"errors"
	"os"

	flowerrors "github.com/PolarWolf314/flowkit/internal/errors"
	"github.com/PolarWolf314/flowkit/internal/scaffold"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var createFlowCmd = &cobra.Command{
	Use:   "flow <name>",
	Short: "Scaffold a new flow inside the current collection directory",
	Long: `Scaffolds a three-stage flow (hive extract, sqoop transfer, qa validation)
in the current directory, which should be a collection directory.

The flow's qa job is not wired into the collection's final job automatically;
the command prints a reminder of that manual step.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting create flow command for %s", name)
		spinner, cleanup := startSpinner("Creating flow...", verbose)
		defer cleanup()

		wd, err := os.Getwd()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to get working directory: %v", err)
		}

		err = scaffold.CreateFlow(wd, name)
		if errors.Is(err, flowerrors.ErrAlreadyExists) {
			spinner.FinalMSG = color.RedString("✗ ") + color.YellowString(name) + " already exists in this directory"
			return err
		}
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to create flow %s: %v", name, err)
		}

		finalMessage := color.GreenString("✓") + " Flow " + color.YellowString(name) + " created\n" +
			color.CyanString("→") + " Manual step: add " + color.YellowString(scaffold.QAJobName(name)) +
			" to the dependencies of this collection's final job"
		spinner.FinalMSG = finalMessage
		return nil
	},
}

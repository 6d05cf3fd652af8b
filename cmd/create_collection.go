package cmd

import (
	"errors"
	"os"

	flowerrors "github.com/PolarWolf314/flowkit/internal/errors"
	"github.com/PolarWolf314/flowkit/internal/scaffold"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var createCollectionCmd = &cobra.Command{
	Use:   "collection <name>",
	Short: "Scaffold a new collection directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting create collection command for %s", name)
		spinner, cleanup := startSpinner("Creating collection...", verbose)
		defer cleanup()

		wd, err := os.Getwd()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to get working directory: %v", err)
		}

		err = scaffold.CreateCollection(wd, name)
		if errors.Is(err, flowerrors.ErrAlreadyExists) {
			spinner.FinalMSG = color.RedString("✗ ") + color.YellowString(name) + " already exists in this directory"
			return err
		}
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to create collection %s: %v", name, err)
		}

		finalMessage := color.GreenString("✓") + " Collection " + color.YellowString(name) + " created\n" +
			color.CyanString("→") + " Run " + color.YellowString("cd "+name+" && flowkit create flow <name>") + " to add a flow"
		spinner.FinalMSG = finalMessage
		return nil
	},
}

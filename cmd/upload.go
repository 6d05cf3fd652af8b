package cmd

import (
	"errors"
	"fmt"

	"github.com/PolarWolf314/flowkit/internal/configs"
	flowerrors "github.com/PolarWolf314/flowkit/internal/errors"
	"github.com/PolarWolf314/flowkit/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var UploadCmd = &cobra.Command{
	Use:              "upload",
	Short:            "Zip a collection and upload it to the scheduler",
	PersistentPreRun: initLogger,
}

var uploadCollectionCmd = &cobra.Command{
	Use:   "collection <name>",
	Short: "Upload a collection as a scheduler project of the same name",
	Long: `Zips the named collection directory and submits it to the scheduler as a
project of the same name. The zip is a transient artifact and is removed
after the attempt, whether it succeeds or fails.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		Logger.Infof("Starting upload command for collection %s", name)
		spinner, cleanup := startSpinner("Uploading collection...", verbose)
		defer cleanup()

		config, err := configs.LoadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load configuration: %v", err)
		}

		result, err := workflows.Upload(cmd.Context(), workflows.UploadOptions{
			Collection: name,
			Config:     config,
			Logger:     Logger,
		})
		if err != nil {
			spinner.FinalMSG = uploadFailureMessage(name, err)
			return err
		}

		finalMessage := color.GreenString("✓") + " Collection " + color.YellowString(name) +
			" uploaded to " + color.CyanString(config.ServerURL) +
			fmt.Sprintf(" (project id %s, version %s)", result.ProjectID, result.Version)
		spinner.FinalMSG = finalMessage
		return nil
	},
}

// uploadFailureMessage maps workflow errors to the user-facing failure line.
// The returned error still carries the raw scheduler response for debugging.
func uploadFailureMessage(name string, err error) string {
	switch {
	case errors.Is(err, flowerrors.ErrDirectoryNotFound):
		return color.RedString("✗ ") + "Collection " + color.YellowString(name) + " was not found in this directory"
	case errors.Is(err, flowerrors.ErrAuthenticationFailed):
		return color.RedString("✗ ") + "The scheduler rejected the configured credentials"
	case errors.Is(err, flowerrors.ErrRemoteUnavailable):
		return color.RedString("✗ ") + "The scheduler could not be reached"
	default:
		return color.RedString("✗ ") + "Upload of " + color.YellowString(name) + " failed"
	}
}

func init() {
	UploadCmd.AddCommand(uploadCollectionCmd)
}

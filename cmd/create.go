package cmd

import (
	"github.com/spf13/cobra"
)

var CreateCmd = &cobra.Command{
	Use:              "create",
	Short:            "Scaffold a collection or flow in the current directory",
	Long:             `Scaffolds the directory tree for a new collection, or for a new flow inside an existing collection directory.`,
	PersistentPreRun: initLogger,
}

func init() {
	CreateCmd.AddCommand(createCollectionCmd)
	CreateCmd.AddCommand(createFlowCmd)
}

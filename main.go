package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/flowkit/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flowkit",
	Short: "Flowkit - A CLI for scaffolding and shipping Azkaban ETL projects.",
	Long: `Flowkit scaffolds Azkaban project trees and ships them to the scheduler.

A collection is a project directory holding shared configuration, a controller
job, and a terminal "final" job. A flow is a three-stage ETL chain (hive
extract, sqoop transfer, qa validation) nested inside a collection.

Usage:
  flowkit <command> <object> <name>

Available Commands:
  create     Scaffold a collection or flow in the current directory
  upload     Zip a collection and upload it to the scheduler
  execute    Upload a collection and trigger its final job flow

Run 'flowkit help <command>' for more details on a specific command.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("Flowkit", "alligator2", "green", true)
		banner.Print()
		fmt.Println()
		fmt.Println("Run 'flowkit --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.CreateCmd)
	rootCmd.AddCommand(cmd.UploadCmd)
	rootCmd.AddCommand(cmd.ExecuteCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

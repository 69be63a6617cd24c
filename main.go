package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(HandleExitError(os.Stderr, rootCommand().Execute()))
}

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridsheet",
		Short: "Spreadsheet formula evaluation service",
		Long: `gridsheet serves spreadsheets over HTTP: cells hold literal content or
formulas ("=A1+SUM(B1:B3)"), reads recompute results from raw content.

The database file is taken from the DATABASE_FILEPATH environment
variable; the listen port from LISTEN_PORT (default 8080).`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunApp()
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "snapshot [sheet] [output.json]",
		Short: "Save a sheet's raw content as a JSON snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(func(container ServiceContainer) error {
				snapshot, err := container.SheetRepository.Snapshot(args[0])
				if err != nil {
					return err
				}
				return SaveSnapshotFile(args[1], snapshot)
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "restore [sheet] [input.json]",
		Short: "Replace a sheet with a JSON snapshot and recompute it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(func(container ServiceContainer) error {
				snapshot, err := LoadSnapshotFile(args[1])
				if err != nil {
					return err
				}
				cells, err := container.SheetRepository.Restore(args[0], snapshot)
				if err != nil {
					return err
				}
				fmt.Printf("restored %d cells into %s\n", len(*cells), args[0])
				return nil
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "export [sheet] [output.xlsx]",
		Short: "Export a sheet's raw content and computed values to a workbook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(func(container ServiceContainer) error {
				return NewXlsxExporter(container.SheetRepository).Export(args[0], args[1])
			})
		},
	})

	return rootCmd
}

func withContainer(action func(container ServiceContainer) error) error {
	container, err := BuildServiceContainer(os.Getenv("DATABASE_FILEPATH"))
	if err != nil {
		return err
	}
	defer container.Database.Close()

	return action(container)
}

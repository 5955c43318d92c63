package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// SetupCommands builds the CLI command tree.
func SetupCommands() *cobra.Command {
	// root command
	rootCmd := &cobra.Command{
		Use:   "workdesk",
		Short: "Workspace backend with ledger sheets, schedules, members and notes",
	}

	// command for running the HTTP server
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	// command for dumping a sheet as CSV without starting HTTP
	var sheetName string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a ledger sheet as CSV to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(sheetName)
		},
	}
	exportCmd.Flags().StringVar(&sheetName, "sheet", "", "sheet name to export (defaults to the active sheet)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)

	return rootCmd
}

// runExport loads the workspace from the configured store and writes one
// sheet's derived view as CSV to stdout.
func runExport(sheetName string) error {
	ctx := context.Background()

	s, err := openStore(ctx)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	w, err := loadWorkspace(ctx, s)
	if err != nil {
		return fmt.Errorf("loading workspace: %w", err)
	}

	sheet := w.activeSheet()
	if sheetName != "" {
		sheet = nil
		for _, sh := range w.Sheets {
			if sh.Name == sheetName {
				sheet = sh
				break
			}
		}
		if sheet == nil {
			return fmt.Errorf("no sheet named %q", sheetName)
		}
	}

	return writeSheetCSV(os.Stdout, sheet.Entries)
}

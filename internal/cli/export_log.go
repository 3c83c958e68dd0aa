package cli

import (
	"fmt"
	"os"

	"portfolio-site/pkg/export"

	"github.com/spf13/cobra"
)

func newExportLogCmd() *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "export-log",
		Short: "Export the contact submission log to a spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(inPath)
			if err != nil {
				return fmt.Errorf("opening submission log: %w", err)
			}
			defer in.Close()

			records, skipped, err := export.ParseLog(in)
			if err != nil {
				return err
			}
			for _, n := range skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipping malformed line %d\n", n)
			}

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating spreadsheet: %w", err)
			}
			if err := export.WriteXLSX(out, records); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("closing spreadsheet: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d submissions to %s\n", len(records), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "contact_logs.txt", "Submission log to read")
	cmd.Flags().StringVar(&outPath, "out", "submissions.xlsx", "Spreadsheet to write")
	return cmd
}

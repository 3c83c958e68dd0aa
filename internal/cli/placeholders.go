package cli

import (
	"fmt"

	"portfolio-site/pkg/placeholder"

	"github.com/spf13/cobra"
)

func newPlaceholdersCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "placeholders",
		Short: "Generate the placeholder gallery images",
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := placeholder.WriteAll(outDir, placeholder.Defaults)
			for _, path := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d placeholder images written to %s\n", len(written), outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "public/images", "Output directory")
	return cmd
}

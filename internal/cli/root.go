// Package cli implements portfolioctl, the maintenance tool for the
// portfolio content and contact log.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the portfolioctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "portfolioctl",
		Short: "Maintenance tasks for the portfolio site",
		Long: `portfolioctl generates placeholder media, checks the content documents
and exports the contact submission log.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newPlaceholdersCmd())
	root.AddCommand(newExportLogCmd())
	root.AddCommand(newCheckDataCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

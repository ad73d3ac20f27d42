package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serves and inspects a one-page artist portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newGalleryCmd())
	cmd.AddCommand(newSlugifyCmd())

	return cmd
}

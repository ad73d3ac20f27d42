package main

import (
	"fmt"
	"strings"

	"art-portfolio/internal/format"

	"github.com/spf13/cobra"
)

func newSlugifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slugify <text>...",
		Short: "Print the URL slug of a title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), format.Slugify(strings.Join(args, " ")))
			return err
		},
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"art-portfolio/internal/content"
	"art-portfolio/internal/domain/site"

	"github.com/spf13/cobra"
)

type galleryOptions struct {
	contentPath string
	order       string
	category    string
	limit       int
	jsonOutput  bool
}

func newGalleryCmd() *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Print the gallery as the site would render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.contentPath, "content", "content/portfolio.yaml", "Path to the portfolio content file")
	cmd.Flags().StringVar(&opts.order, "order", "", "Sort by year: asc or desc (default content order)")
	cmd.Flags().StringVar(&opts.category, "category", "", "Only show one category")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Maximum number of artworks (0 = all)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runGallery(out io.Writer, opts *galleryOptions) error {
	switch opts.order {
	case "", site.OrderAsc, site.OrderDesc:
	default:
		return fmt.Errorf("--order must be %q or %q", site.OrderAsc, site.OrderDesc)
	}
	if opts.limit < 0 {
		return fmt.Errorf("--limit must not be negative")
	}

	p, err := content.Load(opts.contentPath)
	if err != nil {
		return err
	}

	cards := site.BuildGallery(p.Artworks, site.GalleryRules{
		Order:       opts.order,
		Category:    opts.category,
		MaxArtworks: opts.limit,
	})

	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(cards)
	}

	if len(cards) == 0 {
		_, err := fmt.Fprintln(out, "No artworks.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "YEAR\tTITLE\tCATEGORY\tSLUG")
	for _, c := range cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Year, c.ShortTitle, c.Category, c.Slug)
	}
	return w.Flush()
}

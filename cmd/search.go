package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"promptdex/internal/logging"
	"promptdex/internal/tools"
)

var (
	flagSearchCategory   string
	flagSearchMinQuality float64
	flagSearchFeatured   bool
)

// searchCmd queries the registry index directly, with the same filter
// semantics as the MCP search tool, and renders the hits as a table.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search registry files by keyword, category, quality, or featured status",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	client := newRegistryClient(cfg, logging.New(cfg.LogLevel))

	index, err := client.FetchIndex(cmd.Context())
	if err != nil {
		return fmt.Errorf("cannot fetch registry index: %w", err)
	}

	searchArgs := tools.SearchArgs{
		Category:     flagSearchCategory,
		FeaturedOnly: flagSearchFeatured,
	}
	if len(args) == 1 {
		searchArgs.Query = args[0]
	}
	if cmd.Flags().Changed("min-quality") {
		searchArgs.MinQuality = &flagSearchMinQuality
	}

	matched := tools.Filter(index.Entries, searchArgs)
	if len(matched) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No matching files (%d files across %d categories).\n",
			index.Count, len(index.Categories))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"SLUG", "TITLE", "CATEGORY", "QUALITY", "FEATURED", "TAGS"})
	for _, e := range matched {
		quality := "-"
		if e.QualityScore != nil {
			quality = fmt.Sprintf("%g", *e.QualityScore)
		}
		featured := ""
		if e.Featured {
			featured = "yes"
		}
		t.AppendRow(table.Row{e.Slug, e.Title, e.Category, quality, featured, strings.Join(e.Tags, ", ")})
	}
	t.Render()

	return nil
}

func init() {
	searchCmd.Flags().StringVar(&flagSearchCategory, "category", "", "Exact category filter")
	searchCmd.Flags().Float64Var(&flagSearchMinQuality, "min-quality", 0, "Minimum quality score (0-100, inclusive)")
	searchCmd.Flags().BoolVar(&flagSearchFeatured, "featured", false, "Show only featured files")
	rootCmd.AddCommand(searchCmd)
}

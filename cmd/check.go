package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"promptdex/internal/logging"
	"promptdex/internal/registry"
)

// checkCmd verifies that the registry is reachable: it fetches the index
// and, concurrently, the first entry's document.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the registry endpoints are reachable",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	client := newRegistryClient(cfg, logging.New(cfg.LogLevel))

	index, err := client.FetchIndex(cmd.Context())
	if err != nil {
		return fmt.Errorf("index endpoint check failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "index ok: %d files, %d categories\n",
		index.Count, len(index.Categories))

	if len(index.Entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "registry is empty, skipping document check")
		return nil
	}

	// Probe a couple of documents in parallel to exercise the document
	// endpoint as well.
	probes := index.Entries
	if len(probes) > 3 {
		probes = probes[:3]
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	for _, entry := range probes {
		g.Go(func() error {
			return probeDocument(ctx, client, entry.Slug)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("document endpoint check failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "documents ok: fetched %d of %d\n", len(probes), len(index.Entries))
	return nil
}

func probeDocument(ctx context.Context, client *registry.Client, slug string) error {
	doc, err := client.FetchDocument(ctx, slug)
	if err != nil {
		return err
	}
	if doc == "" {
		return fmt.Errorf("document %q is empty", slug)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

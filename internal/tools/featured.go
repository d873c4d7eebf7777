package tools

import (
	"context"
	"fmt"
	"strings"
)

// ListFeatured lists the curated entries, one compact block per file.
func (h *Handlers) ListFeatured(ctx context.Context, _ map[string]any) (string, error) {
	index, err := h.reg.FetchIndex(ctx)
	if err != nil {
		return "", err
	}

	featured := Filter(index.Entries, SearchArgs{FeaturedOnly: true})

	var b strings.Builder
	fmt.Fprintf(&b, "%d featured file(s).\n\n", len(featured))
	for _, e := range featured {
		fmt.Fprintf(&b, "- %s (%s)\n", e.Title, e.Slug)
		fmt.Fprintf(&b, "  category: %s\n", e.Category)
		fmt.Fprintf(&b, "  quality: %s\n", formatQuality(e))
		if len(e.Tags) > 0 {
			fmt.Fprintf(&b, "  tags: %s\n", strings.Join(e.Tags, ", "))
		}
		fmt.Fprintf(&b, "  url: %s\n", e.URL)
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

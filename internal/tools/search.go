package tools

import (
	"context"
	"fmt"
	"strings"

	"promptdex/internal/registry"
)

// SearchArgs are the search tool's arguments. All fields are optional;
// supplied filters compose conjunctively.
type SearchArgs struct {
	Query        string   `json:"q"`
	Category     string   `json:"category"`
	MinQuality   *float64 `json:"min_quality"`
	FeaturedOnly bool     `json:"featured_only"`
}

// Filter applies the search predicates to index entries, in the fixed
// order keyword, category, quality, featured. The result is always a
// subset of the input, in input order.
func Filter(entries []registry.Entry, args SearchArgs) []registry.Entry {
	matched := entries

	if args.Query != "" {
		q := strings.ToLower(args.Query)
		matched = keep(matched, func(e registry.Entry) bool {
			return matchesKeyword(e, q)
		})
	}

	if args.Category != "" {
		matched = keep(matched, func(e registry.Entry) bool {
			return e.Category == args.Category
		})
	}

	if args.MinQuality != nil {
		// Unrated entries count as 0; the boundary is inclusive.
		matched = keep(matched, func(e registry.Entry) bool {
			return e.Quality() >= *args.MinQuality
		})
	}

	if args.FeaturedOnly {
		matched = keep(matched, func(e registry.Entry) bool {
			return e.Featured
		})
	}

	return matched
}

func keep(entries []registry.Entry, pred func(registry.Entry) bool) []registry.Entry {
	out := make([]registry.Entry, 0, len(entries))
	for _, e := range entries {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

func matchesKeyword(e registry.Entry, q string) bool {
	if strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Slug), q) ||
		strings.Contains(strings.ToLower(e.Category), q) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Search fetches a fresh index and returns the formatted, unpaginated
// list of every entry that survives the supplied filters.
func (h *Handlers) Search(ctx context.Context, rawArgs map[string]any) (string, error) {
	var args SearchArgs
	if err := decodeArgs(rawArgs, &args); err != nil {
		return "", err
	}

	index, err := h.reg.FetchIndex(ctx)
	if err != nil {
		return "", err
	}

	matched := Filter(index.Entries, args)
	h.logger.Debug("search completed",
		"query", args.Query,
		"matched", len(matched),
		"total", len(index.Entries))

	if len(matched) == 0 {
		return fmt.Sprintf(
			"No matching files. The registry has %d files across %d categories; try a broader query.",
			index.Count, len(index.Categories),
		), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d matching file(s):\n\n", len(matched))
	for _, e := range matched {
		fmt.Fprintf(&b, "## %s (%s)\n", e.Title, e.Slug)
		fmt.Fprintf(&b, "Category: %s | Quality: %s%s\n", e.Category, formatQuality(e), featuredMarker(e))
		if len(e.Tags) > 0 {
			fmt.Fprintf(&b, "Tags: %s\n", strings.Join(e.Tags, ", "))
		}
		fmt.Fprintf(&b, "URL: %s\n\n", e.URL)
	}
	b.WriteString("Use the fetch-one tool with a slug to retrieve a file's content.")

	return b.String(), nil
}

func formatQuality(e registry.Entry) string {
	if e.QualityScore == nil {
		return "unrated"
	}
	return fmt.Sprintf("%g/100", *e.QualityScore)
}

func featuredMarker(e registry.Entry) string {
	if e.Featured {
		return " [featured]"
	}
	return ""
}

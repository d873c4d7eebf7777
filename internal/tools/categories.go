package tools

import (
	"context"
	"fmt"
	"strings"
)

// categoryNames is the static category set, in registry order. It backs
// the search tool's category enum; the live index remains the authority
// for which categories actually exist.
var categoryNames = []string{
	"coding",
	"writing",
	"research",
	"data-analysis",
	"productivity",
	"safety",
	"agents",
	"marketing",
}

// categoryDescriptions maps category names to their human descriptions.
// Categories missing from this map render with an empty description.
var categoryDescriptions = map[string]string{
	"coding":        "Code generation, review, refactoring, and debugging prompts",
	"writing":       "Long-form writing, editing, and style guidance",
	"research":      "Literature review, synthesis, and fact-finding workflows",
	"data-analysis": "Dataset exploration, statistics, and visualization",
	"productivity":  "Planning, summarization, and personal workflow prompts",
	"safety":        "Guardrails, content filtering, and policy enforcement",
	"agents":        "Multi-step agent behaviors and tool-use patterns",
	"marketing":     "Copywriting, positioning, and campaign material",
}

func categoryEnum() []any {
	enum := make([]any, len(categoryNames))
	for i, name := range categoryNames {
		enum[i] = name
	}
	return enum
}

// ListCategories groups index entries by declared category, in index
// order, merged with the static descriptions. Entries whose category is
// outside the declared set are excluded from counts (but not from other
// listings), so counts always sum to at most the index total.
func (h *Handlers) ListCategories(ctx context.Context, _ map[string]any) (string, error) {
	index, err := h.reg.FetchIndex(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d files in the registry.\n\n", index.Count)

	for _, category := range index.Categories {
		count := 0
		for _, entry := range index.Entries {
			if entry.Category == category {
				count++
			}
		}

		fmt.Fprintf(&b, "## %s (%d)\n", category, count)
		if desc := categoryDescriptions[category]; desc != "" {
			fmt.Fprintf(&b, "%s\n", desc)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

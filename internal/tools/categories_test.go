package tools

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListCategoriesCountsAndDescriptions(t *testing.T) {
	h := serveIndex(t, http.StatusOK, `{
		"count": 3,
		"categories": ["coding", "safety", "community-packs"],
		"entries": [
			{"slug": "a", "title": "A", "category": "coding", "url": "u"},
			{"slug": "b", "title": "B", "category": "coding", "url": "u"},
			{"slug": "c", "title": "C", "category": "safety", "url": "u"}
		]
	}`)

	out, err := h.ListCategories(context.Background(), nil)
	require.NoError(t, err)
	require.Contains(t, out, "3 files in the registry.")
	require.Contains(t, out, "## coding (2)")
	require.Contains(t, out, "Code generation, review, refactoring, and debugging prompts")
	require.Contains(t, out, "## safety (1)")
	// A category with no static description still renders, with a count.
	require.Contains(t, out, "## community-packs (0)")
}

func TestListCategoriesExcludesUndeclaredFromCounts(t *testing.T) {
	// One entry claims a category outside the declared set; it must not
	// be counted anywhere, so the counts sum to less than the total.
	h := serveIndex(t, http.StatusOK, `{
		"count": 2,
		"categories": ["coding"],
		"entries": [
			{"slug": "a", "title": "A", "category": "coding", "url": "u"},
			{"slug": "x", "title": "X", "category": "rogue", "url": "u"}
		]
	}`)

	out, err := h.ListCategories(context.Background(), nil)
	require.NoError(t, err)
	require.Contains(t, out, "## coding (1)")
	require.NotContains(t, out, "rogue")
}

func TestListCategoriesPropagatesRegistryStatus(t *testing.T) {
	h := serveIndex(t, http.StatusInternalServerError, "")

	_, err := h.ListCategories(context.Background(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
}

func TestCategoryEnumMatchesDescriptions(t *testing.T) {
	enum := categoryEnum()
	require.Len(t, enum, len(categoryNames))
	for _, name := range categoryNames {
		require.Contains(t, categoryDescriptions, name)
	}
}

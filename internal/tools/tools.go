// Package tools implements the four registry tools exposed over MCP:
// search, fetch-one, list-categories, and list-featured. Handlers are
// stateless; every invocation fetches fresh registry state.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"promptdex/internal/logging"
	"promptdex/internal/registry"
)

// Tool names routed by the dispatcher.
const (
	NameSearch         = "search"
	NameFetchOne       = "fetch-one"
	NameListCategories = "list-categories"
	NameListFeatured   = "list-featured"
)

// Handler produces a formatted text result for one tool call.
// Failures are returned as errors and converted to error envelopes by
// the dispatcher; handlers never write protocol output themselves.
type Handler func(ctx context.Context, args map[string]any) (string, error)

// Tool pairs an MCP tool descriptor with its handler.
type Tool struct {
	Def    *mcp.Tool
	Handle Handler
}

// Handlers binds the tool implementations to a registry client.
type Handlers struct {
	reg    *registry.Client
	logger *slog.Logger
}

// NewHandlers creates the tool handler set. A nil logger disables logging.
func NewHandlers(reg *registry.Client, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Handlers{reg: reg, logger: logger}
}

// Tools returns the four tool descriptors bound to their handlers, in
// their fixed discovery order.
func (h *Handlers) Tools() []Tool {
	return []Tool{
		{
			Def: &mcp.Tool{
				Name: NameSearch,
				Description: "Search the instruction registry by keyword, category, " +
					"minimum quality score, or featured status.",
				InputSchema: searchSchema(),
			},
			Handle: h.Search,
		},
		{
			Def: &mcp.Tool{
				Name: NameFetchOne,
				Description: "Fetch one registry file by slug, either verbatim or " +
					"reduced to its deployable instruction text.",
				InputSchema: fetchOneSchema(),
			},
			Handle: h.FetchOne,
		},
		{
			Def: &mcp.Tool{
				Name: NameListCategories,
				Description: "List every registry category with its file count " +
					"and description.",
				InputSchema: emptySchema(),
			},
			Handle: h.ListCategories,
		},
		{
			Def: &mcp.Tool{
				Name: NameListFeatured,
				Description: "List the curated, featured registry files.",
				InputSchema: emptySchema(),
			},
			Handle: h.ListFeatured,
		},
	}
}

func searchSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"q": {
				Type:        "string",
				Description: "Keyword matched case-insensitively against title, slug, category, and tags",
			},
			"category": {
				Type:        "string",
				Description: "Exact category filter",
				Enum:        categoryEnum(),
			},
			"min_quality": {
				Type:        "number",
				Description: "Minimum quality score, 0-100 inclusive; unrated files count as 0",
			},
			"featured_only": {
				Type:        "boolean",
				Description: "Keep only featured files",
			},
		},
	}
}

func fetchOneSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"slug": {
				Type:        "string",
				Description: "Registry file identifier, as returned by search",
			},
			"instruction_only": {
				Type:        "boolean",
				Description: "Return only the deployable instruction text instead of the full file",
			},
		},
		Required: []string{"slug"},
	}
}

func emptySchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object"}
}

// decodeArgs converts loosely typed MCP arguments into a typed record
// via a JSON round-trip.
func decodeArgs(args map[string]any, v any) error {
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

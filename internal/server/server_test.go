package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"promptdex/internal/registry"
	"promptdex/internal/tools"
)

func fakeTool(name string, handle tools.Handler) tools.Tool {
	return tools.Tool{
		Def:    &mcp.Tool{Name: name, Description: name},
		Handle: handle,
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestCallToolSuccess(t *testing.T) {
	s := New(Config{Name: "promptdex", Version: "test"})
	s.AddTool(fakeTool("echo", func(_ context.Context, args map[string]any) (string, error) {
		v, _ := args["text"].(string)
		return "echo: " + v, nil
	}))

	result := s.CallTool(context.Background(), "echo", map[string]any{"text": "hi"})
	require.False(t, result.IsError)
	require.Equal(t, "echo: hi", resultText(t, result))
}

func TestCallToolUnknownName(t *testing.T) {
	s := New(Config{Name: "promptdex", Version: "test"})

	result := s.CallTool(context.Background(), "bogus", nil)
	require.True(t, result.IsError)
	require.Equal(t, "Unknown tool: bogus", resultText(t, result))
}

func TestCallToolHandlerErrorBecomesEnvelope(t *testing.T) {
	s := New(Config{Name: "promptdex", Version: "test"})
	s.AddTool(fakeTool("fails", func(context.Context, map[string]any) (string, error) {
		return "", errors.New("boom")
	}))

	result := s.CallTool(context.Background(), "fails", nil)
	require.True(t, result.IsError)
	require.Equal(t, "Error: boom", resultText(t, result))
}

func TestCallToolHandlerPanicBecomesEnvelope(t *testing.T) {
	s := New(Config{Name: "promptdex", Version: "test"})
	s.AddTool(fakeTool("panics", func(context.Context, map[string]any) (string, error) {
		panic("unexpected")
	}))

	result := s.CallTool(context.Background(), "panics", nil)
	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "unexpected")
}

func TestToolsPreservesRegistrationOrder(t *testing.T) {
	s := New(Config{Name: "promptdex", Version: "test"})
	s.AddTools([]tools.Tool{
		fakeTool("b", nil),
		fakeTool("a", nil),
		fakeTool("c", nil),
	})

	defs := s.Tools()
	require.Len(t, defs, 3)
	require.Equal(t, "b", defs[0].Name)
	require.Equal(t, "a", defs[1].Name)
	require.Equal(t, "c", defs[2].Name)
}

func TestRegistryFailureSurfacesAsErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := registry.NewClient(registry.WithBaseURL(srv.URL))
	s := New(Config{Name: "promptdex", Version: "test"})
	s.AddTools(tools.NewHandlers(client, nil).Tools())

	for _, name := range []string{tools.NameSearch, tools.NameListCategories, tools.NameListFeatured} {
		result := s.CallTool(context.Background(), name, map[string]any{})
		require.True(t, result.IsError, "tool %s", name)
		require.Contains(t, resultText(t, result), "502", "tool %s", name)
	}
}

func TestFullToolSetDiscovery(t *testing.T) {
	client := registry.NewClient()
	s := New(Config{Name: "promptdex", Version: "test"})
	s.AddTools(tools.NewHandlers(client, nil).Tools())

	defs := s.Tools()
	require.Len(t, defs, 4)
	require.Equal(t, tools.NameSearch, defs[0].Name)
	require.Equal(t, tools.NameFetchOne, defs[1].Name)
	require.Equal(t, tools.NameListCategories, defs[2].Name)
	require.Equal(t, tools.NameListFeatured, defs[3].Name)
	for _, def := range defs {
		require.NotEmpty(t, def.Description)
		require.NotNil(t, def.InputSchema)
	}
}

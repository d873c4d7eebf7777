// Package server hosts the promptdex tool set behind the Model Context
// Protocol. It keeps its own name-keyed tool table so dispatch outcomes
// (including unknown tool names and handler failures) are reported as
// in-band error envelopes rather than protocol faults.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"

	"promptdex/internal/logging"
	"promptdex/internal/tools"
)

// Server dispatches MCP tool calls to their handlers.
type Server struct {
	name    string
	version string
	logger  *slog.Logger

	order []string
	table map[string]tools.Tool
}

// Config configures a Server.
type Config struct {
	// Name identifies the server in the MCP initialize handshake.
	Name string

	// Version is the server version string.
	Version string

	// Logger receives dispatch logs. Nil disables logging.
	Logger *slog.Logger
}

// New creates a Server with no tools registered.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &Server{
		name:    cfg.Name,
		version: cfg.Version,
		logger:  logger,
		table:   make(map[string]tools.Tool, 4),
	}
}

// AddTool registers a tool. Registration order is preserved for
// discovery listings.
func (s *Server) AddTool(t tools.Tool) {
	if _, exists := s.table[t.Def.Name]; !exists {
		s.order = append(s.order, t.Def.Name)
	}
	s.table[t.Def.Name] = t
}

// AddTools registers each tool in order.
func (s *Server) AddTools(ts []tools.Tool) {
	for _, t := range ts {
		s.AddTool(t)
	}
}

// Tools returns the registered tool descriptors in registration order.
func (s *Server) Tools() []*mcp.Tool {
	out := make([]*mcp.Tool, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.table[name].Def)
	}
	return out
}

// CallTool runs one tool call and always produces a result envelope:
// unknown names, handler errors, and handler panics all come back as
// text content with IsError set. It never returns an error to the
// transport layer.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) (result *mcp.CallToolResult) {
	logger := s.logger.With("request_id", ulid.Make().String(), "tool", name)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("tool handler panicked", "panic", r)
			result = errorResult(fmt.Sprintf("Error: %v", r))
		}
	}()

	tool, ok := s.table[name]
	if !ok {
		logger.Warn("unknown tool requested")
		return errorResult("Unknown tool: " + name)
	}

	text, err := tool.Handle(ctx, args)
	if err != nil {
		logger.Error("tool call failed", "error", err)
		return errorResult("Error: " + err.Error())
	}

	logger.Debug("tool call succeeded", "bytes", len(text))
	return textResult(text)
}

// Run serves the registered tools over stdio until the context is done
// or the peer disconnects.
func (s *Server) Run(ctx context.Context) error {
	impl := &mcp.Implementation{Name: s.name, Version: s.version}
	srv := mcp.NewServer(impl, nil)

	for _, name := range s.order {
		tool := s.table[name]
		srv.AddTool(tool.Def, s.rawHandler(name))
	}

	s.logger.Info("serving MCP over stdio", "server", s.name, "tools", len(s.order))

	return srv.Run(ctx, &mcp.StdioTransport{})
}

// rawHandler adapts a dispatch through CallTool to the SDK's low-level
// handler signature. Decoding failures are in-band errors too.
func (s *Server) rawHandler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := parseArguments(req)
		if err != nil {
			return errorResult("Error: " + err.Error()), nil
		}
		return s.CallTool(ctx, name, args), nil
	}
}

// parseArguments unmarshals a tool call's raw arguments into a map.
func parseArguments(req *mcp.CallToolRequest) (map[string]any, error) {
	if req == nil || req.Params == nil || len(req.Params.Arguments) == 0 {
		return map[string]any{}, nil
	}

	var args map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return nil, fmt.Errorf("failed to unmarshal arguments: %w", err)
	}
	return args, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}
}

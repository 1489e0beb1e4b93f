// Package mcpserver exposes the numeric routines as Model Context Protocol
// tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/katalvlaran/lvmath/internal/config"
	"github.com/katalvlaran/lvmath/internal/metrics"
)

// Name is the server name announced to clients.
const Name = "lvmath"

// Tool is one registered tool.
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Server wires the tools to an MCP server.
type Server struct {
	mcpServer *server.MCPServer
	tools     []Tool
	log       *slog.Logger
}

// Deps are the collaborators shared by all tools. Nil metrics are allowed.
type Deps struct {
	Config config.Config
	Log    *slog.Logger
	Solver *metrics.Solver
	Fits   *metrics.Fits
}

// New creates a server with every tool registered.
func New(version string, d Deps) *Server {
	if d.Log == nil {
		d.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		mcpServer: server.NewMCPServer(Name, version),
		log:       d.Log,
	}
	s.tools = []Tool{
		NewSolvePolynomialTool(d),
		NewNormalCDFTool(d),
		NewNormalLookupTool(d),
		NewNormalQuantileTool(d),
		NewFitTool(d),
		NewRemainingTool(d),
	}
	for _, t := range s.tools {
		s.mcpServer.AddTool(t.GetTool(), t.Handle)
	}

	return s
}

// Tools returns the registered tools in registration order.
func (s *Server) Tools() []Tool {
	return s.tools
}

// ServeStdio blocks serving requests on stdin/stdout.
func (s *Server) ServeStdio() error {
	s.log.Info("serving MCP over stdio", "tools", len(s.tools))
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("mcpserver: %w", err)
	}

	return nil
}

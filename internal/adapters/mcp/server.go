// Package mcpadapter exposes the edition services as MCP tools on a
// stdio server.
package mcpadapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Metrics is the slice of instrumentation the adapter reports to.
type Metrics interface {
	RecordToolInvocation(service, tool, status string, duration time.Duration)
}

type Server struct {
	mcp     *server.MCPServer
	logger  *slog.Logger
	metrics Metrics
	service string
}

func NewServer(name, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		mcp: server.NewMCPServer(name, version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		logger: logger,
	}
}

func (s *Server) WithMetrics(m Metrics, service string) *Server {
	s.metrics = m
	s.service = service
	return s
}

// Serve runs the stdio transport until the client disconnects or ctx is
// canceled.
func (s *Server) Serve(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcp)
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

type toolHandler func(ctx context.Context, req mcp.CallToolRequest) (string, error)

// addTool registers a tool with logging, a per-invocation request id
// and metrics around the handler.
func (s *Server) addTool(tool mcp.Tool, handler toolHandler) {
	name := tool.Name
	s.mcp.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		requestID := uuid.NewString()
		start := time.Now()

		text, err := handler(ctx, req)
		duration := time.Since(start)

		status := "ok"
		if err != nil {
			status = errorLabel(err)
		}
		if s.metrics != nil {
			s.metrics.RecordToolInvocation(s.service, name, status, duration)
		}

		if err != nil {
			s.logger.WarnContext(ctx, "tool invocation failed",
				"request_id", requestID,
				"tool", name,
				"status", status,
				"duration", duration,
				"error", err,
			)
			return mcp.NewToolResultError(fmt.Sprintf("%s: %v", status, err)), nil
		}

		s.logger.InfoContext(ctx, "tool invocation",
			"request_id", requestID,
			"tool", name,
			"duration", duration,
		)
		return mcp.NewToolResultText(text), nil
	})
}

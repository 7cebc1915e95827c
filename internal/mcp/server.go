// ABOUTME: MCP server setup for the talent assessment store.
// ABOUTME: Wraps the MCP server with storage, badge evaluation, and the queue.
package mcp

import (
	"context"

	"github.com/harperreed/talent/internal/gamification"
	"github.com/harperreed/talent/internal/queue"
	"github.com/harperreed/talent/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage and engine access.
type Server struct {
	mcpServer *mcp.Server
	store     storage.Store
	evaluator *gamification.Evaluator
	queue     *queue.Queue
}

// NewServer creates a new MCP server over the given store and queue.
func NewServer(store storage.Store, evaluator *gamification.Evaluator, q *queue.Queue) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "talent",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
		evaluator: evaluator,
		queue:     q,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

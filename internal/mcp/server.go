// ABOUTME: MCP server setup for the workout journal.
// ABOUTME: Wraps the MCP server with the store and the journal service.
package mcp

import (
	"context"

	"github.com/harperreed/fitnessfiend/internal/journal"
	"github.com/harperreed/fitnessfiend/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	journal   *journal.Journal
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository, version string) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fiend",
			Version: version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		journal:   journal.New(repo),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

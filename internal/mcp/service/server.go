// Package service hosts the expogo MCP server.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/expogo/internal/core/expogo"
	"github.com/louisbranch/expogo/internal/mcp/domain"
	"github.com/louisbranch/expogo/internal/storage"
	"github.com/louisbranch/expogo/internal/storage/sqlite"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "expogo"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Config configures the MCP server.
type Config struct {
	// DBPath enables the SQLite solution ledger when not empty.
	DBPath string
	// TrialOrder is the default direction trial order; empty means NESW.
	TrialOrder string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	store     *sqlite.Store
}

// New creates a configured MCP server.
func New(cfg Config) (*Server, error) {
	order := expogo.DefaultTrialOrder
	if value := strings.TrimSpace(cfg.TrialOrder); value != "" {
		parsed, err := expogo.ParseTrialOrder(value)
		if err != nil {
			return nil, err
		}
		order = parsed
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		SubscribeHandler:   resourceSubscribeHandler,
		UnsubscribeHandler: resourceUnsubscribeHandler,
	})
	server := &Server{mcpServer: mcpServer}

	var store storage.SolutionStore
	if path := strings.TrimSpace(cfg.DBPath); path != "" {
		sqliteStore, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open ledger: %w", err)
		}
		server.store = sqliteStore
		store = sqliteStore
	}

	resourceNotifier := func(ctx context.Context, uri string) {
		if err := mcpServer.ResourceUpdated(ctx, &mcp.ResourceUpdatedNotificationParams{URI: uri}); err != nil {
			log.Printf("mcp resource updated notify failed: uri=%s err=%v", uri, err)
		}
	}

	registerTools(mcpServer, store, order, resourceNotifier)
	if store != nil {
		registerResources(mcpServer, store)
	}
	return server, nil
}

// resourceSubscribeHandler accepts subscriptions to the resources this server publishes.
func resourceSubscribeHandler(_ context.Context, req *mcp.SubscribeRequest) error {
	if req == nil || req.Params == nil {
		return fmt.Errorf("resource uri is required")
	}
	return checkResourceURI(req.Params.URI)
}

// resourceUnsubscribeHandler accepts unsubscriptions with a valid URI.
func resourceUnsubscribeHandler(_ context.Context, req *mcp.UnsubscribeRequest) error {
	if req == nil || req.Params == nil {
		return fmt.Errorf("resource uri is required")
	}
	return checkResourceURI(req.Params.URI)
}

func checkResourceURI(uri string) error {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return fmt.Errorf("resource uri is required")
	}
	if uri != domain.SolutionListResource().URI {
		return fmt.Errorf("unknown resource %q", uri)
	}
	return nil
}

// Run creates and serves the MCP server on stdio until the context ends.
func Run(ctx context.Context, cfg Config) error {
	return runWithTransport(ctx, cfg, &mcp.StdioTransport{})
}

// Close releases the solution ledger held by the server.
func (s *Server) Close() error {
	if s == nil || s.store == nil {
		return nil
	}
	if err := s.store.Close(); err != nil {
		return err
	}
	s.store = nil
	return nil
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close ledger: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close ledger: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// runWithTransport creates a server and serves it over the provided transport.
func runWithTransport(ctx context.Context, cfg Config, transport mcp.Transport) error {
	server, err := New(cfg)
	if err != nil {
		return err
	}
	return server.serveWithTransport(ctx, transport)
}

package service

import (
	"github.com/louisbranch/expogo/internal/core/expogo"
	"github.com/louisbranch/expogo/internal/mcp/domain"
	"github.com/louisbranch/expogo/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTools(mcpServer *mcp.Server, store storage.SolutionStore, order expogo.TrialOrder, notify domain.ResourceUpdateNotifier) {
	mcp.AddTool(mcpServer, domain.SolveTool(), domain.SolveHandler(store, order, notify))
	mcp.AddTool(mcpServer, domain.VerifyTool(), domain.VerifyHandler())
}

// registerResources registers readable ledger resources.
func registerResources(mcpServer *mcp.Server, store storage.SolutionStore) {
	mcpServer.AddResource(domain.SolutionListResource(), domain.SolutionListResourceHandler(store))
}

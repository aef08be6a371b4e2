package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/louisbranch/expogo/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// recentSolutionsLimit caps the ledger entries returned by the resource.
const recentSolutionsLimit = 50

// SolutionListEntry is one ledger row in the solution list resource.
type SolutionListEntry struct {
	X          int64  `json:"x"`
	Y          int64  `json:"y"`
	TrialOrder string `json:"trial_order"`
	Result     string `json:"result"`
	Possible   bool   `json:"possible"`
	SolvedAt   string `json:"solved_at"`
}

// SolutionListPayload is the JSON body of the solution list resource.
type SolutionListPayload struct {
	Solutions []SolutionListEntry `json:"solutions"`
}

// SolutionListResource defines the MCP resource for recent ledger entries.
func SolutionListResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "solution_list",
		Title:       "Recent solutions",
		Description: "Most recently solved targets recorded in the solution ledger",
		MIMEType:    "application/json",
		URI:         "solutions://recent",
	}
}

// SolutionListResourceHandler returns a readable listing of recent solutions.
func SolutionListResourceHandler(store storage.SolutionStore) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if store == nil {
			return nil, fmt.Errorf("solution ledger is not configured")
		}

		uri := SolutionListResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		solutions, err := store.ListSolutions(ctx, recentSolutionsLimit)
		if err != nil {
			return nil, fmt.Errorf("solution list failed: %w", err)
		}

		payload := SolutionListPayload{Solutions: make([]SolutionListEntry, 0, len(solutions))}
		for _, solution := range solutions {
			payload.Solutions = append(payload.Solutions, SolutionListEntry{
				X:          solution.X,
				Y:          solution.Y,
				TrialOrder: solution.TrialOrder,
				Result:     solution.Result,
				Possible:   solution.Possible,
				SolvedAt:   solution.SolvedAt.UTC().Format(time.RFC3339),
			})
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal solution list: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}

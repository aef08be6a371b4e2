package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/expogo/internal/core/expogo"
	"github.com/louisbranch/expogo/internal/ledger"
	"github.com/louisbranch/expogo/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/expogo/internal/mcp/domain"

// SolveInput represents the MCP tool input for solving one target.
type SolveInput struct {
	X     int64  `json:"x" jsonschema:"target x coordinate"`
	Y     int64  `json:"y" jsonschema:"target y coordinate"`
	Order string `json:"order,omitempty" jsonschema:"optional direction trial order, a permutation of NESW"`
}

// SolveResult represents the MCP tool output for a solved target.
type SolveResult struct {
	X        int64  `json:"x" jsonschema:"target x coordinate"`
	Y        int64  `json:"y" jsonschema:"target y coordinate"`
	Order    string `json:"order" jsonschema:"trial order used by the search"`
	Possible bool   `json:"possible" jsonschema:"whether the target is reachable"`
	Result   string `json:"result" jsonschema:"direction string, or IMPOSSIBLE"`
	Path     string `json:"path" jsonschema:"direction string starting with the length-1 jump; empty when impossible"`
	Jumps    int    `json:"jumps" jsonschema:"number of jumps in path"`
}

// VerifyInput represents the MCP tool input for checking a path.
type VerifyInput struct {
	X    int64  `json:"x" jsonschema:"target x coordinate"`
	Y    int64  `json:"y" jsonschema:"target y coordinate"`
	Path string `json:"path" jsonschema:"direction string such as SEN, first jump has length 1"`
}

// VerifyResult represents the MCP tool output for a checked path.
type VerifyResult struct {
	X       int64 `json:"x" jsonschema:"target x coordinate"`
	Y       int64 `json:"y" jsonschema:"target y coordinate"`
	LandedX int64 `json:"landed_x" jsonschema:"x coordinate the path lands on"`
	LandedY int64 `json:"landed_y" jsonschema:"y coordinate the path lands on"`
	Valid   bool  `json:"valid" jsonschema:"whether the path lands on the target"`
}

// SolveTool defines the MCP tool schema for solving a target.
func SolveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "expogo_solve",
		Description: "Finds jump directions (lengths 1, 2, 4, ...) from the origin to a target, or reports IMPOSSIBLE",
	}
}

// VerifyTool defines the MCP tool schema for checking a path.
func VerifyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "expogo_verify",
		Description: "Walks a direction string from the origin and reports whether it lands on the target",
	}
}

// SolveHandler solves one target, consulting store when it is not nil.
// Solves made while a store is configured are announced through notify.
func SolveHandler(store storage.SolutionStore, defaultOrder expogo.TrialOrder, notify ResourceUpdateNotifier) mcp.ToolHandlerFor[SolveInput, SolveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SolveInput) (*mcp.CallToolResult, SolveResult, error) {
		ctx, span := otel.Tracer(tracerName).Start(ctx, "expogo.mcp.solve", trace.WithAttributes(
			attribute.Int64("expogo.x", input.X),
			attribute.Int64("expogo.y", input.Y),
		))
		defer span.End()

		order := defaultOrder
		if value := strings.TrimSpace(input.Order); value != "" {
			parsed, err := expogo.ParseTrialOrder(value)
			if err != nil {
				return nil, SolveResult{}, spanError(span, err)
			}
			order = parsed
		}

		target := expogo.Target{X: input.X, Y: input.Y}
		result, err := ledger.NewService(expogo.NewSolver(order), store).Solve(ctx, target)
		if err != nil {
			return nil, SolveResult{}, spanError(span, fmt.Errorf("solve %s: %w", target, err))
		}
		span.SetAttributes(attribute.Bool("expogo.possible", result.Possible))
		if store != nil {
			NotifyResourceUpdates(ctx, notify, SolutionListResource().URI)
		}

		return nil, SolveResult{
			X:        target.X,
			Y:        target.Y,
			Order:    order.String(),
			Possible: result.Possible,
			Result:   result.String(),
			Path:     result.Path.String(),
			Jumps:    len(result.Path),
		}, nil
	}
}

// VerifyHandler walks a path and compares the landing point to the target.
func VerifyHandler() mcp.ToolHandlerFor[VerifyInput, VerifyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input VerifyInput) (*mcp.CallToolResult, VerifyResult, error) {
		_, span := otel.Tracer(tracerName).Start(ctx, "expogo.mcp.verify", trace.WithAttributes(
			attribute.Int64("expogo.x", input.X),
			attribute.Int64("expogo.y", input.Y),
			attribute.String("expogo.path", input.Path),
		))
		defer span.End()

		path, err := expogo.ParsePath(input.Path)
		if err != nil {
			return nil, VerifyResult{}, spanError(span, err)
		}
		landed, err := expogo.Walk(path)
		if err != nil {
			return nil, VerifyResult{}, spanError(span, err)
		}
		target := expogo.Target{X: input.X, Y: input.Y}
		valid := landed == target
		span.SetAttributes(attribute.Bool("expogo.valid", valid))

		return nil, VerifyResult{
			X:       target.X,
			Y:       target.Y,
			LandedX: landed.X,
			LandedY: landed.Y,
			Valid:   valid,
		}, nil
	}
}

func spanError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

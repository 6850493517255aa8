package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/coltoneshaw/ynabsync/internal/sync"
)

// registerTools wires the engine's Read API into the MCP tool surface.
// This demonstrates the contract end-to-end (resolve → ensure synced →
// project) rather than reimplementing the full YNAB tool catalogue, which
// is out of scope here.
func registerTools(s *server.MCPServer, engine *sync.Engine) {
	resolver := sync.NewResolver()

	s.AddTool(mcp.Tool{
		Name:        "list_budgets",
		Description: "List every budget currently known to the sync engine, by id.",
		InputSchema: mcp.ToolInputSchema{Type: "object", Properties: map[string]interface{}{}},
	}, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ids := engine.KnownBudgetIDs()
		if len(ids) == 0 {
			return mcp.NewToolResultText("No budget has been synced yet."), nil
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Known budgets (%d):\n", len(ids))
		for _, id := range ids {
			fmt.Fprintf(&b, "  - %s\n", id)
		}
		return mcp.NewToolResultText(b.String()), nil
	})

	s.AddTool(mcp.Tool{
		Name:        "query_transactions",
		Description: "List transactions for a budget, optionally filtered to one account. Triggers a sync first if the local replica is stale or dirty.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"budget_id":    map[string]interface{}{"type": "string", "description": "Budget id; omit to use the last-resolved or sole known budget"},
				"account_id":   map[string]interface{}{"type": "string", "description": "Restrict results to this account id"},
				"account_name": map[string]interface{}{"type": "string", "description": "Restrict results to this account name"},
			},
		},
	}, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := req.Params.Arguments.(map[string]interface{})

		budgetSel := sync.Selector{ID: stringArg(args, "budget_id")}
		var accountSel *sync.Selector
		if id, name := stringArg(args, "account_id"), stringArg(args, "account_name"); id != "" || name != "" {
			accountSel = &sync.Selector{ID: id, Name: name}
		}

		views, err := engine.ReadTransactions(ctx, budgetSel, accountSel, resolver)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if len(views) == 0 {
			return mcp.NewToolResultText("No transactions found."), nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Found %d transaction(s):\n\n", len(views))
		for _, t := range views {
			fmt.Fprintf(&b, "%s  %-10s  %s -> %s  %.2f\n",
				t.Date.Time.Format("2006-01-02"), t.AccountName, t.PayeeName, t.CategoryName, t.AmountDisplay.Amount)
		}
		return mcp.NewToolResultText(b.String()), nil
	})
}

func stringArg(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return v
}

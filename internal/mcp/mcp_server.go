// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rushiraj-gohil/bizdash/internal/contract"
)

// NewMCPServer initializes and configures the bizdash MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Bizdash Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_revenue_trend ---
	s.AddTool(mcp.NewTool("get_revenue_trend",
		mcp.WithDescription("Compute the monthly paid revenue trend with Z-score anomaly flags."),
		mcp.WithString("archive_url", mcp.Description("HTTPS location of the dataset ZIP archive (defaults to the published cleaned dataset).")),
	), h.handleGetRevenueTrend)

	// --- 2. Tool: get_cohort_retention ---
	s.AddTool(mcp.NewTool("get_cohort_retention",
		mcp.WithDescription("Compute the cohort retention matrix (signup cohorts, month offsets 0-5)."),
		mcp.WithString("archive_url", mcp.Description("HTTPS location of the dataset ZIP archive.")),
	), h.handleGetCohortRetention)

	// --- 3. Tool: get_support_payment_summary ---
	s.AddTool(mcp.NewTool("get_support_payment_summary",
		mcp.WithDescription("Correlate per-customer support ticket volume with payment outcomes."),
		mcp.WithString("archive_url", mcp.Description("HTTPS location of the dataset ZIP archive.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of customer rows returned.")),
	), h.handleGetSupportPaymentSummary)

	return s
}

// StartMCPServer starts the bizdash MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}

// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/opspulse/sprintwatch/internal/contract"
)

// NewMCPServer initializes and configures the sprintwatch MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.TrackerClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Sprintwatch Compliance Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: get_compliance_report ---
	s.AddTool(mcp.NewTool("get_compliance_report",
		mcp.WithDescription("Check sprint work items against the team rulebook and summarize the violations."),
		mcp.WithString("sprint", mcp.Description("Restrict the report to one sprint (defaults to all sprints).")),
		mcp.WithString("assignee", mcp.Description("Restrict the report to one assignee.")),
		mcp.WithBoolean("fetch_comments", mcp.Description("Fetch recent comments to detect stale items (slower).")),
	), h.handleGetComplianceReport)

	// --- 2. Tool: get_sprint_metrics ---
	s.AddTool(mcp.NewTool("get_sprint_metrics",
		mcp.WithDescription("Aggregate story points and task counts by workflow status and assignee."),
		mcp.WithString("sprint", mcp.Description("Restrict the metrics to one sprint (defaults to all sprints).")),
	), h.handleGetSprintMetrics)

	// --- 3. Tool: get_burndown ---
	s.AddTool(mcp.NewTool("get_burndown",
		mcp.WithDescription("Reconstruct the ideal and actual burndown series for a sprint from work-item dates."),
		mcp.WithString("sprint", mcp.Description("The sprint to build the burndown for."), mcp.Required()),
	), h.handleGetBurndown)

	// --- 4. Tool: get_velocity_trend ---
	s.AddTool(mcp.NewTool("get_velocity_trend",
		mcp.WithDescription("List completed versus planned story points for each closed sprint on record."),
	), h.handleGetVelocityTrend)

	// --- 5. Tool: get_compliance_trend ---
	s.AddTool(mcp.NewTool("get_compliance_trend",
		mcp.WithDescription("List daily compliance-rate observations from saved snapshots."),
		mcp.WithNumber("days", mcp.Description("Lookback window in days. Defaults to the configured trend window.")),
	), h.handleGetComplianceTrend)

	return s
}

// StartMCPServer starts the sprintwatch MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.TrackerClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/opspulse/sprintwatch/core"
	"github.com/opspulse/sprintwatch/internal/contract"
	"github.com/opspulse/sprintwatch/internal/history"
	"github.com/opspulse/sprintwatch/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.TrackerClient
}

// fetchResults pulls work items through the rulebook. The completed set is
// fetched too when includeDone is set so burndown sees delivered points.
func (h *toolHandler) fetchResults(ctx context.Context, cfg *contract.Config, includeDone bool) ([]schema.Compliance, error) {
	items, err := h.client.FetchWorkItems(ctx, false, schema.Filters{})
	if err != nil {
		return nil, err
	}
	if includeDone {
		completed, err := h.client.FetchWorkItems(ctx, true, schema.Filters{})
		if err != nil {
			return nil, err
		}
		items = append(items, completed...)
	}

	analyzer := core.NewAnalyzer(cfg, h.client)
	return analyzer.AnalyzeAll(ctx, items, cfg.FetchComments, includeDone), nil
}

func (h *toolHandler) handleGetComplianceReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Sprint = request.GetString("sprint", "")
	cfg.FetchComments = request.GetBool("fetch_comments", cfg.FetchComments)

	results, err := h.fetchResults(ctx, cfg, false)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	filter := core.ResultFilter{Sprint: cfg.Sprint}
	if a := request.GetString("assignee", ""); a != "" {
		filter.Assignees = []string{a}
	}
	results = core.FilterResults(results, filter)

	summary := core.Summarize(cfg, results, time.Now())
	payload := struct {
		Summary schema.ReportSummary `json:"summary"`
		Items   []schema.Compliance  `json:"items"`
	}{Summary: summary, Items: results}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSprintMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Sprint = request.GetString("sprint", "")

	results, err := h.fetchResults(ctx, cfg, true)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	results = core.FilterResults(results, core.ResultFilter{Sprint: cfg.Sprint})

	metrics := core.CalculateSprintMetrics(cfg, results)
	jsonData, _ := json.MarshalIndent(metrics, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetBurndown(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sprint := request.GetString("sprint", "")
	if sprint == "" {
		return mcp.NewToolResultError("sprint is required"), nil
	}

	cfg := h.baseCfg.Clone()
	results, err := h.fetchResults(ctx, cfg, true)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	// Only the requested sprint's items may contribute points and dates.
	results = core.FilterResults(results, core.ResultFilter{Sprint: sprint})

	burndown, err := core.BuildBurndown(cfg, results, sprint, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("burndown failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(burndown, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetVelocityTrend(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store, err := history.NewStore(h.baseCfg.HistoryDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("opening history store: %v", err)), nil
	}

	points, err := store.VelocityTrend()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("velocity trend failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(points, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetComplianceTrend(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := request.GetInt("days", h.baseCfg.TrendDays)
	if days <= 0 {
		return mcp.NewToolResultError("days must be at least 1"), nil
	}

	store, err := history.NewStore(h.baseCfg.HistoryDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("opening history store: %v", err)), nil
	}

	points, err := store.ComplianceTrend(days)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("compliance trend failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(points, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

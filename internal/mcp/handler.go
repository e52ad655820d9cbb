package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests of a single user: parses input, calls the service, formats the MCP result.
type Handler struct {
	service contextService
	uid     string
}

func NewHandler(service contextService, uid string) *Handler {
	return &Handler{
		service: service,
		uid:     uid,
	}
}

// WeekPlanInput is the input for get_week_plan.
type WeekPlanInput struct {
	WeekID string `json:"week_id,omitempty" jsonschema:"Week id (week-YYYY-MM-DD of the monday); current week when empty"`
}

// GetWeekPlanTool returns the MCP tool handler for get_week_plan.
func (h *Handler) GetWeekPlanTool() func(context.Context, *mcp.CallToolRequest, WeekPlanInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WeekPlanInput) (*mcp.CallToolResult, any, error) {
		week, err := h.service.WeekPlan(ctx, h.uid, in.WeekID)
		if err != nil {
			return errorResult("Error fetching week plan: " + err.Error()), nil, nil
		}
		return jsonResult(week), nil, nil
	}
}

// GetWorkoutModulesTool returns the MCP tool handler for list_workout_modules.
func (h *Handler) GetWorkoutModulesTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		list, err := h.service.WorkoutModules(ctx, h.uid)
		if err != nil {
			return errorResult("Error listing workout modules: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

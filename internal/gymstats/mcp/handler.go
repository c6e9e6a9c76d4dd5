package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/gymstats/dashboard"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const dateLayout = "2006-01-02"

// Handler turns MCP tool calls into service calls for a single user.
type Handler struct {
	service contextService
	userID  string
}

func NewHandler(service contextService, userID string) *Handler {
	return &Handler{
		service: service,
		userID:  userID,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}

// GetSchemaTool returns the MCP tool handler for get_liftstats_schema.
func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

// YearInput is the input for year scoped tools.
type YearInput struct {
	Year int `json:"year,omitempty" jsonschema:"Calendar year (e.g. 2025). Defaults to the tracked year"`
}

// GetDashboardTool returns the MCP tool handler for get_dashboard.
func (h *Handler) GetDashboardTool() func(context.Context, *mcp.CallToolRequest, YearInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in YearInput) (*mcp.CallToolResult, any, error) {
		if in.Year != 0 && (in.Year < 2000 || in.Year > 2100) {
			return errorResult("Invalid year: use a year between 2000 and 2100"), nil, nil
		}
		data, err := h.service.GetDashboard(ctx, h.userID, in.Year)
		if err != nil {
			if errors.Is(err, dashboard.ErrSetupRequired) {
				return errorResult("Setup required: save an API key in settings and run a sync first"), nil, nil
			}
			return errorResult("Error building dashboard: " + err.Error()), nil, nil
		}
		return jsonResult(data), nil, nil
	}
}

// GetExerciseRecordsTool returns the MCP tool handler for get_exercise_records.
func (h *Handler) GetExerciseRecordsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		list, err := h.service.ListExerciseRecords(ctx, h.userID)
		if err != nil {
			return errorResult("Error listing exercise records: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

// LimitInput is the input for get_recent_records.
type LimitInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max number of entries (1-100, default 10)"`
}

func clampLimit(limit, fallback, maxLimit int) int {
	if limit <= 0 {
		return fallback
	}
	return min(limit, maxLimit)
}

// GetRecentRecordsTool returns the MCP tool handler for get_recent_records.
func (h *Handler) GetRecentRecordsTool() func(context.Context, *mcp.CallToolRequest, LimitInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in LimitInput) (*mcp.CallToolResult, any, error) {
		events, err := h.service.RecentRecords(ctx, h.userID, clampLimit(in.Limit, 10, 100))
		if err != nil {
			return errorResult("Error listing recent records: " + err.Error()), nil, nil
		}
		return jsonResult(events), nil, nil
	}
}

// TopWorkoutsInput is the input for get_top_workouts.
type TopWorkoutsInput struct {
	Year  int `json:"year" jsonschema:"Calendar year (e.g. 2025)"`
	Limit int `json:"limit,omitempty" jsonschema:"Max number of workouts (1-50, default 10)"`
}

// GetTopWorkoutsTool returns the MCP tool handler for get_top_workouts.
func (h *Handler) GetTopWorkoutsTool() func(context.Context, *mcp.CallToolRequest, TopWorkoutsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in TopWorkoutsInput) (*mcp.CallToolResult, any, error) {
		if in.Year < 2000 || in.Year > 2100 {
			return errorResult("Invalid year: use a year between 2000 and 2100"), nil, nil
		}
		list, err := h.service.TopWorkouts(ctx, h.userID, in.Year, clampLimit(in.Limit, 10, 50))
		if err != nil {
			return errorResult("Error listing top workouts: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

// WorkoutsTimeRangeInput is the input for get_workouts_for_time_range.
type WorkoutsTimeRangeInput struct {
	FromDate string `json:"from_date" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate   string `json:"to_date" jsonschema:"End date, inclusive (YYYY-MM-DD)"`
}

// GetWorkoutsForTimeRangeTool returns the MCP tool handler for get_workouts_for_time_range.
func (h *Handler) GetWorkoutsForTimeRangeTool() func(context.Context, *mcp.CallToolRequest, WorkoutsTimeRangeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutsTimeRangeInput) (*mcp.CallToolResult, any, error) {
		from, err := time.Parse(dateLayout, in.FromDate)
		if err != nil {
			return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
		}
		to, err := time.Parse(dateLayout, in.ToDate)
		if err != nil {
			return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
		}
		if to.Before(from) {
			return errorResult("Invalid range: to_date is before from_date"), nil, nil
		}

		list, err := h.service.ListWorkouts(ctx, h.userID, from, to.AddDate(0, 0, 1))
		if err != nil {
			return errorResult("Error listing workouts: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

// SyncWorkoutsTool returns the MCP tool handler for sync_workouts.
func (h *Handler) SyncWorkoutsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		result, err := h.service.Sync(ctx, h.userID)
		if err != nil {
			return errorResult("Sync failed: " + err.Error()), nil, nil
		}
		return jsonResult(map[string]any{
			"message": fmt.Sprintf("Synced %d workouts", result.WorkoutsUpdated),
			"result":  result,
		}), nil, nil
	}
}

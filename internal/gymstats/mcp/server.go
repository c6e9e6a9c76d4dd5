package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server exposing the liftstats data of one user.
// Used by cmd/liftstats_mcp over stdio and by the backend at /mcp.
func NewServer(service *ContextService, userID string) *mcp.Server {
	h := NewHandler(service, userID)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "liftstats-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_liftstats_schema",
		Description: "Returns the DB schema of the liftstats tables (connections, workouts, daily aggregates, PR events, exercise records, weight log, exercise type templates). Use when you need the actual backend schema.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Returns the yearly volume dashboard: total lifted, goal progress, pace (ahead/behind), projected year end, cumulative chart series, daily heatmap and the newest PRs. Optional arg: year.",
	}, h.GetDashboardTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_records",
		Description: "Returns the current personal records per exercise: max weight (with reps), max single set volume and max session volume, with the dates they were set.",
	}, h.GetExerciseRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_recent_records",
		Description: "Returns the newest PR events (category, value, previous best, delta). Optional arg: limit.",
	}, h.GetRecentRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_top_workouts",
		Description: "Returns the workouts with the highest volume in a year. Args: year; optional: limit.",
	}, h.GetTopWorkoutsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workouts_for_time_range",
		Description: "Returns workouts started within the given date range with per exercise sets, reps and max weight (lb). Args: from_date, to_date (YYYY-MM-DD).",
	}, h.GetWorkoutsForTimeRangeTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "sync_workouts",
		Description: "Pulls new, changed and deleted workouts from Hevy and rebuilds records and aggregates. Use when the data looks stale.",
	}, h.SyncWorkoutsTool())

	return s
}

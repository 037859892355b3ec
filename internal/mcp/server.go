package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds the athletehub MCP server. The main backend mounts it at /mcp
// over streamable HTTP and cmd/athletes_mcp serves it over stdio.
func NewServer(svc *ContextService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "athletehub-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_athletehub_context",
		Description: "Returns the DB schema for athletehub tables (athlete, athlete_data, injury): table names, columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_athlete",
		Description: "Returns one athlete's profile (name, age, gender, sport, position, height, weight, max heart rate). Arg: athlete_id.",
	}, h.GetAthleteTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_athletes",
		Description: "Lists all athletes, newest first. Optional filter: sport (case-insensitive).",
	}, h.ListAthletesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_athlete_metrics",
		Description: "Returns the derived workload snapshot of an athlete: exertion, acute/chronic load and ACWR, fatigue, recovery, injury risk with contributing factors, and overall status (e.g. PEAKING, FATIGUED, INJURED). Arg: athlete_id.",
	}, h.GetAthleteMetricsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_team_overview",
		Description: "Returns every athlete's status and injury risk, highest risk first, plus counts per status. Optional filter: sport.",
	}, h.GetTeamOverviewTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_training_records",
		Description: "Returns an athlete's training records (duration, intensity, heart rate, sleep, soreness), newest first. Args: athlete_id; optional from_date, to_date (YYYY-MM-DD).",
	}, h.GetTrainingRecordsTool())

	return s
}

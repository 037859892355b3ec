package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shreyajaiswal17/athletehub/internal/athletes"
	"github.com/shreyajaiswal17/athletehub/internal/performance"
)

const dateLayout = "2006-01-02"

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

type NoInput struct{}

type AthleteInput struct {
	AthleteID int `json:"athlete_id" jsonschema:"Athlete id"`
}

type SportInput struct {
	Sport string `json:"sport,omitempty" jsonschema:"Filter by sport (e.g. football, swimming); aliases like soccer are not expanded"`
}

type TrainingRecordsInput struct {
	AthleteID int    `json:"athlete_id" jsonschema:"Athlete id"`
	FromDate  string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate    string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD), inclusive"`
}

func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, NoInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ NoInput) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

func (h *Handler) GetAthleteTool() func(context.Context, *mcp.CallToolRequest, AthleteInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AthleteInput) (*mcp.CallToolResult, any, error) {
		athlete, err := h.service.GetAthlete(ctx, in.AthleteID)
		if err != nil {
			return lookupErrorResult("Error fetching athlete", in.AthleteID, err), nil, nil
		}
		return jsonResult(athlete), nil, nil
	}
}

func (h *Handler) ListAthletesTool() func(context.Context, *mcp.CallToolRequest, SportInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SportInput) (*mcp.CallToolResult, any, error) {
		list, err := h.service.ListAthletes(ctx, in.Sport)
		if err != nil {
			return errorResult("Error listing athletes: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func (h *Handler) GetAthleteMetricsTool() func(context.Context, *mcp.CallToolRequest, AthleteInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AthleteInput) (*mcp.CallToolResult, any, error) {
		snap, err := h.service.GetAthleteMetrics(ctx, in.AthleteID)
		if err != nil {
			return lookupErrorResult("Error computing metrics", in.AthleteID, err), nil, nil
		}
		return jsonResult(snap), nil, nil
	}
}

func (h *Handler) GetTeamOverviewTool() func(context.Context, *mcp.CallToolRequest, SportInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SportInput) (*mcp.CallToolResult, any, error) {
		overview, err := h.service.GetTeamOverview(ctx, in.Sport)
		if err != nil {
			return errorResult("Error building team overview: " + err.Error()), nil, nil
		}
		return jsonResult(overview), nil, nil
	}
}

func (h *Handler) GetTrainingRecordsTool() func(context.Context, *mcp.CallToolRequest, TrainingRecordsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in TrainingRecordsInput) (*mcp.CallToolResult, any, error) {
		params := performance.RecordParams{AthleteID: in.AthleteID}
		if in.FromDate != "" {
			from, err := time.Parse(dateLayout, in.FromDate)
			if err != nil {
				return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
			}
			params.From = &from
		}
		if in.ToDate != "" {
			to, err := time.Parse(dateLayout, in.ToDate)
			if err != nil {
				return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
			}
			to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, to.Location())
			params.To = &to
		}
		if params.From != nil && params.To != nil && params.From.After(*params.To) {
			return errorResult("Invalid range: from_date is after to_date"), nil, nil
		}

		records, err := h.service.GetTrainingRecords(ctx, params)
		if err != nil {
			return lookupErrorResult("Error listing training records", in.AthleteID, err), nil, nil
		}
		return jsonResult(records), nil, nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func lookupErrorResult(prefix string, athleteID int, err error) *mcp.CallToolResult {
	if errors.Is(err, athletes.ErrAthleteNotFound) {
		return errorResult(fmt.Sprintf("Athlete %d not found", athleteID))
	}
	return errorResult(prefix + ": " + err.Error())
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}

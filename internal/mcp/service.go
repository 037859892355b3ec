package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shreyajaiswal17/athletehub/internal/athletes"
	"github.com/shreyajaiswal17/athletehub/internal/dashboard"
	"github.com/shreyajaiswal17/athletehub/internal/performance"
	"github.com/shreyajaiswal17/athletehub/internal/workload"
)

type AthletesRepo interface {
	Get(ctx context.Context, id int) (*athletes.Athlete, error)
	ListAll(ctx context.Context, sport string) ([]athletes.Athlete, error)
}

type RecordsRepo interface {
	ListAll(ctx context.Context, params performance.RecordParams) ([]performance.Record, error)
}

type MetricsService interface {
	Snapshot(ctx context.Context, athleteID int) (*workload.Snapshot, error)
	TeamOverview(ctx context.Context, sport string) (*dashboard.TeamOverview, error)
}

// contextService provides athlete context data to the tool handlers.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetAthlete(ctx context.Context, id int) (*athletes.Athlete, error)
	ListAthletes(ctx context.Context, sport string) ([]athletes.Athlete, error)
	GetAthleteMetrics(ctx context.Context, id int) (*workload.Snapshot, error)
	GetTeamOverview(ctx context.Context, sport string) (*dashboard.TeamOverview, error)
	GetTrainingRecords(ctx context.Context, params performance.RecordParams) ([]performance.Record, error)
}

// ContextService implements the athletehub context lookups the MCP tools expose.
type ContextService struct {
	schema   SchemaRepo
	athletes AthletesRepo
	records  RecordsRepo
	metrics  MetricsService
}

func NewContextService(
	schemaRepo SchemaRepo,
	athletesRepo AthletesRepo,
	recordsRepo RecordsRepo,
	metricsService MetricsService,
) *ContextService {
	return &ContextService{
		schema:   schemaRepo,
		athletes: athletesRepo,
		records:  recordsRepo,
		metrics:  metricsService,
	}
}

// GetSchema returns the DB schema (table names, columns, types) as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Athletehub DB Schema\n\nNo athletehub tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Athletehub DB Schema\n\n")
	b.WriteString("Tables: athlete, athlete_data (training records), injury (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) GetAthlete(ctx context.Context, id int) (*athletes.Athlete, error) {
	return s.athletes.Get(ctx, id)
}

func (s *ContextService) ListAthletes(ctx context.Context, sport string) ([]athletes.Athlete, error) {
	return s.athletes.ListAll(ctx, sport)
}

func (s *ContextService) GetAthleteMetrics(ctx context.Context, id int) (*workload.Snapshot, error) {
	return s.metrics.Snapshot(ctx, id)
}

func (s *ContextService) GetTeamOverview(ctx context.Context, sport string) (*dashboard.TeamOverview, error) {
	return s.metrics.TeamOverview(ctx, sport)
}

// GetTrainingRecords checks the athlete exists first, so an unknown id is reported
// as such instead of as an empty list.
func (s *ContextService) GetTrainingRecords(ctx context.Context, params performance.RecordParams) ([]performance.Record, error) {
	if _, err := s.athletes.Get(ctx, params.AthleteID); err != nil {
		return nil, err
	}
	return s.records.ListAll(ctx, params)
}

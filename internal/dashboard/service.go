package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/shreyajaiswal17/athletehub/internal/athletes"
	"github.com/shreyajaiswal17/athletehub/internal/injuries"
	"github.com/shreyajaiswal17/athletehub/internal/performance"
	"github.com/shreyajaiswal17/athletehub/internal/telemetry/metrics"
	"github.com/shreyajaiswal17/athletehub/internal/telemetry/tracing"
	"github.com/shreyajaiswal17/athletehub/internal/workload"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=dashboard_test

const (
	DefaultLoadDays = 28
	MaxLoadDays     = 365

	teamOverviewConcurrency = 4
)

var ErrInvalidDays = fmt.Errorf("days must be between 1 and %d", MaxLoadDays)

type athletesRepo interface {
	Get(ctx context.Context, id int) (*athletes.Athlete, error)
	ListAll(ctx context.Context, sport string) ([]athletes.Athlete, error)
}

type recordsRepo interface {
	ListAll(ctx context.Context, params performance.RecordParams) ([]performance.Record, error)
	Latest(ctx context.Context, athleteID int) (*performance.Record, error)
}

type injuriesRepo interface {
	ListForAthlete(ctx context.Context, athleteID int) ([]injuries.Injury, error)
}

type TeamMember struct {
	AthleteID int                `json:"athleteId"`
	Name      string             `json:"name"`
	Sport     string             `json:"sport"`
	Status    workload.Status    `json:"status"`
	RiskLabel workload.RiskLabel `json:"riskLabel"`
	RiskScore float64            `json:"riskScore"`
	Recovery  float64            `json:"recovery"`
	ACWR      float64            `json:"acwr"`
}

type TeamOverview struct {
	Sport        string                  `json:"sport,omitempty"`
	Total        int                     `json:"total"`
	StatusCounts map[workload.Status]int `json:"statusCounts"`
	Athletes     []TeamMember            `json:"athletes"`
}

// Service fetches athlete data and turns it into metrics snapshots.
type Service struct {
	athletes athletesRepo
	records  recordsRepo
	injuries injuriesRepo
	cache    *Cache
	metrics  *metrics.Manager
	nowFunc  func() time.Time
}

func NewService(
	athletesRepo athletesRepo,
	recordsRepo recordsRepo,
	injuriesRepo injuriesRepo,
	cache *Cache,
	metrics *metrics.Manager,
) *Service {
	return &Service{
		athletes: athletesRepo,
		records:  recordsRepo,
		injuries: injuriesRepo,
		cache:    cache,
		metrics:  metrics,
		nowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Snapshot returns the athlete's metrics, from cache when possible.
func (s *Service) Snapshot(ctx context.Context, athleteID int) (*workload.Snapshot, error) {
	if snap, ok := s.cache.Get(athleteID); ok {
		return snap, nil
	}
	_, snap, err := s.compute(ctx, athleteID)
	return snap, err
}

// AthleteSnapshot is like Snapshot, but also returns the athlete itself.
func (s *Service) AthleteSnapshot(ctx context.Context, athleteID int) (*athletes.Athlete, *workload.Snapshot, error) {
	if snap, ok := s.cache.Get(athleteID); ok {
		athlete, err := s.athletes.Get(ctx, athleteID)
		if err != nil {
			return nil, nil, err
		}
		return athlete, snap, nil
	}
	return s.compute(ctx, athleteID)
}

// Athlete returns the athlete without computing any metrics.
func (s *Service) Athlete(ctx context.Context, athleteID int) (*athletes.Athlete, error) {
	return s.athletes.Get(ctx, athleteID)
}

func (s *Service) compute(ctx context.Context, athleteID int) (_ *athletes.Athlete, _ *workload.Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.compute")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athlete_id", athleteID))

	start := time.Now()
	generation := s.cache.Generation(athleteID)
	now := s.nowFunc()
	from := workload.Day(now).AddDate(0, 0, -(workload.FatigueWindowDays - 1))

	var (
		athlete    *athletes.Athlete
		records    []performance.Record
		injuryList []injuries.Injury
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.athletes.Get(gCtx, athleteID)
		if err != nil {
			return fmt.Errorf("get athlete: %w", err)
		}
		athlete = a
		return nil
	})
	g.Go(func() error {
		r, err := s.records.ListAll(gCtx, performance.RecordParams{
			AthleteID: athleteID,
			From:      &from,
		})
		if err != nil {
			return fmt.Errorf("list records: %w", err)
		}
		records = r
		return nil
	})
	g.Go(func() error {
		i, err := s.injuries.ListForAthlete(gCtx, athleteID)
		if err != nil {
			return fmt.Errorf("list injuries: %w", err)
		}
		injuryList = i
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// nothing in the window: the latest record still tells an inactive athlete from one without data
	if len(records) == 0 {
		latest, err := s.records.Latest(ctx, athleteID)
		switch {
		case err == nil:
			records = append(records, *latest)
		case !errors.Is(err, performance.ErrRecordNotFound):
			return nil, nil, fmt.Errorf("latest record: %w", err)
		}
	}

	snap := workload.Compute(workload.Input{
		Athlete:  *athlete,
		Records:  records,
		Injuries: injuryList,
		Now:      now,
	})

	s.metrics.HistSnapshotDuration.Observe(time.Since(start).Seconds())
	s.metrics.CounterStatusComputed.WithLabelValues(snap.Status.String()).Inc()
	span.SetAttributes(attribute.String("status", snap.Status.String()))
	log.Tracef("computed snapshot for athlete %d: %s", athleteID, snap.Status)

	s.cache.Set(&snap, generation)
	return athlete, &snap, nil
}

// LoadSeries returns the daily training load of the last given days, oldest first.
func (s *Service) LoadSeries(ctx context.Context, athleteID, days int) (_ []workload.LoadPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athlete_id", athleteID))
	span.SetAttributes(attribute.Int("days", days))

	if days < 1 || days > MaxLoadDays {
		return nil, ErrInvalidDays
	}

	athlete, err := s.athletes.Get(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("get athlete: %w", err)
	}

	now := s.nowFunc()
	from := workload.Day(now).AddDate(0, 0, -(workload.SeriesHistoryDays(days) - 1))
	records, err := s.records.ListAll(ctx, performance.RecordParams{
		AthleteID: athleteID,
		From:      &from,
	})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return workload.LoadSeries(records, workload.LookupSport(athlete.Sport), now, days), nil
}

// TeamOverview summarises the snapshots of all athletes (of a sport), riskiest first.
func (s *Service) TeamOverview(ctx context.Context, sport string) (_ *TeamOverview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.team")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("sport", sport))

	team, err := s.athletes.ListAll(ctx, sport)
	if err != nil {
		return nil, fmt.Errorf("list athletes: %w", err)
	}

	members := make([]TeamMember, len(team))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(teamOverviewConcurrency)
	for i := range team {
		g.Go(func() error {
			snap, err := s.Snapshot(gCtx, team[i].ID)
			if err != nil {
				return fmt.Errorf("snapshot of athlete %d: %w", team[i].ID, err)
			}
			members[i] = TeamMember{
				AthleteID: team[i].ID,
				Name:      team[i].Name,
				Sport:     team[i].Sport,
				Status:    snap.Status,
				RiskLabel: snap.Risk.Label,
				RiskScore: snap.Risk.Score,
				Recovery:  snap.Recovery,
				ACWR:      snap.Load.ACWR,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(members, func(i, j int) bool {
		if members[i].RiskScore != members[j].RiskScore {
			return members[i].RiskScore > members[j].RiskScore
		}
		return members[i].Name < members[j].Name
	})

	overview := &TeamOverview{
		Sport:        sport,
		Total:        len(members),
		StatusCounts: make(map[workload.Status]int),
		Athletes:     members,
	}
	for _, m := range members {
		overview.StatusCounts[m.Status]++
	}
	return overview, nil
}

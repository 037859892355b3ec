package performance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/shreyajaiswal17/athletehub/internal/telemetry/tracing"
	"github.com/shreyajaiswal17/athletehub/pkg"
)

var ErrRecordNotFound = errors.New("training record not found")

const recordColumns = `id, athlete_id, date, duration_minutes, intensity, avg_heart_rate, max_heart_rate,
				resting_heart_rate, sleep_hours, soreness, distance_km, calories, notes, created_at`

type RecordParams struct {
	AthleteID int
	From      *time.Time
	To        *time.Time
}

type ListParams struct {
	RecordParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, record Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athlete_id", record.AthleteID))

	if err := record.Validate(); err != nil {
		return nil, err
	}

	if record.Date.IsZero() {
		record.Date = time.Now().UTC()
	}
	record.CreatedAt = time.Now().UTC()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO athlete_data
				(athlete_id, date, duration_minutes, intensity, avg_heart_rate, max_heart_rate,
				resting_heart_rate, sleep_hours, soreness, distance_km, calories, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id;`,
		record.AthleteID, record.Date, record.DurationMinutes, record.Intensity,
		record.AvgHeartRate, record.MaxHeartRate, record.RestingHeartRate,
		record.SleepHours, record.Soreness, record.DistanceKm, record.Calories,
		record.Notes, record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}

	return &record, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("record_id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+recordColumns+` FROM athlete_data WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := r.rows2records(rows)
	if err != nil {
		return nil, err
	}

	if len(records) != 1 {
		return nil, ErrRecordNotFound
	}

	return &records[0], nil
}

// Update overwrites the measured values of a record; the owning athlete never changes.
func (r *Repo) Update(ctx context.Context, record *Record) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("record_id", record.ID))

	if err := record.Validate(); err != nil {
		return err
	}
	if record.Date.IsZero() {
		return errors.New("record date empty")
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE athlete_data
			SET date = $1, duration_minutes = $2, intensity = $3, avg_heart_rate = $4,
				max_heart_rate = $5, resting_heart_rate = $6, sleep_hours = $7, soreness = $8,
				distance_km = $9, calories = $10, notes = $11
			WHERE id = $12;`,
		record.Date, record.DurationMinutes, record.Intensity, record.AvgHeartRate,
		record.MaxHeartRate, record.RestingHeartRate, record.SleepHours, record.Soreness,
		record.DistanceKm, record.Calories, record.Notes,
		record.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("record_id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM athlete_data WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// ListAll returns all records of an athlete in the given period, latest first.
func (r *Repo) ListAll(ctx context.Context, params RecordParams) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	setParamsAttributes(span, params)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+recordColumns+`
			FROM athlete_data
				WHERE athlete_id = $1
				AND ($2::timestamptz IS NULL OR date >= $2)
				AND ($3::timestamptz IS NULL OR date <= $3)
			ORDER BY date DESC, id DESC;`,
		params.AthleteID, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	records, err := r.rows2records(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2records: %w", err)
	}
	return records, nil
}

// List is like ListAll, but returns a single page of records.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Record, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))
	setParamsAttributes(span, params.RecordParams)

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	countAll, err := r.Count(ctx, params.RecordParams)
	if err != nil {
		return nil, -1, err
	}

	limit, offset := pkg.PageBounds(countAll, params.Page, params.Size)
	span.SetAttributes(attribute.Int("count_all", countAll))
	span.SetAttributes(attribute.Int("limit", limit))
	span.SetAttributes(attribute.Int("offset", offset))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+recordColumns+`
			FROM athlete_data
				WHERE athlete_id = $1
				AND ($2::timestamptz IS NULL OR date >= $2)
				AND ($3::timestamptz IS NULL OR date <= $3)
			ORDER BY date DESC, id DESC
			LIMIT $4
			OFFSET $5;`,
		params.AthleteID, params.From, params.To,
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	records, err := r.rows2records(rows)
	if err != nil {
		return nil, -1, err
	}
	return records, countAll, nil
}

// Latest returns the most recent record of the athlete.
func (r *Repo) Latest(ctx context.Context, athleteID int) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athlete_id", athleteID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+recordColumns+`
			FROM athlete_data
			WHERE athlete_id = $1
			ORDER BY date DESC, id DESC
			LIMIT 1;`,
		athleteID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := r.rows2records(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrRecordNotFound
	}
	return &records[0], nil
}

func (r *Repo) Count(ctx context.Context, params RecordParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM athlete_data
			WHERE athlete_id = $1
			AND ($2::timestamptz IS NULL OR date >= $2)
			AND ($3::timestamptz IS NULL OR date <= $3);`,
		params.AthleteID, params.From, params.To,
	).Scan(&count); err != nil {
		return -1, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

func (r *Repo) rows2records(rows pgx.Rows) ([]Record, error) {
	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.AthleteID, &rec.Date, &rec.DurationMinutes, &rec.Intensity,
			&rec.AvgHeartRate, &rec.MaxHeartRate, &rec.RestingHeartRate,
			&rec.SleepHours, &rec.Soreness, &rec.DistanceKm, &rec.Calories,
			&rec.Notes, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func setParamsAttributes(span trace.Span, params RecordParams) {
	span.SetAttributes(attribute.Int("athlete_id", params.AthleteID))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}
}

package athletes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/shreyajaiswal17/athletehub/internal/telemetry/tracing"
	"github.com/shreyajaiswal17/athletehub/pkg"
)

var ErrAthleteNotFound = errors.New("athlete not found")

type ListParams struct {
	Sport string
	Page  int
	Size  int
}

type Repo struct {
	db *pgxpool.Pool
	// sportName maps aliases to the stored sport name, on writes and in filters
	sportName func(string) string
}

func NewRepo(db *pgxpool.Pool, sportName func(string) string) *Repo {
	if sportName == nil {
		sportName = strings.TrimSpace
	}
	return &Repo{
		db:        db,
		sportName: sportName,
	}
}

func (r *Repo) Add(ctx context.Context, athlete Athlete) (_ *Athlete, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := athlete.Validate(); err != nil {
		return nil, err
	}
	athlete.Sport = r.sportName(athlete.Sport)

	now := time.Now().UTC()
	if athlete.CreatedAt.IsZero() {
		athlete.CreatedAt = now
	}
	athlete.UpdatedAt = now

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO athlete
				(name, age, gender, sport, position, height_cm, weight_kg, max_heart_rate, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		athlete.Name, athlete.Age, athlete.Gender, athlete.Sport, athlete.Position,
		athlete.HeightCm, athlete.WeightKg, athlete.MaxHeartRate,
		athlete.CreatedAt, athlete.UpdatedAt,
	).Scan(&athlete.ID)
	if err != nil {
		return nil, fmt.Errorf("insert athlete: %w", err)
	}

	return &athlete, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Athlete, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athlete_id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, name, age, gender, sport, position, height_cm, weight_kg, max_heart_rate, created_at, updated_at
			FROM athlete
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	athletes, err := r.rows2athletes(rows)
	if err != nil {
		return nil, err
	}

	if len(athletes) != 1 {
		return nil, ErrAthleteNotFound
	}

	return &athletes[0], nil
}

func (r *Repo) Update(ctx context.Context, athlete *Athlete) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athlete_id", athlete.ID))

	if err := athlete.Validate(); err != nil {
		return err
	}
	athlete.Sport = r.sportName(athlete.Sport)

	athlete.UpdatedAt = time.Now().UTC()
	tag, err := r.db.Exec(
		ctx,
		`UPDATE athlete
			SET name = $1, age = $2, gender = $3, sport = $4, position = $5,
				height_cm = $6, weight_kg = $7, max_heart_rate = $8, updated_at = $9
			WHERE id = $10;`,
		athlete.Name, athlete.Age, athlete.Gender, athlete.Sport, athlete.Position,
		athlete.HeightCm, athlete.WeightKg, athlete.MaxHeartRate, athlete.UpdatedAt,
		athlete.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrAthleteNotFound
	}

	return nil
}

// Delete removes the athlete, together with all training records and injuries.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athlete_id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM athlete WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAthleteNotFound
	}
	return nil
}

// ListAll returns all athletes, optionally only the ones of a given sport.
func (r *Repo) ListAll(ctx context.Context, sport string) (_ []Athlete, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("sport", sport))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, age, gender, sport, position, height_cm, weight_kg, max_heart_rate, created_at, updated_at
			FROM athlete
				WHERE ($1::text = '' OR LOWER(sport) = LOWER($1))
			ORDER BY created_at DESC, id DESC;`,
		r.sportName(sport),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	athletes, err := r.rows2athletes(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2athletes: %w", err)
	}
	return athletes, nil
}

// List is like ListAll, but returns a single page, newest athletes first.
// A page past the end returns the last page.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Athlete, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))
	span.SetAttributes(attribute.String("sport", params.Sport))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	countAll, err := r.Count(ctx, params.Sport)
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
			SELECT
				id, name, age, gender, sport, position, height_cm, weight_kg, max_heart_rate, created_at, updated_at
			FROM athlete
				WHERE ($1::text = '' OR LOWER(sport) = LOWER($1))
			ORDER BY created_at DESC, id DESC
			LIMIT $2
			OFFSET $3;`,
		r.sportName(params.Sport), limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	athletes, err := r.rows2athletes(rows)
	if err != nil {
		return nil, -1, err
	}
	return athletes, countAll, nil
}

func (r *Repo) Count(ctx context.Context, sport string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.athletes.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM athlete WHERE ($1::text = '' OR LOWER(sport) = LOWER($1));`,
		r.sportName(sport),
	).Scan(&count); err != nil {
		return -1, fmt.Errorf("count athletes: %w", err)
	}
	return count, nil
}

func (r *Repo) rows2athletes(rows pgx.Rows) ([]Athlete, error) {
	athletes := make([]Athlete, 0)
	for rows.Next() {
		var a Athlete
		var gender string
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Age, &gender, &a.Sport, &a.Position,
			&a.HeightCm, &a.WeightKg, &a.MaxHeartRate, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.Gender = Gender(gender)
		athletes = append(athletes, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return athletes, nil
}

package injuries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/shreyajaiswal17/athletehub/internal/telemetry/tracing"
)

var (
	ErrInjuryNotFound   = errors.New("injury not found")
	ErrAlreadyRecovered = errors.New("injury already recovered")

	ErrRecoveredBeforeInjured = errors.New("recovery date before injury date")
)

const injuryColumns = `id, athlete_id, body_part, description, severity, injured_at, recovered_at, expected_return`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, injury Injury) (_ *Injury, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athlete_id", injury.AthleteID))

	if injury.InjuredAt.IsZero() {
		injury.InjuredAt = time.Now().UTC()
	}
	if err := injury.Validate(); err != nil {
		return nil, err
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO injury
				(athlete_id, body_part, description, severity, injured_at, recovered_at, expected_return)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		injury.AthleteID, injury.BodyPart, injury.Description, string(injury.Severity),
		injury.InjuredAt, injury.RecoveredAt, injury.ExpectedReturn,
	).Scan(&injury.ID)
	if err != nil {
		return nil, fmt.Errorf("insert injury: %w", err)
	}

	return &injury, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Injury, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("injury_id", id))

	rows, err := r.db.Query(ctx, `SELECT `+injuryColumns+` FROM injury WHERE id = $1;`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	injuries, err := r.rows2injuries(rows)
	if err != nil {
		return nil, err
	}
	if len(injuries) != 1 {
		return nil, ErrInjuryNotFound
	}
	return &injuries[0], nil
}

func (r *Repo) Update(ctx context.Context, injury *Injury) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("injury_id", injury.ID))

	if err := injury.Validate(); err != nil {
		return err
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE injury
			SET body_part = $1, description = $2, severity = $3, injured_at = $4,
				recovered_at = $5, expected_return = $6
			WHERE id = $7;`,
		injury.BodyPart, injury.Description, string(injury.Severity), injury.InjuredAt,
		injury.RecoveredAt, injury.ExpectedReturn,
		injury.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInjuryNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("injury_id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM injury WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInjuryNotFound
	}
	return nil
}

// ListForAthlete returns the whole injury history of an athlete, newest first.
func (r *Repo) ListForAthlete(ctx context.Context, athleteID int) (_ []Injury, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("athlete_id", athleteID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+injuryColumns+`
			FROM injury
			WHERE athlete_id = $1
			ORDER BY injured_at DESC, id DESC;`,
		athleteID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	injuries, err := r.rows2injuries(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2injuries: %w", err)
	}
	return injuries, nil
}

// MarkRecovered closes an active injury.
func (r *Repo) MarkRecovered(ctx context.Context, id int, at time.Time) (_ *Injury, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.injuries.recover")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("injury_id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	rows, err := tx.Query(ctx, `SELECT `+injuryColumns+` FROM injury WHERE id = $1 FOR UPDATE;`, id)
	if err != nil {
		return nil, err
	}
	found, err := r.rows2injuries(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	if len(found) != 1 {
		return nil, ErrInjuryNotFound
	}

	injury := found[0]
	if !injury.Active() {
		return nil, ErrAlreadyRecovered
	}
	if at.Before(injury.InjuredAt) {
		return nil, ErrRecoveredBeforeInjured
	}

	if _, err := tx.Exec(ctx, `UPDATE injury SET recovered_at = $1 WHERE id = $2;`, at, id); err != nil {
		return nil, err
	}

	injury.RecoveredAt = &at
	return &injury, nil
}

func (r *Repo) rows2injuries(rows pgx.Rows) ([]Injury, error) {
	injuries := make([]Injury, 0)
	for rows.Next() {
		var i Injury
		var severity string
		if err := rows.Scan(
			&i.ID, &i.AthleteID, &i.BodyPart, &i.Description, &severity,
			&i.InjuredAt, &i.RecoveredAt, &i.ExpectedReturn,
		); err != nil {
			return nil, err
		}
		i.Severity = Severity(severity)
		injuries = append(injuries, i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return injuries, nil
}

package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutweek/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetMany returns the stored records for the given dates, keyed by date.
// Dates without a record are simply absent from the result; default-filling
// is the caller's job. One query regardless of the number of dates.
func (r *Repo) GetMany(ctx context.Context, dates []string) (_ map[string]Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getmany")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("dates.count", len(dates)))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, completed, message FROM workout WHERE date = ANY($1);`,
		dates,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	workouts := make(map[string]Workout)
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts[w.Date] = *w
	}

	return workouts, nil
}

// Toggle creates the record for date with completed=true, or flips the stored
// completed flag. The message is overwritten unconditionally, empty string
// included. A single upsert statement, so concurrent toggles on the same date
// are serialized by the row lock and no update is ever lost.
func (r *Repo) Toggle(ctx context.Context, date, message string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.toggle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout (date, completed, message)
			VALUES ($1, TRUE, $2)
		ON CONFLICT (date) DO UPDATE
			SET completed = NOT workout.completed,
				message = EXCLUDED.message
		RETURNING id, date, completed, message;`,
		date, message,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSingleWorkout(rows)
}

// SaveMessage creates the record for date with completed=false, or overwrites
// only the message on an existing record, leaving completed untouched.
func (r *Repo) SaveMessage(ctx context.Context, date, message string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.savemessage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout (date, completed, message)
			VALUES ($1, FALSE, $2)
		ON CONFLICT (date) DO UPDATE
			SET message = EXCLUDED.message
		RETURNING id, date, completed, message;`,
		date, message,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSingleWorkout(rows)
}

func scanSingleWorkout(rows pgx.Rows) (*Workout, error) {
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}
	return scanWorkout(rows)
}

func scanWorkout(rows pgx.Rows) (*Workout, error) {
	var id int
	var date string
	var completed bool
	var message *string
	if err := rows.Scan(&id, &date, &completed, &message); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	return &Workout{
		ID:        id,
		Date:      date,
		Completed: completed,
		Message:   message,
	}, nil
}

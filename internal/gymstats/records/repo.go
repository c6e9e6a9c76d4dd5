package records

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"

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

func exerciseCategoryNames() []string {
	names := make([]string, 0, len(ExerciseCategories))
	for _, c := range ExerciseCategories {
		names = append(names, string(c))
	}
	return names
}

// ReplaceExerciseRecords drops all exercise level summaries and events of the user
// and inserts the freshly detected ones, in a single transaction.
func (r *Repo) ReplaceExerciseRecords(
	ctx context.Context,
	userID string,
	summaries []ExerciseRecord,
	events []Event,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.replace_exercise_records")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user", userID),
		attribute.Int("summaries", len(summaries)),
		attribute.Int("events", len(events)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM exercise_record WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete exercise records: %w", err)
	}
	if _, err = tx.Exec(
		ctx,
		`DELETE FROM pr_event WHERE user_id = $1 AND type = ANY($2)`,
		userID, exerciseCategoryNames(),
	); err != nil {
		return fmt.Errorf("delete exercise pr events: %w", err)
	}

	batch := &pgx.Batch{}
	for _, s := range summaries {
		batch.Queue(
			`
				INSERT INTO exercise_record (
					user_id, exercise_template_id, exercise_name,
					max_weight_lb, max_weight_reps, max_weight_date,
					max_set_volume_lb, max_set_volume_date,
					max_session_volume_lb, max_session_volume_date
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			`,
			userID, s.ExerciseTemplateID, s.ExerciseName,
			s.MaxWeightLb, s.MaxWeightReps, s.MaxWeightDate,
			s.MaxSetVolumeLb, s.MaxSetVolumeDate,
			s.MaxSessionVolumeLb, s.MaxSessionVolumeDate,
		)
	}
	for _, e := range events {
		queueInsertEvent(batch, userID, e)
	}

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert exercise records batch: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// queueInsertEvent is shared with the daily aggregates rebuild.
func queueInsertEvent(batch *pgx.Batch, userID string, e Event) {
	var reps *int
	if e.Reps > 0 {
		reps = &e.Reps
	}
	batch.Queue(
		`
			INSERT INTO pr_event (
				user_id, date, workout_id, exercise_template_id, exercise_name,
				type, value, previous_best, delta, reps
			) VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10)
		`,
		userID, e.Date, e.WorkoutID, e.ExerciseTemplateID, e.ExerciseName,
		string(e.Category), e.Value, e.PreviousBest, e.Delta, reps,
	)
}

// QueueInsertEvents adds inserts of the given events to a batch.
func QueueInsertEvents(batch *pgx.Batch, userID string, events []Event) {
	for _, e := range events {
		queueInsertEvent(batch, userID, e)
	}
}

func (r *Repo) ListExerciseRecords(ctx context.Context, userID string) (_ []ExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.list_exercise_records")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				exercise_template_id, exercise_name,
				max_weight_lb, max_weight_reps, max_weight_date,
				max_set_volume_lb, max_set_volume_date,
				max_session_volume_lb, max_session_volume_date
			FROM exercise_record
			WHERE user_id = $1
			ORDER BY exercise_name, exercise_template_id
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise records [query]: %w", err)
	}
	defer rows.Close()

	var res []ExerciseRecord
	for rows.Next() {
		var rec ExerciseRecord
		if err := rows.Scan(
			&rec.ExerciseTemplateID, &rec.ExerciseName,
			&rec.MaxWeightLb, &rec.MaxWeightReps, &rec.MaxWeightDate,
			&rec.MaxSetVolumeLb, &rec.MaxSetVolumeDate,
			&rec.MaxSessionVolumeLb, &rec.MaxSessionVolumeDate,
		); err != nil {
			return nil, fmt.Errorf("exercise records [rows scan]: %w", err)
		}
		res = append(res, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise records [rows error]: %w", err)
	}

	return res, nil
}

const eventColumns = `
	id, date, COALESCE(workout_id, ''), COALESCE(exercise_template_id, ''), COALESCE(exercise_name, ''),
	type, value, previous_best, delta, COALESCE(reps, 0), created_at
`

func scanEvents(rows pgx.Rows) ([]Event, error) {
	defer rows.Close()

	var res []Event
	for rows.Next() {
		var (
			e        Event
			category string
		)
		if err := rows.Scan(
			&e.ID, &e.Date, &e.WorkoutID, &e.ExerciseTemplateID, &e.ExerciseName,
			&category, &e.Value, &e.PreviousBest, &e.Delta, &e.Reps, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("pr events [rows scan]: %w", err)
		}
		e.Category = Category(category)
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pr events [rows error]: %w", err)
	}
	return res, nil
}

// RecentEvents returns the newest events, by date then insertion order.
func (r *Repo) RecentEvents(ctx context.Context, userID string, limit int) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.recent_events")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+eventColumns+`
			FROM pr_event
			WHERE user_id = $1
			ORDER BY date DESC, id DESC
			LIMIT $2
		`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent pr events [query]: %w", err)
	}

	return scanEvents(rows)
}

// EventsBetween returns events with from <= date < to, in insertion order.
func (r *Repo) EventsBetween(ctx context.Context, userID string, from, to time.Time) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.events_between")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+eventColumns+`
			FROM pr_event
			WHERE user_id = $1 AND date >= $2 AND date < $3
			ORDER BY date, id
		`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("pr events between [query]: %w", err)
	}

	return scanEvents(rows)
}

func (r *Repo) AllEvents(ctx context.Context, userID string) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.all_events")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+eventColumns+` FROM pr_event WHERE user_id = $1 ORDER BY date, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("all pr events [query]: %w", err)
	}

	return scanEvents(rows)
}

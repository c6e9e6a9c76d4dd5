package workouts

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Summary is a stored workout without its exercises.
type Summary struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	VolumeLb  int64      `json:"volumeLb"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func (r *Repo) UpsertWorkouts(ctx context.Context, userID string, ws []StoredWorkout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(ws)))

	if len(ws) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, w := range ws {
		raw := w.Raw
		if len(raw) == 0 {
			if raw, err = json.Marshal(w.Workout); err != nil {
				return fmt.Errorf("marshal workout %s: %w", w.Workout.ID, err)
			}
		}
		batch.Queue(
			`
				INSERT INTO workout (id, user_id, title, start_time, end_time, volume_lb, raw_json)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (user_id, id) DO UPDATE SET
					title = excluded.title,
					start_time = excluded.start_time,
					end_time = excluded.end_time,
					volume_lb = excluded.volume_lb,
					raw_json = excluded.raw_json,
					updated_at = now()
			`,
			w.Workout.ID, userID, w.Workout.Title, w.Workout.StartTime.UTC(),
			nullableTime(w.Workout.EndTime), w.VolumeLb, string(raw),
		)
	}

	if err = r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert workouts batch: %w", err)
	}

	return nil
}

// DeleteWorkouts removes the given workouts and reports the distinct years they
// started in (ascending) and how many IDs had no local row.
func (r *Repo) DeleteWorkouts(ctx context.Context, userID string, ids []string) (_ []int, _ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(ids)))

	if len(ids) == 0 {
		return nil, 0, nil
	}

	rows, err := r.db.Query(
		ctx,
		`DELETE FROM workout WHERE user_id = $1 AND id = ANY($2) RETURNING id, start_time`,
		userID, ids,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("delete workouts [query]: %w", err)
	}
	defer rows.Close()

	deleted := 0
	yearsSet := map[int]struct{}{}
	for rows.Next() {
		var (
			id        string
			startTime time.Time
		)
		if err := rows.Scan(&id, &startTime); err != nil {
			return nil, 0, fmt.Errorf("delete workouts [rows scan]: %w", err)
		}
		deleted++
		yearsSet[startTime.UTC().Year()] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("delete workouts [rows error]: %w", err)
	}

	years := make([]int, 0, len(yearsSet))
	for y := range yearsSet {
		years = append(years, y)
	}
	sort.Ints(years)

	return years, uniqueCount(ids) - deleted, nil
}

func uniqueCount(ids []string) int {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}

func scanStored(userID string, rows pgx.Rows) ([]StoredWorkout, error) {
	defer rows.Close()

	var res []StoredWorkout
	for rows.Next() {
		var (
			w   StoredWorkout
			raw []byte
		)
		if err := rows.Scan(&raw, &w.VolumeLb, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("workouts [rows scan]: %w", err)
		}
		decoded, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("decode stored workout: %w", err)
		}
		w.UserID = userID
		w.Workout = decoded
		w.Raw = raw
		res = append(res, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workouts [rows error]: %w", err)
	}

	return res, nil
}

// ListAll returns every stored workout of the user, ascending by start time.
func (r *Repo) ListAll(ctx context.Context, userID string) (_ []StoredWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT raw_json, volume_lb, created_at, updated_at
			FROM workout
			WHERE user_id = $1
			ORDER BY start_time, id
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list workouts [query]: %w", err)
	}

	return scanStored(userID, rows)
}

// ListYear returns the workouts started within the given UTC year, ascending.
func (r *Repo) ListYear(ctx context.Context, userID string, year int) ([]StoredWorkout, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return r.ListBetween(ctx, userID, from, from.AddDate(1, 0, 0))
}

// ListBetween returns the workouts started in [from, to), ascending.
func (r *Repo) ListBetween(ctx context.Context, userID string, from, to time.Time) (_ []StoredWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list_between")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("from", from.Format(time.RFC3339)),
		attribute.String("to", to.Format(time.RFC3339)),
	)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT raw_json, volume_lb, created_at, updated_at
			FROM workout
			WHERE user_id = $1 AND start_time >= $2 AND start_time < $3
			ORDER BY start_time, id
		`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list workouts between [query]: %w", err)
	}

	return scanStored(userID, rows)
}

// Years returns the distinct UTC years having at least one workout.
func (r *Repo) Years(ctx context.Context, userID string) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.years")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT DISTINCT EXTRACT(YEAR FROM start_time AT TIME ZONE 'UTC')::int AS y
			FROM workout
			WHERE user_id = $1
			ORDER BY y
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("workout years [query]: %w", err)
	}

	return pgx.CollectRows(rows, pgx.RowTo[int])
}

func (r *Repo) TopWorkouts(ctx context.Context, userID string, year, limit int) (_ []Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.top")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("year", year), attribute.Int("limit", limit))

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, title, start_time, end_time, volume_lb
			FROM workout
			WHERE user_id = $1 AND start_time >= $2 AND start_time < $3
			ORDER BY volume_lb DESC, start_time
			LIMIT $4
		`,
		userID, from, from.AddDate(1, 0, 0), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top workouts [query]: %w", err)
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Summary, error) {
		var s Summary
		err := row.Scan(&s.ID, &s.Title, &s.StartTime, &s.EndTime, &s.VolumeLb)
		return s, err
	})
}

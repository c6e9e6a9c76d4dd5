package aggregates

import (
	"context"
	"fmt"

	"github.com/2beens/liftstats/internal/gymstats/records"
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

// ReplaceYear swaps the aggregate rows and the daily total volume events of a year
// in one transaction, so readers never see a half rebuilt year.
func (r *Repo) ReplaceYear(
	ctx context.Context,
	userID string,
	year int,
	rows []DailyAggregate,
	dailyEvents []records.Event,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregates.replace_year")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user", userID),
		attribute.Int("year", year),
		attribute.Int("rows", len(rows)),
	)

	from, to := YearBounds(year)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(
		ctx,
		`DELETE FROM daily_aggregate WHERE user_id = $1 AND year = $2`,
		userID, year,
	); err != nil {
		return fmt.Errorf("delete daily aggregates: %w", err)
	}
	if _, err = tx.Exec(
		ctx,
		`DELETE FROM pr_event WHERE user_id = $1 AND type = $2 AND date >= $3 AND date < $4`,
		userID, string(records.Categories.DailyTotalVolume), from, to,
	); err != nil {
		return fmt.Errorf("delete daily volume pr events: %w", err)
	}

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(
			`
				INSERT INTO daily_aggregate (user_id, date, year, volume_lb, workouts_count, prs_count)
				VALUES ($1, $2, $3, $4, $5, $6)
			`,
			userID, row.Date, year, row.VolumeLb, row.WorkoutsCount, row.PRsCount,
		)
	}
	records.QueueInsertEvents(batch, userID, dailyEvents)

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert daily aggregates batch: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func (r *Repo) ListYear(ctx context.Context, userID string, year int) (_ []DailyAggregate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregates.list_year")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT date, year, volume_lb, workouts_count, prs_count
			FROM daily_aggregate
			WHERE user_id = $1 AND year = $2
			ORDER BY date
		`,
		userID, year,
	)
	if err != nil {
		return nil, fmt.Errorf("daily aggregates [query]: %w", err)
	}
	defer rows.Close()

	var res []DailyAggregate
	for rows.Next() {
		var a DailyAggregate
		if err := rows.Scan(&a.Date, &a.Year, &a.VolumeLb, &a.WorkoutsCount, &a.PRsCount); err != nil {
			return nil, fmt.Errorf("daily aggregates [rows scan]: %w", err)
		}
		res = append(res, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("daily aggregates [rows error]: %w", err)
	}

	return res, nil
}

func (r *Repo) ListAll(ctx context.Context, userID string) (_ []DailyAggregate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.aggregates.list_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT date, year, volume_lb, workouts_count, prs_count
			FROM daily_aggregate
			WHERE user_id = $1
			ORDER BY date
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("all daily aggregates [query]: %w", err)
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (DailyAggregate, error) {
		var a DailyAggregate
		err := row.Scan(&a.Date, &a.Year, &a.VolumeLb, &a.WorkoutsCount, &a.PRsCount)
		return a, err
	})
}

package weightlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrEntryNotFound = errors.New("weight log entry not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func duplicateDateErr(err error) error {
	if pkg.IsUniqueViolationError(err) {
		return pkg.NewValidationError("date", "an entry for this date already exists")
	}
	return err
}

func (r *Repo) List(ctx context.Context, userID string) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weightlog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, weight_lb, created_at FROM weight_log WHERE user_id = $1 ORDER BY date`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("weight log [query]: %w", err)
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Entry, error) {
		var e Entry
		err := row.Scan(&e.ID, &e.Date, &e.WeightLb, &e.CreatedAt)
		return e, err
	})
}

func (r *Repo) Add(ctx context.Context, userID string, entry Entry) (_ Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weightlog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO weight_log (user_id, date, weight_lb) VALUES ($1, $2, $3) RETURNING id, created_at`,
		userID, entry.Date, entry.WeightLb,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("add weight log entry: %w", duplicateDateErr(err))
	}

	return entry, nil
}

func (r *Repo) Update(ctx context.Context, userID string, entry Entry) (_ Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weightlog.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`
			UPDATE weight_log SET date = $3, weight_lb = $4
			WHERE user_id = $1 AND id = $2
			RETURNING created_at
		`,
		userID, entry.ID, entry.Date, entry.WeightLb,
	).Scan(&entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, ErrEntryNotFound
		}
		return Entry{}, fmt.Errorf("update weight log entry: %w", duplicateDateErr(err))
	}

	return entry, nil
}

func (r *Repo) Delete(ctx context.Context, userID string, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weightlog.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM weight_log WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete weight log entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	return nil
}

package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrConnectionNotFound = errors.New("connection not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID string) (_ Connection, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.settings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	conn := Connection{UserID: userID}
	var status string
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				api_key, target_weight_lb, selected_year, default_bodyweight_lb,
				last_sync_at, rebuilt_at, status, created_at, updated_at
			FROM hevy_connection
			WHERE user_id = $1
		`,
		userID,
	).Scan(
		&conn.APIKey,
		&conn.TargetWeightLb,
		&conn.SelectedYear,
		&conn.DefaultBodyweightLb,
		&conn.LastSyncAt,
		&conn.RebuiltAt,
		&status,
		&conn.CreatedAt,
		&conn.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Connection{}, ErrConnectionNotFound
		}
		return Connection{}, fmt.Errorf("get connection: %w", err)
	}
	conn.Status = Status(status)

	return conn, nil
}

func (r *Repo) Save(ctx context.Context, conn Connection) (_ Connection, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.settings.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO hevy_connection (
				user_id, api_key, target_weight_lb, selected_year, default_bodyweight_lb, last_sync_at, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (user_id) DO UPDATE SET
				api_key = excluded.api_key,
				target_weight_lb = excluded.target_weight_lb,
				selected_year = excluded.selected_year,
				default_bodyweight_lb = excluded.default_bodyweight_lb,
				last_sync_at = excluded.last_sync_at,
				status = excluded.status,
				updated_at = now()
			RETURNING created_at, updated_at
		`,
		conn.UserID, conn.APIKey, conn.TargetWeightLb, conn.SelectedYear,
		conn.DefaultBodyweightLb, conn.LastSyncAt, string(conn.Status),
	).Scan(&conn.CreatedAt, &conn.UpdatedAt)
	if err != nil {
		return Connection{}, fmt.Errorf("save connection: %w", err)
	}

	return conn, nil
}

// MarkSynced records a successful sync; the timestamp drives the next sync mode.
// A sync always rebuilds derived data, so the rebuild marker moves with it.
func (r *Repo) MarkSynced(ctx context.Context, userID string, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.settings.mark_synced")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE hevy_connection SET last_sync_at = $2, rebuilt_at = $2, status = $3, updated_at = now() WHERE user_id = $1`,
		userID, at.UTC(), string(Statuses.OK),
	)
	if err != nil {
		return fmt.Errorf("mark synced: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrConnectionNotFound
	}

	return nil
}

// MarkRebuilt records a rebuild of the derived data done without a sync.
// A user without a connection row has no dashboard, so no row is fine.
func (r *Repo) MarkRebuilt(ctx context.Context, userID string, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.settings.mark_rebuilt")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err = r.db.Exec(
		ctx,
		`UPDATE hevy_connection SET rebuilt_at = $2 WHERE user_id = $1`,
		userID, at.UTC(),
	); err != nil {
		return fmt.Errorf("mark rebuilt: %w", err)
	}

	return nil
}

// SetStatus only touches the status column, last sync stays as it is.
func (r *Repo) SetStatus(ctx context.Context, userID string, status Status) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.settings.set_status")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("status", string(status)))

	if _, err = r.db.Exec(
		ctx,
		`UPDATE hevy_connection SET status = $2, updated_at = now() WHERE user_id = $1`,
		userID, string(status),
	); err != nil {
		return fmt.Errorf("set status: %w", err)
	}

	return nil
}

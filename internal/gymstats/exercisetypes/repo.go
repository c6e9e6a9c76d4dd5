package exercisetypes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/gymstats/volume"
	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrTemplateNotFound = errors.New("exercise type template not found")

// Template assigns an exercise type to a remote exercise template for one user.
type Template struct {
	ExerciseTemplateID string              `json:"exerciseTemplateId"`
	ExerciseType       volume.ExerciseType `json:"exerciseType"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, userID string) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercisetypes.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT exercise_template_id, exercise_type, updated_at
			FROM exercise_type_template
			WHERE user_id = $1
			ORDER BY exercise_template_id
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise type templates [query]: %w", err)
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Template, error) {
		var (
			t      Template
			exType string
		)
		err := row.Scan(&t.ExerciseTemplateID, &exType, &t.UpdatedAt)
		t.ExerciseType = volume.ExerciseType(exType)
		return t, err
	})
}

// Templates returns the user's template map used for volume computation.
func (r *Repo) Templates(ctx context.Context, userID string) (volume.Templates, error) {
	list, err := r.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	templates := make(volume.Templates, len(list))
	for _, t := range list {
		templates[t.ExerciseTemplateID] = t.ExerciseType
	}
	return templates, nil
}

func (r *Repo) Set(ctx context.Context, userID, templateID string, exType volume.ExerciseType) (_ Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercisetypes.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	t := Template{
		ExerciseTemplateID: templateID,
		ExerciseType:       exType,
	}
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO exercise_type_template (user_id, exercise_template_id, exercise_type)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, exercise_template_id) DO UPDATE SET
				exercise_type = excluded.exercise_type,
				updated_at = now()
			RETURNING updated_at
		`,
		userID, templateID, string(exType),
	).Scan(&t.UpdatedAt)
	if err != nil {
		return Template{}, fmt.Errorf("set exercise type template: %w", err)
	}

	return t, nil
}

func (r *Repo) Delete(ctx context.Context, userID, templateID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercisetypes.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercise_type_template WHERE user_id = $1 AND exercise_template_id = $2`,
		userID, templateID,
	)
	if err != nil {
		return fmt.Errorf("delete exercise type template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

package export

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/gymstats/aggregates"
	"github.com/2beens/liftstats/internal/gymstats/records"
	"github.com/2beens/liftstats/internal/gymstats/weightlog"
	"github.com/2beens/liftstats/internal/gymstats/workouts"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=$GOFILE -destination=snapshot_mocks_test.go -package=export_test

type workoutsRepo interface {
	ListAll(ctx context.Context, userID string) ([]workouts.StoredWorkout, error)
}

type aggregatesRepo interface {
	ListAll(ctx context.Context, userID string) ([]aggregates.DailyAggregate, error)
}

type recordsRepo interface {
	AllEvents(ctx context.Context, userID string) ([]records.Event, error)
	ListExerciseRecords(ctx context.Context, userID string) ([]records.ExerciseRecord, error)
}

type weightLogRepo interface {
	List(ctx context.Context, userID string) ([]weightlog.Entry, error)
}

// Snapshot is everything stored for one user, in a format neutral shape.
type Snapshot struct {
	Username   string    `json:"username" yaml:"username"`
	ExportedAt time.Time `json:"exportedAt" yaml:"exportedAt"`
	Workouts   []Workout `json:"workouts" yaml:"workouts"`
	Days       []Day     `json:"days" yaml:"days"`
	PRs        []PR      `json:"prs" yaml:"prs"`
	Records    []Record  `json:"records" yaml:"records"`
	WeightLog  []Weight  `json:"weightLog" yaml:"weightLog"`
}

type Workout struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Date      string     `json:"date" yaml:"date"`
	StartTime time.Time  `json:"startTime" yaml:"startTime"`
	EndTime   time.Time  `json:"endTime" yaml:"endTime"`
	VolumeLb  int64      `json:"volumeLb" yaml:"volumeLb"`
	Exercises []Exercise `json:"exercises" yaml:"exercises"`
}

type Exercise struct {
	Title      string `json:"title" yaml:"title"`
	TemplateID string `json:"templateId" yaml:"templateId"`
	Sets       []Set  `json:"sets" yaml:"sets"`
}

type Set struct {
	Type     string  `json:"type,omitempty" yaml:"type,omitempty"`
	WeightKg float64 `json:"weightKg" yaml:"weightKg"`
	Reps     int     `json:"reps" yaml:"reps"`
}

type Day struct {
	Date          string `json:"date" yaml:"date"`
	VolumeLb      int64  `json:"volumeLb" yaml:"volumeLb"`
	WorkoutsCount int    `json:"workoutsCount" yaml:"workoutsCount"`
	PRsCount      int    `json:"prsCount" yaml:"prsCount"`
}

type PR struct {
	Date         string  `json:"date" yaml:"date"`
	Exercise     string  `json:"exercise" yaml:"exercise"`
	Category     string  `json:"type" yaml:"type"`
	Value        float64 `json:"value" yaml:"value"`
	PreviousBest float64 `json:"previousBest" yaml:"previousBest"`
	Delta        float64 `json:"delta" yaml:"delta"`
	Reps         int     `json:"reps,omitempty" yaml:"reps,omitempty"`
}

type Record struct {
	Exercise           string  `json:"exercise" yaml:"exercise"`
	MaxWeightLb        float64 `json:"maxWeightLb" yaml:"maxWeightLb"`
	MaxWeightReps      int     `json:"maxWeightReps" yaml:"maxWeightReps"`
	MaxWeightDate      string  `json:"maxWeightDate,omitempty" yaml:"maxWeightDate,omitempty"`
	MaxSetVolumeLb     float64 `json:"maxSetVolumeLb" yaml:"maxSetVolumeLb"`
	MaxSessionVolumeLb float64 `json:"maxSessionVolumeLb" yaml:"maxSessionVolumeLb"`
}

type Weight struct {
	Date     string  `json:"date" yaml:"date"`
	WeightLb float64 `json:"weightLb" yaml:"weightLb"`
}

type Exporter struct {
	workouts   workoutsRepo
	aggregates aggregatesRepo
	records    recordsRepo
	weightLog  weightLogRepo
	now        func() time.Time
}

func NewExporter(
	workoutsRepo workoutsRepo,
	aggregatesRepo aggregatesRepo,
	recordsRepo recordsRepo,
	weightLogRepo weightLogRepo,
) *Exporter {
	return &Exporter{
		workouts:   workoutsRepo,
		aggregates: aggregatesRepo,
		records:    recordsRepo,
		weightLog:  weightLogRepo,
		now:        time.Now,
	}
}

func (e *Exporter) SetClock(now func() time.Time) {
	e.now = now
}

// Collect reads all stored data of a user into a Snapshot.
func (e *Exporter) Collect(ctx context.Context, userID, username string) (_ Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "export.collect")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stored, err := e.workouts.ListAll(ctx, userID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list workouts: %w", err)
	}
	days, err := e.aggregates.ListAll(ctx, userID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list aggregates: %w", err)
	}
	events, err := e.records.AllEvents(ctx, userID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list pr events: %w", err)
	}
	summaries, err := e.records.ListExerciseRecords(ctx, userID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list exercise records: %w", err)
	}
	entries, err := e.weightLog.List(ctx, userID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list weight log: %w", err)
	}

	snap := Snapshot{
		Username:   username,
		ExportedAt: e.now().UTC(),
		Workouts:   make([]Workout, 0, len(stored)),
		Days:       make([]Day, 0, len(days)),
		PRs:        make([]PR, 0, len(events)),
		Records:    make([]Record, 0, len(summaries)),
		WeightLog:  make([]Weight, 0, len(entries)),
	}

	for _, sw := range stored {
		snap.Workouts = append(snap.Workouts, toWorkout(sw))
	}
	for _, d := range days {
		snap.Days = append(snap.Days, Day{
			Date:          d.Date.Format(dateLayout),
			VolumeLb:      d.VolumeLb,
			WorkoutsCount: d.WorkoutsCount,
			PRsCount:      d.PRsCount,
		})
	}
	for _, ev := range events {
		snap.PRs = append(snap.PRs, PR{
			Date:         ev.Date.Format(dateLayout),
			Exercise:     ev.ExerciseName,
			Category:     string(ev.Category),
			Value:        ev.Value,
			PreviousBest: ev.PreviousBest,
			Delta:        ev.Delta,
			Reps:         ev.Reps,
		})
	}
	for _, s := range summaries {
		r := Record{
			Exercise:           s.ExerciseName,
			MaxWeightLb:        s.MaxWeightLb,
			MaxWeightReps:      s.MaxWeightReps,
			MaxSetVolumeLb:     s.MaxSetVolumeLb,
			MaxSessionVolumeLb: s.MaxSessionVolumeLb,
		}
		if s.MaxWeightDate != nil {
			r.MaxWeightDate = s.MaxWeightDate.Format(dateLayout)
		}
		snap.Records = append(snap.Records, r)
	}
	for _, en := range entries {
		snap.WeightLog = append(snap.WeightLog, Weight{
			Date:     en.Date.Format(dateLayout),
			WeightLb: en.WeightLb,
		})
	}

	return snap, nil
}

func toWorkout(sw workouts.StoredWorkout) Workout {
	w := Workout{
		ID:        sw.Workout.ID,
		Title:     sw.Workout.Title,
		Date:      sw.Workout.StartTime.UTC().Format(dateLayout),
		StartTime: sw.Workout.StartTime,
		EndTime:   sw.Workout.EndTime,
		VolumeLb:  sw.VolumeLb,
		Exercises: make([]Exercise, 0, len(sw.Workout.Exercises)),
	}
	for _, ex := range sw.Workout.Exercises {
		e := Exercise{
			Title:      ex.Title,
			TemplateID: ex.ExerciseTemplateID,
			Sets:       make([]Set, 0, len(ex.Sets)),
		}
		for _, s := range ex.Sets {
			e.Sets = append(e.Sets, Set{Type: s.SetType, WeightKg: s.WeightKg, Reps: s.Reps})
		}
		w.Exercises = append(w.Exercises, e)
	}
	return w
}

package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/liftstats/internal/gymstats/dashboard"
	"github.com/2beens/liftstats/internal/gymstats/records"
	"github.com/2beens/liftstats/internal/gymstats/syncer"
	"github.com/2beens/liftstats/internal/gymstats/volume"
	"github.com/2beens/liftstats/internal/gymstats/workouts"
)

var ErrSyncUnavailable = errors.New("sync is not available on this server")

type dashboardReader interface {
	Get(ctx context.Context, userID string, year int) (dashboard.Data, error)
}

type recordsReader interface {
	ListExerciseRecords(ctx context.Context, userID string) ([]records.ExerciseRecord, error)
	RecentEvents(ctx context.Context, userID string, limit int) ([]records.Event, error)
}

type workoutsReader interface {
	TopWorkouts(ctx context.Context, userID string, year, limit int) ([]workouts.Summary, error)
	ListBetween(ctx context.Context, userID string, from, to time.Time) ([]workouts.StoredWorkout, error)
}

type syncRunner interface {
	Sync(ctx context.Context, userID string) (syncer.Result, error)
}

// contextService is what the tool handler needs; implemented by ContextService.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetDashboard(ctx context.Context, userID string, year int) (dashboard.Data, error)
	ListExerciseRecords(ctx context.Context, userID string) ([]records.ExerciseRecord, error)
	RecentRecords(ctx context.Context, userID string, limit int) ([]records.Event, error)
	TopWorkouts(ctx context.Context, userID string, year, limit int) ([]workouts.Summary, error)
	ListWorkouts(ctx context.Context, userID string, from, to time.Time) ([]WorkoutInfo, error)
	Sync(ctx context.Context, userID string) (syncer.Result, error)
}

// WorkoutInfo is a compact view of a stored workout for tool responses.
type WorkoutInfo struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
	VolumeLb  int64          `json:"volumeLb"`
	Exercises []ExerciseInfo `json:"exercises"`
}

type ExerciseInfo struct {
	Title              string  `json:"title"`
	ExerciseTemplateID string  `json:"exerciseTemplateId"`
	Sets               int     `json:"sets"`
	TotalReps          int     `json:"totalReps"`
	MaxWeightLb        float64 `json:"maxWeightLb"`
}

type ContextService struct {
	schema    SchemaRepo
	dashboard dashboardReader
	records   recordsReader
	workouts  workoutsReader
	syncer    syncRunner
}

// NewContextService wires the readers; runner may be nil for a read only server.
func NewContextService(
	schemaRepo SchemaRepo,
	dashboardReader dashboardReader,
	recordsReader recordsReader,
	workoutsReader workoutsReader,
	runner syncRunner,
) *ContextService {
	return &ContextService{
		schema:    schemaRepo,
		dashboard: dashboardReader,
		records:   recordsReader,
		workouts:  workoutsReader,
		syncer:    runner,
	}
}

// GetSchema returns the liftstats tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Liftstats DB Schema\n\nNo liftstats tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}
	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Liftstats DB Schema\n\n")
	b.WriteString("Tables: " + strings.Join(tableOrder, ", ") + " (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) GetDashboard(ctx context.Context, userID string, year int) (dashboard.Data, error) {
	return s.dashboard.Get(ctx, userID, year)
}

func (s *ContextService) ListExerciseRecords(ctx context.Context, userID string) ([]records.ExerciseRecord, error) {
	return s.records.ListExerciseRecords(ctx, userID)
}

func (s *ContextService) RecentRecords(ctx context.Context, userID string, limit int) ([]records.Event, error) {
	return s.records.RecentEvents(ctx, userID, limit)
}

func (s *ContextService) TopWorkouts(ctx context.Context, userID string, year, limit int) ([]workouts.Summary, error) {
	return s.workouts.TopWorkouts(ctx, userID, year, limit)
}

// ListWorkouts returns compact workouts started in [from, to).
func (s *ContextService) ListWorkouts(ctx context.Context, userID string, from, to time.Time) ([]WorkoutInfo, error) {
	stored, err := s.workouts.ListBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	infos := make([]WorkoutInfo, 0, len(stored))
	for _, sw := range stored {
		info := WorkoutInfo{
			ID:        sw.Workout.ID,
			Title:     sw.Workout.Title,
			StartTime: sw.Workout.StartTime,
			EndTime:   sw.Workout.EndTime,
			VolumeLb:  sw.VolumeLb,
			Exercises: make([]ExerciseInfo, 0, len(sw.Workout.Exercises)),
		}
		for _, ex := range sw.Workout.Exercises {
			exInfo := ExerciseInfo{
				Title:              ex.Title,
				ExerciseTemplateID: ex.ExerciseTemplateID,
				Sets:               len(ex.Sets),
			}
			for _, set := range ex.Sets {
				exInfo.TotalReps += set.Reps
				exInfo.MaxWeightLb = max(exInfo.MaxWeightLb, set.WeightKg*volume.KgToLb)
			}
			info.Exercises = append(info.Exercises, exInfo)
		}
		infos = append(infos, info)
	}

	return infos, nil
}

func (s *ContextService) Sync(ctx context.Context, userID string) (syncer.Result, error) {
	if s.syncer == nil {
		return syncer.Result{}, ErrSyncUnavailable
	}
	return s.syncer.Sync(ctx, userID)
}

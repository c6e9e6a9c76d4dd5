package records

import (
	"sort"
	"time"

	"github.com/2beens/liftstats/internal/gymstats/volume"
	"github.com/2beens/liftstats/internal/gymstats/workouts"
)

type Category string

var Categories = struct {
	MaxWeight        Category
	MaxSetVolume     Category
	MaxWorkoutVolume Category
	DailyTotalVolume Category
}{
	MaxWeight:        "exercise_max_weight",
	MaxSetVolume:     "exercise_max_set_volume",
	MaxWorkoutVolume: "exercise_max_workout_volume",
	DailyTotalVolume: "daily_total_volume",
}

// ExerciseCategories are rebuilt together from the full workout history.
var ExerciseCategories = []Category{
	Categories.MaxWeight,
	Categories.MaxSetVolume,
	Categories.MaxWorkoutVolume,
}

// Event marks the moment a tracked best was exceeded.
type Event struct {
	ID                 int64     `json:"id"`
	UserID             string    `json:"-"`
	Date               time.Time `json:"date"`
	WorkoutID          string    `json:"workoutId,omitempty"`
	ExerciseTemplateID string    `json:"exerciseTemplateId,omitempty"`
	ExerciseName       string    `json:"exerciseName,omitempty"`
	Category           Category  `json:"type"`
	Value              float64   `json:"value"`
	PreviousBest       float64   `json:"previousBest"`
	Delta              float64   `json:"delta"`
	Reps               int       `json:"reps,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ExerciseRecord is the current best per category for one exercise.
type ExerciseRecord struct {
	ExerciseTemplateID   string     `json:"exerciseTemplateId"`
	ExerciseName         string     `json:"exerciseName"`
	MaxWeightLb          float64    `json:"maxWeightLb"`
	MaxWeightReps        int        `json:"maxWeightReps"`
	MaxWeightDate        *time.Time `json:"maxWeightDate"`
	MaxSetVolumeLb       float64    `json:"maxSetVolumeLb"`
	MaxSetVolumeDate     *time.Time `json:"maxSetVolumeDate"`
	MaxSessionVolumeLb   float64    `json:"maxSessionVolumeLb"`
	MaxSessionVolumeDate *time.Time `json:"maxSessionVolumeDate"`
}

// BodyweightFunc resolves the bodyweight (lb) to use for a given day.
type BodyweightFunc func(date time.Time) float64

type sessionStats struct {
	identity      string
	name          string
	maxWeight     float64
	maxWeightReps int
	maxSetVolume  float64
	sessionVolume float64
}

// Detect replays the workouts in chronological order and returns one record
// per exercise (in order of first appearance) plus every improvement event.
// Only strictly greater, positive values count as improvements.
func Detect(ws []workouts.Workout, bodyweight BodyweightFunc, templates volume.Templates) ([]ExerciseRecord, []Event) {
	sorted := make([]workouts.Workout, len(ws))
	copy(sorted, ws)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	var (
		order  []string
		bests  = map[string]*ExerciseRecord{}
		events []Event
	)

	for _, w := range sorted {
		date := w.Date()
		bw := bodyweight(date)

		for _, stats := range workoutSessionStats(w, bw, templates) {
			rec, ok := bests[stats.identity]
			if !ok {
				rec = &ExerciseRecord{
					ExerciseTemplateID: stats.identity,
					ExerciseName:       stats.name,
				}
				bests[stats.identity] = rec
				order = append(order, stats.identity)
			}

			newEvent := func(category Category, value, previous float64, reps int) Event {
				return Event{
					Date:               date,
					WorkoutID:          w.ID,
					ExerciseTemplateID: stats.identity,
					ExerciseName:       stats.name,
					Category:           category,
					Value:              value,
					PreviousBest:       previous,
					Delta:              value - previous,
					Reps:               reps,
				}
			}

			if stats.maxWeight > 0 && stats.maxWeight > rec.MaxWeightLb {
				events = append(events, newEvent(Categories.MaxWeight, stats.maxWeight, rec.MaxWeightLb, stats.maxWeightReps))
				rec.MaxWeightLb = stats.maxWeight
				rec.MaxWeightReps = stats.maxWeightReps
				rec.MaxWeightDate = datePtr(date)
			}
			if stats.maxSetVolume > 0 && stats.maxSetVolume > rec.MaxSetVolumeLb {
				events = append(events, newEvent(Categories.MaxSetVolume, stats.maxSetVolume, rec.MaxSetVolumeLb, 0))
				rec.MaxSetVolumeLb = stats.maxSetVolume
				rec.MaxSetVolumeDate = datePtr(date)
			}
			if stats.sessionVolume > 0 && stats.sessionVolume > rec.MaxSessionVolumeLb {
				events = append(events, newEvent(Categories.MaxWorkoutVolume, stats.sessionVolume, rec.MaxSessionVolumeLb, 0))
				rec.MaxSessionVolumeLb = stats.sessionVolume
				rec.MaxSessionVolumeDate = datePtr(date)
			}

			// keep the latest non-empty name of the exercise
			if stats.name != "" {
				rec.ExerciseName = stats.name
			}
		}
	}

	summaries := make([]ExerciseRecord, 0, len(order))
	for _, id := range order {
		summaries = append(summaries, *bests[id])
	}

	return summaries, events
}

// workoutSessionStats merges exercises of the same identity within one workout.
func workoutSessionStats(w workouts.Workout, bodyweightLb float64, templates volume.Templates) []*sessionStats {
	var (
		ordered []*sessionStats
		byID    = map[string]*sessionStats{}
	)
	for _, ex := range w.Exercises {
		identity := ex.Identity()
		if identity == "" {
			continue
		}

		stats, ok := byID[identity]
		if !ok {
			stats = &sessionStats{identity: identity, name: ex.Title}
			byID[identity] = stats
			ordered = append(ordered, stats)
		}

		exType := volume.ResolveExerciseType(ex, templates)
		for _, set := range ex.Sets {
			effective, setVolume := volume.ComputeSetLoad(set, exType, bodyweightLb)
			if effective > stats.maxWeight {
				stats.maxWeight = effective
				stats.maxWeightReps = set.Reps
			}
			if float64(setVolume) > stats.maxSetVolume {
				stats.maxSetVolume = float64(setVolume)
			}
			stats.sessionVolume += float64(setVolume)
		}
	}
	return ordered
}

func datePtr(t time.Time) *time.Time {
	return &t
}

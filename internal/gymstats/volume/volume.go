package volume

import (
	"math"
	"strings"

	"github.com/2beens/liftstats/internal/gymstats/workouts"
)

// KgToLb converts remote kilogram values into the reporting unit.
const KgToLb = 2.20462

type ExerciseType string

var ExerciseTypes = struct {
	Weighted           ExerciseType
	Bodyweight         ExerciseType
	WeightedBodyweight ExerciseType
	AssistedBodyweight ExerciseType
}{
	Weighted:           "weighted",
	Bodyweight:         "bodyweight",
	WeightedBodyweight: "weighted_bodyweight",
	AssistedBodyweight: "assisted_bodyweight",
}

const DefaultExerciseType = ExerciseType("weighted")

// ParseExerciseType accepts both local names and remote exercise type names.
func ParseExerciseType(s string) (ExerciseType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weighted", "weight_reps":
		return ExerciseTypes.Weighted, true
	case "bodyweight", "reps_only":
		return ExerciseTypes.Bodyweight, true
	case "weighted_bodyweight", "bodyweight_reps":
		return ExerciseTypes.WeightedBodyweight, true
	case "assisted_bodyweight", "bodyweight_assisted_reps":
		return ExerciseTypes.AssistedBodyweight, true
	}
	return "", false
}

// Templates maps exercise template IDs to the user chosen type.
type Templates map[string]ExerciseType

type typeSource func(ex workouts.Exercise) (ExerciseType, bool)

// ResolveExerciseType returns the first resolution in order:
// user template map, type recorded on the exercise, DefaultExerciseType.
func ResolveExerciseType(ex workouts.Exercise, templates Templates) ExerciseType {
	sources := []typeSource{
		func(ex workouts.Exercise) (ExerciseType, bool) {
			t, ok := templates[ex.ExerciseTemplateID]
			return t, ok && ex.ExerciseTemplateID != ""
		},
		func(ex workouts.Exercise) (ExerciseType, bool) {
			return ParseExerciseType(ex.ExerciseType)
		},
	}
	for _, source := range sources {
		if t, ok := source(ex); ok {
			return t
		}
	}
	return DefaultExerciseType
}

// ComputeSetLoad returns the effective weight (lb) and the rounded set volume.
func ComputeSetLoad(set workouts.Set, exerciseType ExerciseType, bodyweightLb float64) (float64, int64) {
	if set.Reps <= 0 {
		return 0, 0
	}

	rawLb := set.WeightKg * KgToLb
	if rawLb < 0 || math.IsNaN(rawLb) {
		rawLb = 0
	}

	var effective float64
	switch exerciseType {
	case ExerciseTypes.Bodyweight:
		effective = bodyweightLb
	case ExerciseTypes.WeightedBodyweight:
		effective = bodyweightLb + rawLb
	case ExerciseTypes.AssistedBodyweight:
		effective = math.Max(0, bodyweightLb-rawLb)
	default:
		effective = rawLb
	}

	return effective, int64(math.Round(effective * float64(set.Reps)))
}

// ComputeWorkoutVolume sums set volumes over all exercises of the workout.
func ComputeWorkoutVolume(w workouts.Workout, bodyweightLb float64, templates Templates) int64 {
	var total int64
	for _, ex := range w.Exercises {
		exType := ResolveExerciseType(ex, templates)
		for _, set := range ex.Sets {
			_, setVolume := ComputeSetLoad(set, exType, bodyweightLb)
			total += setVolume
		}
	}
	return total
}

package workouts

import (
	"encoding/json"
	"fmt"
	"time"
)

// Workout mirrors the remote workout payload shape.
type Workout struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Exercises   []Exercise `json:"exercises"`
}

type Exercise struct {
	Index              int    `json:"index"`
	Title              string `json:"title"`
	ExerciseTemplateID string `json:"exercise_template_id"`
	// ExerciseType is the classification recorded on the remote exercise, may be empty.
	ExerciseType string `json:"exercise_type,omitempty"`
	Sets         []Set  `json:"sets"`
}

// Set holds the raw recorded values; null or missing fields decode as zero.
type Set struct {
	Index    int     `json:"index"`
	SetType  string  `json:"type,omitempty"`
	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`
}

// Identity is the key used to group sets of the same exercise across workouts.
func (e Exercise) Identity() string {
	if e.ExerciseTemplateID != "" {
		return e.ExerciseTemplateID
	}
	return e.Title
}

// Date returns the UTC calendar day of the workout start.
func (w Workout) Date() time.Time {
	return DateOf(w.StartTime)
}

func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StoredWorkout is a workout persisted for a user, with its computed volume and raw payload.
type StoredWorkout struct {
	UserID    string
	Workout   Workout
	VolumeLb  int64
	Raw       json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Decode parses a raw remote payload and keeps the raw bytes alongside.
func Decode(raw json.RawMessage) (Workout, error) {
	var w Workout
	if err := json.Unmarshal(raw, &w); err != nil {
		return Workout{}, fmt.Errorf("unmarshal workout: %w", err)
	}
	if w.ID == "" {
		return Workout{}, fmt.Errorf("workout without id")
	}
	return w, nil
}

// Fetched is a workout received from the remote source together with its original payload.
type Fetched struct {
	Workout Workout
	Raw     json.RawMessage
}

package syncer

import "time"

type Mode string

var Modes = struct {
	Full        Mode
	Incremental Mode
}{
	Full:        "full",
	Incremental: "incremental",
}

type Result struct {
	RunID           string    `json:"runId"`
	Mode            Mode      `json:"mode"`
	WorkoutsUpdated int       `json:"workoutsUpdated"`
	WorkoutsDeleted int       `json:"workoutsDeleted"`
	SkippedWorkouts int       `json:"skippedWorkouts"`
	AffectedYears   []int     `json:"affectedYears"`
	PRsDetected     int       `json:"prsDetected"`
	StartedAt       time.Time `json:"startedAt"`
	FinishedAt      time.Time `json:"finishedAt"`
}

type RecomputeResult struct {
	WorkoutsRecomputed int   `json:"workoutsRecomputed"`
	VolumesChanged     int   `json:"volumesChanged"`
	Years              []int `json:"years"`
	PRsDetected        int   `json:"prsDetected"`
}

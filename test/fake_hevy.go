package test

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

type hevySet struct {
	Index    int     `json:"index"`
	Type     string  `json:"type"`
	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`
}

type hevyExercise struct {
	Index              int       `json:"index"`
	Title              string    `json:"title"`
	ExerciseTemplateID string    `json:"exercise_template_id"`
	Sets               []hevySet `json:"sets"`
}

type hevyWorkout struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`
	Exercises []hevyExercise `json:"exercises"`
}

type hevyEvent struct {
	Type      string       `json:"type"`
	ID        string       `json:"id,omitempty"`
	DeletedAt *time.Time   `json:"deleted_at,omitempty"`
	Workout   *hevyWorkout `json:"workout,omitempty"`

	at time.Time
}

// fakeHevy serves the subset of the Hevy API the sync engine talks to.
type fakeHevy struct {
	apiKey string

	mu       sync.Mutex
	workouts map[string]hevyWorkout
	events   []hevyEvent
	requests []string
}

func newFakeHevy(apiKey string) *fakeHevy {
	return &fakeHevy{
		apiKey:   apiKey,
		workouts: make(map[string]hevyWorkout),
	}
}

func (f *fakeHevy) put(w hevyWorkout) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.workouts[w.ID] = w
	f.events = append(f.events, hevyEvent{Type: "updated", Workout: &w, at: time.Now().UTC()})
}

func (f *fakeHevy) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.workouts, id)
	now := time.Now().UTC()
	f.events = append(f.events, hevyEvent{Type: "deleted", ID: id, DeletedAt: &now, at: now})
}

func (f *fakeHevy) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.workouts = make(map[string]hevyWorkout)
	f.events = nil
	f.requests = nil
}

func (f *fakeHevy) requestedPaths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakeHevy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, r.URL.Path)

	if r.Header.Get("api-key") != f.apiKey {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 10
	}

	switch {
	case r.URL.Path == "/workouts":
		ids := make([]string, 0, len(f.workouts))
		for id := range f.workouts {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		all := make([]hevyWorkout, 0, len(ids))
		for _, id := range ids {
			all = append(all, f.workouts[id])
		}
		items, pageCount := paginate(all, page, pageSize)
		writeFakeJSON(w, map[string]any{"page": page, "page_count": pageCount, "workouts": items})
	case r.URL.Path == "/workouts/events":
		since, err := time.Parse(time.RFC3339, r.URL.Query().Get("since"))
		if err != nil {
			http.Error(w, `{"error":"invalid since"}`, http.StatusBadRequest)
			return
		}
		var changed []hevyEvent
		for _, e := range f.events {
			if !e.at.Before(since) {
				changed = append(changed, e)
			}
		}
		items, pageCount := paginate(changed, page, pageSize)
		writeFakeJSON(w, map[string]any{"page": page, "page_count": pageCount, "events": items})
	case strings.HasPrefix(r.URL.Path, "/workouts/"):
		workout, ok := f.workouts[strings.TrimPrefix(r.URL.Path, "/workouts/")]
		if !ok {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		writeFakeJSON(w, workout)
	default:
		http.NotFound(w, r)
	}
}

func paginate[T any](all []T, page, pageSize int) ([]T, int) {
	pageCount := (len(all) + pageSize - 1) / pageSize
	if pageCount == 0 {
		pageCount = 1
	}
	from := (page - 1) * pageSize
	if from >= len(all) {
		return []T{}, pageCount
	}
	to := from + pageSize
	if to > len(all) {
		to = len(all)
	}
	return all[from:to], pageCount
}

func writeFakeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

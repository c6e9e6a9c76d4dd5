package test

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/2beens/liftstats/internal/gymstats/dashboard"
	"github.com/2beens/liftstats/internal/gymstats/records"
	"github.com/2beens/liftstats/internal/gymstats/syncer"
	"github.com/2beens/liftstats/internal/gymstats/volume"
	"github.com/2beens/liftstats/internal/gymstats/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Result  syncer.Result `json:"result"`
}

type settingsResponse struct {
	APIKey         string  `json:"apiKey"`
	HasAPIKey      bool    `json:"hasApiKey"`
	TargetWeightLb float64 `json:"targetWeightLb"`
	SelectedYear   *int    `json:"selectedYear"`
	Status         string  `json:"status"`
}

func setVolume(kg float64, reps int) int64 {
	return int64(math.Round(kg * volume.KgToLb * float64(reps)))
}

func benchWorkout(id string, start time.Time, sets ...hevySet) hevyWorkout {
	for i := range sets {
		sets[i].Index = i
		sets[i].Type = "normal"
	}
	return hevyWorkout{
		ID:        id,
		Title:     "Push " + id,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Exercises: []hevyExercise{
			{
				Index:              0,
				Title:              "Bench Press (Barbell)",
				ExerciseTemplateID: "79D0BB3A",
				Sets:               sets,
			},
		},
	}
}

func (s *IntegrationTestSuite) TestSyncFlow() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.redisDataCleanup(ctx))
	s.hevy.reset()

	token := doLogin(ctx, t, s.httpClient)

	// nothing is connected yet
	status, body := doAuthRequest(ctx, t, s.httpClient, "GET", "/api/dashboard?year=2024", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"setupRequired": true}`, string(body))

	status, _ = doAuthRequest(ctx, t, s.httpClient, "GET", "/api/settings", token, nil)
	assert.Equal(t, http.StatusNotFound, status)

	apiKey := testHevyAPIKey
	goal := 100_000.0
	year := 2024
	status, body = doAuthRequest(ctx, t, s.httpClient, "POST", "/api/settings", token, map[string]any{
		"apiKey":         apiKey,
		"targetWeightLb": goal,
		"selectedYear":   year,
	})
	require.Equal(t, http.StatusOK, status, string(body))

	var settings settingsResponse
	require.NoError(t, json.Unmarshal(body, &settings))
	assert.True(t, settings.HasAPIKey)
	assert.Equal(t, "*********-key", settings.APIKey)
	assert.Equal(t, goal, settings.TargetWeightLb)
	require.NotNil(t, settings.SelectedYear)
	assert.Equal(t, year, *settings.SelectedYear)

	w1 := benchWorkout("w-1", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		hevySet{WeightKg: 100, Reps: 5}, hevySet{WeightKg: 100, Reps: 5})
	w2 := benchWorkout("w-2", time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC),
		hevySet{WeightKg: 105, Reps: 5}, hevySet{WeightKg: 100, Reps: 6})
	w3 := benchWorkout("w-3", time.Date(2024, 4, 2, 18, 0, 0, 0, time.UTC),
		hevySet{WeightKg: 110, Reps: 3})
	s.hevy.put(w1)
	s.hevy.put(w2)
	s.hevy.put(w3)

	w1Volume := 2 * setVolume(100, 5)
	w2Volume := setVolume(105, 5) + setVolume(100, 6)
	w3Volume := setVolume(110, 3)

	t.Run("full sync", func(t *testing.T) {
		status, body := doAuthRequest(ctx, t, s.httpClient, "POST", "/api/settings/refresh", token, nil)
		require.Equal(t, http.StatusOK, status, string(body))

		var syncResp syncResponse
		require.NoError(t, json.Unmarshal(body, &syncResp))
		assert.True(t, syncResp.Success)
		assert.Equal(t, "Synced 3 workouts", syncResp.Message)
		assert.Equal(t, syncer.Modes.Full, syncResp.Result.Mode)
		assert.Equal(t, 3, syncResp.Result.WorkoutsUpdated)
		assert.Equal(t, []int{2024}, syncResp.Result.AffectedYears)

		// page size is 2, so the full listing spans two pages
		assert.Contains(t, s.hevy.requestedPaths(), "/workouts")
	})

	t.Run("dashboard after full sync", func(t *testing.T) {
		status, body := doAuthRequest(ctx, t, s.httpClient, "GET", "/api/dashboard?year=2024", token, nil)
		require.Equal(t, http.StatusOK, status, string(body))

		var data dashboard.Data
		require.NoError(t, json.Unmarshal(body, &data))
		assert.Equal(t, 2024, data.Stats.Year)
		assert.False(t, data.Stats.IsCurrentYear)
		assert.Equal(t, w1Volume+w2Volume+w3Volume, data.Stats.TotalLiftedLb)
		assert.Equal(t, goal, data.Stats.GoalLb)
		assert.Equal(t, 3, data.Stats.SessionsCount)
		assert.Equal(t, 3, data.Stats.DaysLiftedCount)
		assert.NotNil(t, data.Stats.LastSyncAt)
		assert.NotEmpty(t, data.ChartData)
		assert.Len(t, data.HeatmapData, 3)
	})

	t.Run("top workouts", func(t *testing.T) {
		status, body := doAuthRequest(ctx, t, s.httpClient, "GET", "/api/workouts/top?year=2024&limit=2", token, nil)
		require.Equal(t, http.StatusOK, status, string(body))

		var top []workouts.Summary
		require.NoError(t, json.Unmarshal(body, &top))
		require.Len(t, top, 2)
		assert.Equal(t, "w-2", top[0].ID)
		assert.Equal(t, w2Volume, top[0].VolumeLb)
		assert.Equal(t, "w-1", top[1].ID)
	})

	t.Run("exercise records", func(t *testing.T) {
		status, body := doAuthRequest(ctx, t, s.httpClient, "GET", "/api/records", token, nil)
		require.Equal(t, http.StatusOK, status, string(body))

		var recs []records.ExerciseRecord
		require.NoError(t, json.Unmarshal(body, &recs))
		require.Len(t, recs, 1)
		assert.Equal(t, "79D0BB3A", recs[0].ExerciseTemplateID)
		assert.InDelta(t, 110*volume.KgToLb, recs[0].MaxWeightLb, 0.01)
		require.NotNil(t, recs[0].MaxWeightDate)
		assert.Equal(t, "2024-04-02", recs[0].MaxWeightDate.UTC().Format("2006-01-02"))
	})

	t.Run("incremental sync applies deletes", func(t *testing.T) {
		// the event feed is filtered with second precision
		time.Sleep(1100 * time.Millisecond)

		s.hevy.remove("w-2")
		w4 := benchWorkout("w-4", time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC),
			hevySet{WeightKg: 60, Reps: 10})
		s.hevy.put(w4)
		w4Volume := setVolume(60, 10)

		status, body := doAuthRequest(ctx, t, s.httpClient, "POST", "/api/settings/refresh", token, nil)
		require.Equal(t, http.StatusOK, status, string(body))

		var syncResp syncResponse
		require.NoError(t, json.Unmarshal(body, &syncResp))
		assert.True(t, syncResp.Success)
		assert.Equal(t, syncer.Modes.Incremental, syncResp.Result.Mode)
		assert.Equal(t, 1, syncResp.Result.WorkoutsDeleted)
		assert.Contains(t, s.hevy.requestedPaths(), "/workouts/events")

		status, body = doAuthRequest(ctx, t, s.httpClient, "GET", "/api/dashboard?year=2024", token, nil)
		require.Equal(t, http.StatusOK, status, string(body))

		var data dashboard.Data
		require.NoError(t, json.Unmarshal(body, &data))
		assert.Equal(t, w1Volume+w3Volume+w4Volume, data.Stats.TotalLiftedLb)
		assert.Equal(t, 3, data.Stats.SessionsCount)

		status, body = doAuthRequest(ctx, t, s.httpClient, "GET", "/api/workouts/top?year=2024&limit=10", token, nil)
		require.Equal(t, http.StatusOK, status, string(body))
		var top []workouts.Summary
		require.NoError(t, json.Unmarshal(body, &top))
		for _, w := range top {
			assert.NotEqual(t, "w-2", w.ID)
		}
	})

	t.Run("settings report a healthy connection", func(t *testing.T) {
		status, body := doAuthRequest(ctx, t, s.httpClient, "GET", "/api/settings", token, nil)
		require.Equal(t, http.StatusOK, status, string(body))

		var settings settingsResponse
		require.NoError(t, json.Unmarshal(body, &settings))
		assert.Equal(t, "ok", settings.Status)
	})
}

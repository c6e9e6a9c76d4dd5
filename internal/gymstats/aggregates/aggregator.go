package aggregates

import (
	"sort"
	"time"

	"github.com/2beens/liftstats/internal/gymstats/records"
	"github.com/2beens/liftstats/internal/gymstats/workouts"
)

// DailyAggregate is the rollup of one user's workouts on one UTC calendar day.
type DailyAggregate struct {
	Date          time.Time `json:"date"`
	Year          int       `json:"year"`
	VolumeLb      int64     `json:"volumeLb"`
	WorkoutsCount int       `json:"workoutsCount"`
	PRsCount      int       `json:"prsCount"`
}

// YearBounds returns [Jan 1 of year, Jan 1 of year+1) in UTC.
func YearBounds(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}

// Aggregate buckets workouts started within year by UTC date, sorted by date.
func Aggregate(year int, ws []workouts.StoredWorkout) []DailyAggregate {
	byDate := map[time.Time]*DailyAggregate{}
	for _, w := range ws {
		date := w.Workout.Date()
		if date.Year() != year {
			continue
		}
		row, ok := byDate[date]
		if !ok {
			row = &DailyAggregate{Date: date, Year: year}
			byDate[date] = row
		}
		row.VolumeLb += w.VolumeLb
		row.WorkoutsCount++
	}

	rows := make([]DailyAggregate, 0, len(byDate))
	for _, row := range byDate {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})
	return rows
}

// DetectDailyVolumeRecords walks rows in date order and emits an event each time
// a day's total strictly exceeds the best seen so far within the same rows.
func DetectDailyVolumeRecords(rows []DailyAggregate) []records.Event {
	var (
		best   float64
		events []records.Event
	)
	for _, row := range rows {
		value := float64(row.VolumeLb)
		if value <= 0 || value <= best {
			continue
		}
		events = append(events, records.Event{
			Date:         row.Date,
			Category:     records.Categories.DailyTotalVolume,
			Value:        value,
			PreviousBest: best,
			Delta:        value - best,
		})
		best = value
	}
	return events
}

// OverlayPRCounts increments the PR count of each row by the events dated that day.
func OverlayPRCounts(rows []DailyAggregate, events []records.Event) {
	index := make(map[time.Time]int, len(rows))
	for i, row := range rows {
		index[row.Date] = i
	}
	for _, e := range events {
		if i, ok := index[workouts.DateOf(e.Date)]; ok {
			rows[i].PRsCount++
		}
	}
}

// BuildYear computes the aggregate rows and the daily total volume events of a year.
// exerciseEvents may contain events of any category; daily total volume ones are ignored
// since they are recomputed here.
func BuildYear(year int, ws []workouts.StoredWorkout, exerciseEvents []records.Event) ([]DailyAggregate, []records.Event) {
	rows := Aggregate(year, ws)
	dailyEvents := DetectDailyVolumeRecords(rows)

	from, to := YearBounds(year)
	var inYear []records.Event
	for _, e := range exerciseEvents {
		if e.Category == records.Categories.DailyTotalVolume {
			continue
		}
		if e.Date.Before(from) || !e.Date.Before(to) {
			continue
		}
		inYear = append(inYear, e)
	}

	OverlayPRCounts(rows, inYear)
	OverlayPRCounts(rows, dailyEvents)

	return rows, dailyEvents
}

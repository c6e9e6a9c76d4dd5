package dashboard

import (
	"time"

	"github.com/2beens/liftstats/internal/gymstats/aggregates"
)

// DaysPerYear is used for all pacing math, leap years included.
const DaysPerYear = 365

const dateLayout = "2006-01-02"

type Stats struct {
	Year               int        `json:"year"`
	IsCurrentYear      bool       `json:"isCurrentYear"`
	TotalLiftedLb      int64      `json:"totalLiftedLb"`
	GoalLb             float64    `json:"goalLb"`
	PercentageComplete float64    `json:"percentageComplete"`
	DayOfYear          int        `json:"dayOfYear"`
	DaysRemaining      int        `json:"daysRemaining"`
	ExpectedToDateLb   float64    `json:"expectedToDateLb"`
	AheadBehindLb      float64    `json:"aheadBehindLb"`
	RequiredPerDayLb   float64    `json:"requiredPerDayLb"`
	ProjectedYearEndLb float64    `json:"projectedYearEndLb"`
	SessionsCount      int        `json:"sessionsCount"`
	DaysLiftedCount    int        `json:"daysLiftedCount"`
	PRsCount           int        `json:"prsCount"`
	LastSyncAt         *time.Time `json:"lastSyncAt"`
}

type ChartPoint struct {
	Date             string  `json:"date"`
	ActualVolume     int64   `json:"actualVolume"`
	TargetVolume     float64 `json:"targetVolume"`
	CumulativeActual int64   `json:"cumulativeActual"`
	CumulativeTarget float64 `json:"cumulativeTarget"`
	Synthetic        bool    `json:"synthetic,omitempty"`
}

type HeatmapDay struct {
	Date     string `json:"date"`
	VolumeLb int64  `json:"volumeLb"`
	Count    int    `json:"count"`
	PRCount  int    `json:"prCount"`
}

type Projection struct {
	Stats       Stats        `json:"stats"`
	ChartData   []ChartPoint `json:"chartData"`
	HeatmapData []HeatmapDay `json:"heatmapData"`
}

// DayOfYear is the number of whole days elapsed since Jan 1 (UTC) of year.
func DayOfYear(year int, now time.Time) int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return int(now.UTC().Sub(jan1) / (24 * time.Hour))
}

// Project derives pacing stats and chart series for year from its daily rows.
// Rows are expected sorted by date.
func Project(year int, rows []aggregates.DailyAggregate, goalLb float64, now time.Time) Projection {
	stats := Stats{
		Year:          year,
		IsCurrentYear: now.UTC().Year() == year,
		GoalLb:        goalLb,
	}
	for _, row := range rows {
		stats.TotalLiftedLb += row.VolumeLb
		stats.SessionsCount += row.WorkoutsCount
		stats.PRsCount += row.PRsCount
		stats.DaysLiftedCount++
	}

	total := float64(stats.TotalLiftedLb)
	targetPerDay := goalLb / DaysPerYear

	if goalLb > 0 {
		stats.PercentageComplete = total / goalLb * 100
	}

	if stats.IsCurrentYear {
		stats.DayOfYear = DayOfYear(year, now)
		stats.ExpectedToDateLb = targetPerDay * float64(stats.DayOfYear)
		stats.DaysRemaining = max(0, DaysPerYear-stats.DayOfYear)
	} else {
		stats.DayOfYear = DaysPerYear
		stats.ExpectedToDateLb = targetPerDay * DaysPerYear
	}
	stats.AheadBehindLb = total - stats.ExpectedToDateLb

	if stats.DaysRemaining > 0 {
		stats.RequiredPerDayLb = (goalLb - total) / float64(stats.DaysRemaining)
	}

	stats.ProjectedYearEndLb = total
	if stats.IsCurrentYear && stats.DayOfYear > 0 {
		stats.ProjectedYearEndLb = total / float64(stats.DayOfYear) * DaysPerYear
	}

	return Projection{
		Stats:       stats,
		ChartData:   chartSeries(year, rows, targetPerDay, stats, now),
		HeatmapData: heatmap(rows),
	}
}

func chartSeries(year int, rows []aggregates.DailyAggregate, targetPerDay float64, stats Stats, now time.Time) []ChartPoint {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	points := make([]ChartPoint, 0, len(rows)+2)
	points = append(points, ChartPoint{
		Date:         jan1.Format(dateLayout),
		TargetVolume: targetPerDay,
		Synthetic:    true,
	})

	var cumulative int64
	for _, row := range rows {
		cumulative += row.VolumeLb
		dayIndex := DayOfYear(year, row.Date)
		points = append(points, ChartPoint{
			Date:             row.Date.Format(dateLayout),
			ActualVolume:     row.VolumeLb,
			TargetVolume:     targetPerDay,
			CumulativeActual: cumulative,
			CumulativeTarget: targetPerDay * float64(dayIndex+1),
		})
	}

	todayDate := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	if stats.IsCurrentYear {
		n := now.UTC()
		todayDate = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	}
	points = append(points, ChartPoint{
		Date:             todayDate.Format(dateLayout),
		TargetVolume:     targetPerDay,
		CumulativeActual: cumulative,
		CumulativeTarget: stats.ExpectedToDateLb,
		Synthetic:        true,
	})

	return points
}

func heatmap(rows []aggregates.DailyAggregate) []HeatmapDay {
	days := make([]HeatmapDay, 0, len(rows))
	for _, row := range rows {
		days = append(days, HeatmapDay{
			Date:     row.Date.Format(dateLayout),
			VolumeLb: row.VolumeLb,
			Count:    row.WorkoutsCount,
			PRCount:  row.PRsCount,
		})
	}
	return days
}

package weightlog

import (
	"sort"
	"strings"
	"time"

	"github.com/2beens/liftstats/internal/gymstats/volume"
	"github.com/2beens/liftstats/internal/gymstats/workouts"
	"github.com/2beens/liftstats/pkg"
)

const (
	dateLayout  = "2006-01-02"
	maxWeightLb = 1500
)

type Entry struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	WeightLb  float64   `json:"weightLb"`
	CreatedAt time.Time `json:"createdAt"`
}

// EntryInput is the user supplied form of an entry.
type EntryInput struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit"`
}

// ToEntry validates the input and converts the weight to lb.
func (in EntryInput) ToEntry() (Entry, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return Entry{}, pkg.NewValidationError("date", "expected YYYY-MM-DD, got %q", in.Date)
	}

	weightLb := in.Weight
	switch strings.ToLower(strings.TrimSpace(in.Unit)) {
	case "lb", "lbs", "":
	case "kg":
		weightLb = in.Weight * volume.KgToLb
	default:
		return Entry{}, pkg.NewValidationError("unit", "must be kg or lb, got %q", in.Unit)
	}

	if weightLb <= 0 || weightLb > maxWeightLb {
		return Entry{}, pkg.NewValidationError("weight", "must be positive and below %d lb", maxWeightLb)
	}

	return Entry{
		Date:     date,
		WeightLb: weightLb,
	}, nil
}

// Resolver picks the bodyweight logged nearest to a date.
type Resolver struct {
	entries    []Entry
	fallbackLb float64
}

// NewResolver sorts a copy of entries; fallbackLb is used when there are none.
func NewResolver(entries []Entry, fallbackLb float64) *Resolver {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return &Resolver{
		entries:    sorted,
		fallbackLb: fallbackLb,
	}
}

// BodyweightAt returns the entry nearest to date; on equal distance the earlier entry wins.
func (r *Resolver) BodyweightAt(date time.Time) float64 {
	if len(r.entries) == 0 {
		return r.fallbackLb
	}

	day := workouts.DateOf(date)
	i := sort.Search(len(r.entries), func(i int) bool {
		return !r.entries[i].Date.Before(day)
	})

	switch {
	case i == 0:
		return r.entries[0].WeightLb
	case i == len(r.entries):
		return r.entries[len(r.entries)-1].WeightLb
	}

	before, after := r.entries[i-1], r.entries[i]
	if after.Date.Sub(day) < day.Sub(before.Date) {
		return after.WeightLb
	}
	return before.WeightLb
}

package settings

import (
	"strings"
	"time"

	"github.com/2beens/liftstats/pkg"
)

const (
	DefaultTargetWeightLb = 3_000_000
	maxTargetWeightLb     = 1_000_000_000
	maxBodyweightLb       = 1500
	minYear               = 2000
	maxYear               = 2100
)

type Status string

var Statuses = struct {
	OK          Status
	AuthError   Status
	RateLimited Status
	Error       Status
}{
	OK:          "ok",
	AuthError:   "auth_error",
	RateLimited: "rate_limited",
	Error:       "error",
}

// Connection is the per user link to the remote account plus dashboard settings.
// RebuiltAt moves with every rebuild of the derived data, whichever process ran it.
type Connection struct {
	UserID              string     `json:"-"`
	APIKey              string     `json:"-"`
	TargetWeightLb      float64    `json:"targetWeightLb"`
	SelectedYear        *int       `json:"selectedYear"`
	DefaultBodyweightLb *float64   `json:"defaultBodyweightLb"`
	LastSyncAt          *time.Time `json:"lastSyncAt"`
	RebuiltAt           *time.Time `json:"-"`
	Status              Status     `json:"status"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// Configured reports whether a sync can be attempted.
func (c Connection) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// TrackedYear is the selected year, or the current UTC year when unset.
func (c Connection) TrackedYear(now time.Time) int {
	if c.SelectedYear != nil {
		return *c.SelectedYear
	}
	return now.UTC().Year()
}

// BodyweightFallback is the default bodyweight of the user, or fallbackLb when unset.
func (c Connection) BodyweightFallback(fallbackLb float64) float64 {
	if c.DefaultBodyweightLb != nil && *c.DefaultBodyweightLb > 0 {
		return *c.DefaultBodyweightLb
	}
	return fallbackLb
}

// MaskedAPIKey shows only the last four characters of the key.
func (c Connection) MaskedAPIKey() string {
	if len(c.APIKey) <= 4 {
		return strings.Repeat("*", len(c.APIKey))
	}
	return strings.Repeat("*", len(c.APIKey)-4) + c.APIKey[len(c.APIKey)-4:]
}

// Update carries the user supplied settings; nil fields are left untouched.
type Update struct {
	APIKey              *string  `json:"apiKey"`
	TargetWeightLb      *float64 `json:"targetWeightLb"`
	SelectedYear        *int     `json:"selectedYear"`
	DefaultBodyweightLb *float64 `json:"defaultBodyweightLb"`
}

// Apply validates u and merges it into existing (nil when the user has no connection yet).
func (u Update) Apply(userID string, existing *Connection) (Connection, error) {
	conn := Connection{
		UserID:         userID,
		TargetWeightLb: DefaultTargetWeightLb,
		Status:         Statuses.OK,
	}
	if existing != nil {
		conn = *existing
	}

	if u.APIKey != nil {
		key := strings.TrimSpace(*u.APIKey)
		if key == "" {
			return Connection{}, pkg.NewValidationError("apiKey", "must not be empty")
		}
		if key != conn.APIKey {
			// a new key means a new account, start over with a full sync
			conn.LastSyncAt = nil
			conn.Status = Statuses.OK
		}
		conn.APIKey = key
	}
	if !conn.Configured() {
		return Connection{}, pkg.NewValidationError("apiKey", "is required")
	}

	if u.TargetWeightLb != nil {
		if *u.TargetWeightLb <= 0 || *u.TargetWeightLb > maxTargetWeightLb {
			return Connection{}, pkg.NewValidationError("targetWeightLb", "must be between 1 and %d", maxTargetWeightLb)
		}
		conn.TargetWeightLb = *u.TargetWeightLb
	}

	if u.SelectedYear != nil {
		if *u.SelectedYear < minYear || *u.SelectedYear > maxYear {
			return Connection{}, pkg.NewValidationError("selectedYear", "must be between %d and %d", minYear, maxYear)
		}
		year := *u.SelectedYear
		conn.SelectedYear = &year
	}

	if u.DefaultBodyweightLb != nil {
		if *u.DefaultBodyweightLb <= 0 || *u.DefaultBodyweightLb > maxBodyweightLb {
			return Connection{}, pkg.NewValidationError("defaultBodyweightLb", "must be between 1 and %d", maxBodyweightLb)
		}
		bw := *u.DefaultBodyweightLb
		conn.DefaultBodyweightLb = &bw
	}

	return conn, nil
}

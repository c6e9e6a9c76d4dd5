package hevy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/liftstats/internal/gymstats/workouts"
	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

// API docs: https://api.hevyapp.com/docs/

const (
	DefaultBaseURL  = "https://api.hevyapp.com/v1"
	DefaultPageSize = 10

	apiKeyHeader = "api-key"
	maxBodyBytes = 10 << 20

	EndpointWorkouts      = "workouts"
	EndpointWorkoutEvents = "workout_events"
	EndpointWorkout       = "workout"
)

type EventType string

var EventTypes = struct {
	Updated EventType
	Deleted EventType
}{
	Updated: "updated",
	Deleted: "deleted",
}

// Event is one entry of the incremental feed. An updated event may carry only the workout id,
// in which case Workout is nil and the workout has to be fetched separately.
type Event struct {
	Type      EventType
	ID        string
	Workout   *workouts.Fetched
	DeletedAt *time.Time
}

type WorkoutsPage struct {
	Page      int
	PageCount int
	Workouts  []workouts.Fetched
}

type EventsPage struct {
	Page      int
	PageCount int
	Events    []Event
}

type Client struct {
	baseURL        string
	pageSize       int
	httpClient     *http.Client
	metricsManager *metrics.Manager
}

type ClientParams struct {
	BaseURL        string
	PageSize       int
	Timeout        time.Duration
	MetricsManager *metrics.Manager
}

func NewClient(params ClientParams) *Client {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:  baseURL,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		metricsManager: params.MetricsManager,
	}
}

func (c *Client) PageSize() int {
	return c.pageSize
}

type workoutsPageResponse struct {
	Page      int               `json:"page"`
	PageCount int               `json:"page_count"`
	Workouts  []json.RawMessage `json:"workouts"`
}

// ListWorkouts returns one page of the complete workout history, newest first.
func (c *Client) ListWorkouts(ctx context.Context, apiKey string, page int) (_ WorkoutsPage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.client.list_workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page))

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(c.pageSize))

	var resp workoutsPageResponse
	if err = c.get(ctx, apiKey, EndpointWorkouts, "/workouts", query, &resp); err != nil {
		return WorkoutsPage{}, err
	}

	result := WorkoutsPage{
		Page:      resp.Page,
		PageCount: resp.PageCount,
		Workouts:  make([]workouts.Fetched, 0, len(resp.Workouts)),
	}
	for _, raw := range resp.Workouts {
		w, err := workouts.Decode(raw)
		if err != nil {
			return WorkoutsPage{}, fmt.Errorf("page %d: %w", page, err)
		}
		result.Workouts = append(result.Workouts, workouts.Fetched{Workout: w, Raw: raw})
	}

	return result, nil
}

type eventsPageResponse struct {
	Page      int             `json:"page"`
	PageCount int             `json:"page_count"`
	Events    []eventResponse `json:"events"`
}

type eventResponse struct {
	Type      EventType       `json:"type"`
	ID        string          `json:"id"`
	DeletedAt *time.Time      `json:"deleted_at"`
	Workout   json.RawMessage `json:"workout"`
}

// WorkoutEvents returns one page of the changes made to workouts after since.
func (c *Client) WorkoutEvents(ctx context.Context, apiKey string, since time.Time, page int) (_ EventsPage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.client.workout_events")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page))

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(c.pageSize))
	query.Set("since", since.UTC().Format(time.RFC3339))

	var resp eventsPageResponse
	if err = c.get(ctx, apiKey, EndpointWorkoutEvents, "/workouts/events", query, &resp); err != nil {
		return EventsPage{}, err
	}

	result := EventsPage{
		Page:      resp.Page,
		PageCount: resp.PageCount,
		Events:    make([]Event, 0, len(resp.Events)),
	}
	for _, e := range resp.Events {
		event := Event{
			Type:      e.Type,
			ID:        e.ID,
			DeletedAt: e.DeletedAt,
		}
		if e.Type == EventTypes.Updated && hasPayload(e.Workout) {
			w, err := workouts.Decode(e.Workout)
			if err != nil {
				return EventsPage{}, fmt.Errorf("events page %d: %w", page, err)
			}
			event.Workout = &workouts.Fetched{Workout: w, Raw: e.Workout}
			event.ID = w.ID
		}
		if event.ID == "" {
			log.Warnf("hevy: skipping %s event without workout id on page %d", e.Type, page)
			continue
		}
		result.Events = append(result.Events, event)
	}

	return result, nil
}

// GetWorkout fetches a single workout, used for events that carry only an id.
func (c *Client) GetWorkout(ctx context.Context, apiKey, id string) (_ workouts.Fetched, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "hevy.client.get_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	var raw json.RawMessage
	if err = c.get(ctx, apiKey, EndpointWorkout, "/workouts/"+url.PathEscape(id), nil, &raw); err != nil {
		return workouts.Fetched{}, err
	}

	// some API versions wrap the single workout in {"workout": {...}}
	var wrapped struct {
		Workout json.RawMessage `json:"workout"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && hasPayload(wrapped.Workout) {
		raw = wrapped.Workout
	}

	w, err := workouts.Decode(raw)
	if err != nil {
		return workouts.Fetched{}, err
	}

	return workouts.Fetched{Workout: w, Raw: raw}, nil
}

func hasPayload(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed != "" && trimmed != "null"
}

func (c *Client) get(ctx context.Context, apiKey, endpoint, path string, query url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create %s request: %w", endpoint, err)
	}
	req.Header.Set(apiKeyHeader, apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.countRequest(endpoint, "error")
		return fmt.Errorf("%s request: %w", endpoint, err)
	}
	defer resp.Body.Close()
	c.countRequest(endpoint, strconv.Itoa(resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body), 512),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	return nil
}

func (c *Client) countRequest(endpoint, status string) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterRemoteRequests.WithLabelValues(endpoint, status).Inc()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

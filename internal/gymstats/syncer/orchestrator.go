package syncer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/liftstats/internal/gymstats/aggregates"
	"github.com/2beens/liftstats/internal/gymstats/hevy"
	"github.com/2beens/liftstats/internal/gymstats/records"
	"github.com/2beens/liftstats/internal/gymstats/settings"
	"github.com/2beens/liftstats/internal/gymstats/volume"
	"github.com/2beens/liftstats/internal/gymstats/weightlog"
	"github.com/2beens/liftstats/internal/gymstats/workouts"
	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=orchestrator_mocks_test.go -package=syncer_test

var (
	ErrMissingCredential = errors.New("no API key configured")
	ErrSyncInProgress    = errors.New("sync already in progress")
)

type remoteClient interface {
	ListWorkouts(ctx context.Context, apiKey string, page int) (hevy.WorkoutsPage, error)
	WorkoutEvents(ctx context.Context, apiKey string, since time.Time, page int) (hevy.EventsPage, error)
	GetWorkout(ctx context.Context, apiKey, id string) (workouts.Fetched, error)
}

type connectionsRepo interface {
	Get(ctx context.Context, userID string) (settings.Connection, error)
	MarkSynced(ctx context.Context, userID string, at time.Time) error
	MarkRebuilt(ctx context.Context, userID string, at time.Time) error
	SetStatus(ctx context.Context, userID string, status settings.Status) error
}

type workoutsRepo interface {
	UpsertWorkouts(ctx context.Context, userID string, ws []workouts.StoredWorkout) error
	DeleteWorkouts(ctx context.Context, userID string, ids []string) ([]int, int, error)
	ListAll(ctx context.Context, userID string) ([]workouts.StoredWorkout, error)
}

type recordsRepo interface {
	ReplaceExerciseRecords(ctx context.Context, userID string, summaries []records.ExerciseRecord, events []records.Event) error
}

type aggregatesRepo interface {
	ReplaceYear(ctx context.Context, userID string, year int, rows []aggregates.DailyAggregate, dailyEvents []records.Event) error
}

type weightLogRepo interface {
	List(ctx context.Context, userID string) ([]weightlog.Entry, error)
}

type templatesRepo interface {
	Templates(ctx context.Context, userID string) (volume.Templates, error)
}

// Locker guards a user against overlapping sync or recompute runs.
type Locker interface {
	TryLock(ctx context.Context, userID string) (unlock func(), err error)
}

// ChangeListener is told when the derived data of a user was rebuilt.
type ChangeListener interface {
	Invalidate(userID string)
}

type Params struct {
	Remote      remoteClient
	Connections connectionsRepo
	Workouts    workoutsRepo
	Records     recordsRepo
	Aggregates  aggregatesRepo
	WeightLog   weightLogRepo
	Templates   templatesRepo
	Locker      Locker
	Listener    ChangeListener

	MetricsManager *metrics.Manager

	FullPageLimit        int
	IncrementalPageLimit int
	Timeout              time.Duration
	DefaultBodyweightLb  float64
}

type Orchestrator struct {
	remote      remoteClient
	connections connectionsRepo
	workouts    workoutsRepo
	records     recordsRepo
	aggregates  aggregatesRepo
	weightLog   weightLogRepo
	templates   templatesRepo
	locker      Locker
	listener    ChangeListener

	metricsManager *metrics.Manager

	fullPageLimit        int
	incrementalPageLimit int
	timeout              time.Duration
	defaultBodyweightLb  float64

	now   func() time.Time
	newID func() string
}

func NewOrchestrator(params Params) *Orchestrator {
	o := &Orchestrator{
		remote:               params.Remote,
		connections:          params.Connections,
		workouts:             params.Workouts,
		records:              params.Records,
		aggregates:           params.Aggregates,
		weightLog:            params.WeightLog,
		templates:            params.Templates,
		locker:               params.Locker,
		listener:             params.Listener,
		metricsManager:       params.MetricsManager,
		fullPageLimit:        params.FullPageLimit,
		incrementalPageLimit: params.IncrementalPageLimit,
		timeout:              params.Timeout,
		defaultBodyweightLb:  params.DefaultBodyweightLb,
		now:                  time.Now,
		newID:                uuid.NewString,
	}
	if o.fullPageLimit <= 0 {
		o.fullPageLimit = 200
	}
	if o.incrementalPageLimit <= 0 {
		o.incrementalPageLimit = 20
	}
	if o.timeout <= 0 {
		o.timeout = 2 * time.Minute
	}
	if o.defaultBodyweightLb <= 0 {
		o.defaultBodyweightLb = 180
	}
	if o.locker == nil {
		o.locker = NewMemoryLocker()
	}
	return o
}

// SetClock replaces the time source, used by tests and the CLI.
func (o *Orchestrator) SetClock(now func() time.Time) {
	o.now = now
}

// Sync pulls the remote changes of a user and rebuilds the derived data they touch.
// The last sync marker is only moved forward when the whole run succeeded.
func (o *Orchestrator) Sync(ctx context.Context, userID string) (_ Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "syncer.orchestrator.sync")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	conn, err := o.connections.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, settings.ErrConnectionNotFound) {
			return Result{}, ErrMissingCredential
		}
		return Result{}, fmt.Errorf("get connection: %w", err)
	}
	if !conn.Configured() {
		return Result{}, ErrMissingCredential
	}

	unlock, err := o.locker.TryLock(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	defer unlock()

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	result := Result{
		RunID:     o.newID(),
		Mode:      Modes.Full,
		StartedAt: o.now().UTC(),
	}
	if conn.LastSyncAt != nil {
		result.Mode = Modes.Incremental
	}
	span.SetAttributes(
		attribute.String("run.id", result.RunID),
		attribute.String("mode", string(result.Mode)),
	)
	log.Infof("sync [%s] started for user %s, mode: %s", result.RunID, userID, result.Mode)

	defer func() {
		o.observe(result, err)
		if err != nil {
			log.Errorf("sync [%s] for user %s failed: %s", result.RunID, userID, err)
			o.recordFailure(ctx, userID, err)
		}
	}()

	var changes changeSet
	switch result.Mode {
	case Modes.Full:
		changes, err = o.fetchFull(ctx, conn.APIKey)
	default:
		changes, err = o.fetchIncremental(ctx, conn.APIKey, *conn.LastSyncAt)
	}
	if err != nil {
		return result, err
	}
	result.SkippedWorkouts = changes.skipped

	// local state before any write: start years of updated workouts and, after a
	// complete listing, the workouts gone remotely
	var local []workouts.StoredWorkout
	if changes.complete || len(changes.updated) > 0 {
		local, err = o.workouts.ListAll(ctx, userID)
		if err != nil {
			return result, fmt.Errorf("list local workouts: %w", err)
		}
	}
	if changes.complete {
		changes.deleted = append(changes.deleted, staleWorkoutIDs(local, changes.updated)...)
	}

	inputs, err := o.loadInputs(ctx, userID, conn)
	if err != nil {
		return result, err
	}

	affectedYears := map[int]struct{}{}

	if len(changes.deleted) > 0 {
		deletedYears, notFound, err := o.workouts.DeleteWorkouts(ctx, userID, changes.deleted)
		if err != nil {
			return result, fmt.Errorf("delete workouts: %w", err)
		}
		result.WorkoutsDeleted = len(changes.deleted) - notFound
		for _, y := range deletedYears {
			affectedYears[y] = struct{}{}
		}
		if notFound > 0 {
			// no local row tells which year the deleted workout belonged to
			affectedYears[conn.TrackedYear(o.now())] = struct{}{}
		}
	}

	if len(changes.updated) > 0 {
		previousYears := make(map[string]int, len(local))
		for _, sw := range local {
			previousYears[sw.Workout.ID] = sw.Workout.StartTime.UTC().Year()
		}
		stored := make([]workouts.StoredWorkout, 0, len(changes.updated))
		for _, f := range changes.updated {
			stored = append(stored, inputs.store(userID, f))
			affectedYears[f.Workout.StartTime.UTC().Year()] = struct{}{}
			// a workout moved to another year leaves its old day behind
			if y, ok := previousYears[f.Workout.ID]; ok {
				affectedYears[y] = struct{}{}
			}
		}
		if err := o.workouts.UpsertWorkouts(ctx, userID, stored); err != nil {
			return result, fmt.Errorf("upsert workouts: %w", err)
		}
		result.WorkoutsUpdated = len(stored)
	}

	rebuilt, err := o.rebuild(ctx, userID, inputs, affectedYears, false)
	if err != nil {
		return result, err
	}
	result.AffectedYears = rebuilt.years
	result.PRsDetected = rebuilt.prs

	result.FinishedAt = o.now().UTC()
	if err := o.connections.MarkSynced(ctx, userID, result.FinishedAt); err != nil {
		return result, fmt.Errorf("mark synced: %w", err)
	}
	o.notify(userID)

	log.Infof(
		"sync [%s] finished for user %s: updated %d, deleted %d, skipped %d, years %v",
		result.RunID, userID, result.WorkoutsUpdated, result.WorkoutsDeleted, result.SkippedWorkouts, result.AffectedYears,
	)

	return result, nil
}

// Recompute re-derives every stored workout volume from its raw payload with the current
// weight log and exercise type templates, then rebuilds records and every year with workouts.
func (o *Orchestrator) Recompute(ctx context.Context, userID string) (_ RecomputeResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "syncer.orchestrator.recompute")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var conn settings.Connection
	conn, err = o.connections.Get(ctx, userID)
	if err != nil && !errors.Is(err, settings.ErrConnectionNotFound) {
		return RecomputeResult{}, fmt.Errorf("get connection: %w", err)
	}
	err = nil

	unlock, err := o.locker.TryLock(ctx, userID)
	if err != nil {
		return RecomputeResult{}, err
	}
	defer unlock()

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	inputs, err := o.loadInputs(ctx, userID, conn)
	if err != nil {
		return RecomputeResult{}, err
	}

	years := map[int]struct{}{
		conn.TrackedYear(o.now()): {},
	}
	rebuilt, err := o.rebuild(ctx, userID, inputs, years, true)
	if err != nil {
		return RecomputeResult{}, err
	}
	// other processes key their dashboard caches on this marker
	if err := o.connections.MarkRebuilt(ctx, userID, o.now().UTC()); err != nil {
		return RecomputeResult{}, fmt.Errorf("mark rebuilt: %w", err)
	}
	o.notify(userID)

	log.Infof(
		"recompute for user %s: %d workouts, %d volumes changed, years %v",
		userID, rebuilt.workouts, rebuilt.volumesChanged, rebuilt.years,
	)

	return RecomputeResult{
		WorkoutsRecomputed: rebuilt.workouts,
		VolumesChanged:     rebuilt.volumesChanged,
		Years:              rebuilt.years,
		PRsDetected:        rebuilt.prs,
	}, nil
}

// Refresh re-derives the data of a user after a weight log or exercise type change.
func (o *Orchestrator) Refresh(ctx context.Context, userID string) error {
	_, err := o.Recompute(ctx, userID)
	return err
}

type rebuildResult struct {
	years          []int
	workouts       int
	volumesChanged int
	prs            int
}

// rebuild brings stored volumes in line with the current inputs, replays the full local
// history for exercise records, then rebuilds the given years plus every year whose volumes
// changed. With allYears every year holding a workout is rebuilt.
func (o *Orchestrator) rebuild(
	ctx context.Context,
	userID string,
	inputs syncInputs,
	years map[int]struct{},
	allYears bool,
) (_ rebuildResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "syncer.orchestrator.rebuild")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := o.workouts.ListAll(ctx, userID)
	if err != nil {
		return rebuildResult{}, fmt.Errorf("list workouts: %w", err)
	}

	changed := inputs.refreshVolumes(all)
	if len(changed) > 0 {
		if err := o.workouts.UpsertWorkouts(ctx, userID, changed); err != nil {
			return rebuildResult{}, fmt.Errorf("upsert recomputed workouts: %w", err)
		}
		log.Debugf("rebuild for user %s: %d stored volumes were stale", userID, len(changed))
	}
	for _, sw := range changed {
		years[sw.Workout.StartTime.UTC().Year()] = struct{}{}
	}
	if allYears {
		for _, sw := range all {
			years[sw.Workout.StartTime.UTC().Year()] = struct{}{}
		}
	}

	history := make([]workouts.Workout, 0, len(all))
	for _, sw := range all {
		history = append(history, sw.Workout)
	}
	summaries, events := records.Detect(history, inputs.bodyweight, inputs.templates)
	if err := o.records.ReplaceExerciseRecords(ctx, userID, summaries, events); err != nil {
		return rebuildResult{}, fmt.Errorf("replace exercise records: %w", err)
	}

	result := rebuildResult{
		years:          sortedYears(years),
		workouts:       len(all),
		volumesChanged: len(changed),
		prs:            len(events),
	}
	for _, year := range result.years {
		rows, dailyEvents := aggregates.BuildYear(year, all, events)
		if err := o.aggregates.ReplaceYear(ctx, userID, year, rows, dailyEvents); err != nil {
			return rebuildResult{}, fmt.Errorf("replace aggregates of %d: %w", year, err)
		}
		result.prs += len(dailyEvents)
	}

	return result, nil
}

type changeSet struct {
	updated []workouts.Fetched
	deleted []string
	skipped int
	// complete is set when a full sync walked every remote page
	complete bool
}

func (o *Orchestrator) fetchFull(ctx context.Context, apiKey string) (changeSet, error) {
	var changes changeSet
	for page := 1; page <= o.fullPageLimit; page++ {
		resp, err := o.remote.ListWorkouts(ctx, apiKey, page)
		if err != nil {
			return changeSet{}, fmt.Errorf("list workouts page %d: %w", page, err)
		}
		changes.updated = append(changes.updated, resp.Workouts...)
		if page >= resp.PageCount {
			changes.complete = true
			break
		}
	}
	if !changes.complete {
		log.Warnf("full sync stopped at the page limit of %d", o.fullPageLimit)
	}
	changes.updated = dedupe(changes.updated)
	return changes, nil
}

func (o *Orchestrator) fetchIncremental(ctx context.Context, apiKey string, since time.Time) (changeSet, error) {
	var events []hevy.Event
	reachedEnd := false
	for page := 1; page <= o.incrementalPageLimit; page++ {
		resp, err := o.remote.WorkoutEvents(ctx, apiKey, since, page)
		if err != nil {
			return changeSet{}, fmt.Errorf("workout events page %d: %w", page, err)
		}
		events = append(events, resp.Events...)
		if page >= resp.PageCount {
			reachedEnd = true
			break
		}
	}
	if !reachedEnd {
		log.Warnf("incremental sync stopped at the page limit of %d", o.incrementalPageLimit)
	}

	// the latest event of a workout wins
	latest := map[string]hevy.Event{}
	var order []string
	for _, e := range events {
		if _, seen := latest[e.ID]; !seen {
			order = append(order, e.ID)
		}
		latest[e.ID] = e
	}

	var changes changeSet
	for _, id := range order {
		e := latest[id]
		switch e.Type {
		case hevy.EventTypes.Deleted:
			changes.deleted = append(changes.deleted, id)
		case hevy.EventTypes.Updated:
			if e.Workout != nil {
				changes.updated = append(changes.updated, *e.Workout)
				continue
			}
			fetched, err := o.remote.GetWorkout(ctx, apiKey, id)
			if err != nil {
				if ctx.Err() != nil {
					return changeSet{}, fmt.Errorf("get workout %s: %w", id, err)
				}
				log.Warnf("incremental sync: skipping workout %s, fetch failed: %s", id, err)
				changes.skipped++
				continue
			}
			changes.updated = append(changes.updated, fetched)
		default:
			log.Warnf("incremental sync: ignoring event %q for workout %s", e.Type, id)
		}
	}

	return changes, nil
}

// staleWorkoutIDs lists local workouts that a complete full sync did not see remotely.
func staleWorkoutIDs(local []workouts.StoredWorkout, remote []workouts.Fetched) []string {
	seen := make(map[string]struct{}, len(remote))
	for _, f := range remote {
		seen[f.Workout.ID] = struct{}{}
	}
	var stale []string
	for _, sw := range local {
		if _, ok := seen[sw.Workout.ID]; !ok {
			stale = append(stale, sw.Workout.ID)
		}
	}
	return stale
}

type syncInputs struct {
	resolver  *weightlog.Resolver
	templates volume.Templates
}

func (in syncInputs) bodyweight(t time.Time) float64 {
	return in.resolver.BodyweightAt(t)
}

func (in syncInputs) store(userID string, f workouts.Fetched) workouts.StoredWorkout {
	return workouts.StoredWorkout{
		UserID:   userID,
		Workout:  f.Workout,
		VolumeLb: volume.ComputeWorkoutVolume(f.Workout, in.bodyweight(f.Workout.StartTime), in.templates),
		Raw:      f.Raw,
	}
}

// refreshVolumes recomputes every stored volume from the raw payload, updating all in place.
// It returns the workouts whose volume changed.
func (in syncInputs) refreshVolumes(all []workouts.StoredWorkout) []workouts.StoredWorkout {
	var changed []workouts.StoredWorkout
	for i, sw := range all {
		w := sw.Workout
		if len(sw.Raw) > 0 {
			decoded, err := workouts.Decode(sw.Raw)
			if err != nil {
				log.Warnf("keeping stored fields of workout %s: %s", sw.Workout.ID, err)
			} else {
				w = decoded
			}
		}
		vol := volume.ComputeWorkoutVolume(w, in.bodyweight(w.StartTime), in.templates)
		if vol == sw.VolumeLb {
			continue
		}
		all[i].Workout = w
		all[i].VolumeLb = vol
		changed = append(changed, all[i])
	}
	return changed
}

func (o *Orchestrator) loadInputs(ctx context.Context, userID string, conn settings.Connection) (syncInputs, error) {
	entries, err := o.weightLog.List(ctx, userID)
	if err != nil {
		return syncInputs{}, fmt.Errorf("list weight log: %w", err)
	}
	templates, err := o.templates.Templates(ctx, userID)
	if err != nil {
		return syncInputs{}, fmt.Errorf("get exercise type templates: %w", err)
	}
	return syncInputs{
		resolver:  weightlog.NewResolver(entries, conn.BodyweightFallback(o.defaultBodyweightLb)),
		templates: templates,
	}, nil
}

// recordFailure writes the connection status; it never touches the last sync marker.
func (o *Orchestrator) recordFailure(ctx context.Context, userID string, syncErr error) {
	status := settings.Statuses.Error
	if remoteErr, ok := hevy.AsRemoteError(syncErr); ok {
		switch {
		case remoteErr.Unauthorized():
			status = settings.Statuses.AuthError
		case remoteErr.RateLimited():
			status = settings.Statuses.RateLimited
		}
	}
	if err := o.connections.SetStatus(context.WithoutCancel(ctx), userID, status); err != nil {
		log.Errorf("set connection status %s for user %s: %s", status, userID, err)
	}
}

func (o *Orchestrator) observe(result Result, err error) {
	if o.metricsManager == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	o.metricsManager.CounterSyncRuns.WithLabelValues(string(result.Mode), outcome).Inc()
	o.metricsManager.HistSyncDuration.WithLabelValues(string(result.Mode)).Observe(o.now().Sub(result.StartedAt).Seconds())
	if err == nil {
		o.metricsManager.CounterWorkoutsUpdated.Add(float64(result.WorkoutsUpdated))
		o.metricsManager.CounterWorkoutsDeleted.Add(float64(result.WorkoutsDeleted))
	}
	o.metricsManager.CounterBackfillSkipped.Add(float64(result.SkippedWorkouts))
}

func (o *Orchestrator) notify(userID string) {
	if o.listener != nil {
		o.listener.Invalidate(userID)
	}
}

func dedupe(fetched []workouts.Fetched) []workouts.Fetched {
	index := make(map[string]int, len(fetched))
	var out []workouts.Fetched
	for _, f := range fetched {
		if i, ok := index[f.Workout.ID]; ok {
			out[i] = f
			continue
		}
		index[f.Workout.ID] = len(out)
		out = append(out, f)
	}
	return out
}

func sortedYears(set map[int]struct{}) []int {
	years := make([]int, 0, len(set))
	for y := range set {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

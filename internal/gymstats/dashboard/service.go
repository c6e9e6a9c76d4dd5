package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/liftstats/internal/gymstats/aggregates"
	"github.com/2beens/liftstats/internal/gymstats/records"
	"github.com/2beens/liftstats/internal/gymstats/settings"
	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard_test

var ErrSetupRequired = errors.New("setup required")

const DefaultRecentPRsLimit = 10

type connectionsRepo interface {
	Get(ctx context.Context, userID string) (settings.Connection, error)
}

type aggregatesRepo interface {
	ListYear(ctx context.Context, userID string, year int) ([]aggregates.DailyAggregate, error)
}

type recordsRepo interface {
	RecentEvents(ctx context.Context, userID string, limit int) ([]records.Event, error)
}

// Data is the dashboard payload: projection plus the newest records.
type Data struct {
	Projection
	RecentPRs []records.Event `json:"recentPrs"`
}

type ServiceParams struct {
	Connections    connectionsRepo
	Aggregates     aggregatesRepo
	Records        recordsRepo
	MetricsManager *metrics.Manager
	CacheSizeMB    int
	CacheTTL       time.Duration
	RecentPRsLimit int
}

type Service struct {
	connections    connectionsRepo
	aggregates     aggregatesRepo
	records        recordsRepo
	metricsManager *metrics.Manager

	cache          *freecache.Cache
	cacheTTL       time.Duration
	recentPRsLimit int

	generationsMutex sync.Mutex
	generations      map[string]uint64

	now func() time.Time
}

func NewService(params ServiceParams) *Service {
	cacheSizeMB := params.CacheSizeMB
	if cacheSizeMB <= 0 {
		cacheSizeMB = 16
	}
	recentPRsLimit := params.RecentPRsLimit
	if recentPRsLimit <= 0 {
		recentPRsLimit = DefaultRecentPRsLimit
	}
	return &Service{
		connections:    params.Connections,
		aggregates:     params.Aggregates,
		records:        params.Records,
		metricsManager: params.MetricsManager,
		cache:          freecache.NewCache(cacheSizeMB * 1024 * 1024),
		cacheTTL:       params.CacheTTL,
		recentPRsLimit: recentPRsLimit,
		generations:    map[string]uint64{},
		now:            time.Now,
	}
}

func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Invalidate drops every cached dashboard of the user, called after a sync or recompute.
func (s *Service) Invalidate(userID string) {
	s.generationsMutex.Lock()
	defer s.generationsMutex.Unlock()
	s.generations[userID]++
}

func (s *Service) generation(userID string) uint64 {
	s.generationsMutex.Lock()
	defer s.generationsMutex.Unlock()
	return s.generations[userID]
}

// Get builds the dashboard of the user for year; year 0 means the tracked year.
func (s *Service) Get(ctx context.Context, userID string, year int) (_ Data, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.service.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	conn, err := s.connections.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, settings.ErrConnectionNotFound) {
			return Data{}, ErrSetupRequired
		}
		return Data{}, fmt.Errorf("get connection: %w", err)
	}
	if !conn.Configured() {
		return Data{}, ErrSetupRequired
	}

	now := s.now()
	if year == 0 {
		year = conn.TrackedYear(now)
	}
	span.SetAttributes(attribute.Int("year", year))

	cacheKey := s.cacheKey(userID, year, conn, now)
	if data, ok := s.fromCache(cacheKey); ok {
		return data, nil
	}

	rows, err := s.aggregates.ListYear(ctx, userID, year)
	if err != nil {
		return Data{}, fmt.Errorf("list aggregates: %w", err)
	}
	recent, err := s.records.RecentEvents(ctx, userID, s.recentPRsLimit)
	if err != nil {
		return Data{}, fmt.Errorf("recent records: %w", err)
	}
	if recent == nil {
		recent = []records.Event{}
	}

	data := Data{
		Projection: Project(year, rows, conn.TargetWeightLb, now),
		RecentPRs:  recent,
	}
	data.Stats.LastSyncAt = conn.LastSyncAt

	s.toCache(cacheKey, data)

	return data, nil
}

// cacheKey changes with everything the projection depends on, including the current day.
// The rebuild marker covers recomputes done by other processes, the generation the local ones.
func (s *Service) cacheKey(userID string, year int, conn settings.Connection, now time.Time) string {
	return fmt.Sprintf(
		"dashboard::%s::%d::%d::%d::%d::%g::%s",
		userID, s.generation(userID), year, unixNanoOrZero(conn.LastSyncAt), unixNanoOrZero(conn.RebuiltAt),
		conn.TargetWeightLb, now.UTC().Format(dateLayout),
	)
}

func unixNanoOrZero(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixNano()
}

func (s *Service) fromCache(key string) (Data, bool) {
	if s.cacheTTL <= 0 {
		return Data{}, false
	}
	dataBytes, err := s.cache.Get([]byte(key))
	if err != nil {
		return Data{}, false
	}
	var data Data
	if err := json.Unmarshal(dataBytes, &data); err != nil {
		log.Errorf("unmarshal cached dashboard %s: %s", key, err)
		return Data{}, false
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterDashboardCacheHits.Inc()
	}
	return data, true
}

func (s *Service) toCache(key string, data Data) {
	if s.cacheTTL <= 0 {
		return
	}
	dataBytes, err := json.Marshal(data)
	if err != nil {
		log.Errorf("marshal dashboard for cache: %s", err)
		return
	}
	if err := s.cache.Set([]byte(key), dataBytes, int(s.cacheTTL.Seconds())); err != nil {
		log.Debugf("dashboard cache set %s: %s", key, err)
	}
}

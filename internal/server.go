package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/liftstats/internal/auth"
	"github.com/2beens/liftstats/internal/config"
	"github.com/2beens/liftstats/internal/db"
	"github.com/2beens/liftstats/internal/gymstats/aggregates"
	"github.com/2beens/liftstats/internal/gymstats/dashboard"
	"github.com/2beens/liftstats/internal/gymstats/exercisetypes"
	"github.com/2beens/liftstats/internal/gymstats/hevy"
	liftmcp "github.com/2beens/liftstats/internal/gymstats/mcp"
	"github.com/2beens/liftstats/internal/gymstats/records"
	"github.com/2beens/liftstats/internal/gymstats/settings"
	"github.com/2beens/liftstats/internal/gymstats/syncer"
	"github.com/2beens/liftstats/internal/gymstats/weightlog"
	"github.com/2beens/liftstats/internal/gymstats/workouts"
	"github.com/2beens/liftstats/internal/middleware"
	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

const dashboardCacheSizeMB = 16

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter
	checker     auth.Checker
	authService *auth.Service

	dashboardService *dashboard.Service
	orchestrator     *syncer.Orchestrator

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := db.Ping(ctx, dbPool); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(params.VersionInfo, pgxpoolCollector)
	metricsManager := metrics.NewManager("liftstats", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "liftstats-backend", rdb)
	if err != nil {
		return nil, err
	}

	authService := auth.NewService(auth.NewUsersRepo(dbPool), auth.DefaultTTL, rdb)
	go func() {
		ticker := time.NewTicker(8 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	connectionsRepo := settings.NewRepo(dbPool)
	recordsRepo := records.NewRepo(dbPool)
	aggregatesRepo := aggregates.NewRepo(dbPool)

	dashboardService := dashboard.NewService(dashboard.ServiceParams{
		Connections:    connectionsRepo,
		Aggregates:     aggregatesRepo,
		Records:        recordsRepo,
		MetricsManager: metricsManager,
		CacheSizeMB:    dashboardCacheSizeMB,
		CacheTTL:       time.Duration(cfg.DashboardCacheTTLSeconds) * time.Second,
		RecentPRsLimit: cfg.RecentPRsLimit,
	})

	syncTimeout := time.Duration(cfg.SyncTimeoutSeconds) * time.Second
	orchestrator := syncer.NewOrchestrator(syncer.Params{
		Remote: hevy.NewClient(hevy.ClientParams{
			BaseURL:        cfg.HevyApiBaseURL,
			PageSize:       cfg.HevyPageSize,
			MetricsManager: metricsManager,
		}),
		Connections:          connectionsRepo,
		Workouts:             workouts.NewRepo(dbPool),
		Records:              recordsRepo,
		Aggregates:           aggregatesRepo,
		WeightLog:            weightlog.NewRepo(dbPool),
		Templates:            exercisetypes.NewRepo(dbPool),
		Locker:               syncer.NewRedisLocker(rdb, syncer.LockTTL(syncTimeout)),
		Listener:             dashboardService,
		MetricsManager:       metricsManager,
		FullPageLimit:        cfg.FullSyncPageLimit,
		IncrementalPageLimit: cfg.IncrementalSyncPageLimit,
		Timeout:              syncTimeout,
		DefaultBodyweightLb:  cfg.DefaultBodyweightLb,
	})

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),
		authService: authService,
		checker:     auth.NewLoginChecker(auth.DefaultTTL, rdb),

		dashboardService: dashboardService,
		orchestrator:     orchestrator,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
	}).Methods("GET", "OPTIONS").Name("root")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET", "OPTIONS").Name("version")

	authHandler := auth.NewHandler(s.authService)
	r.Handle("/a/login", middleware.RateLimit(
		s.rateLimiter, s.metricsManager, "login", s.config.LoginRateLimitAllowedPerMin,
	)(http.HandlerFunc(authHandler.HandleLogin))).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/a/logout", authHandler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")

	api := r.PathPrefix("/api").Subrouter()

	settingsHandler := settings.NewHandler(settings.NewRepo(s.dbPool))
	api.HandleFunc("/settings", settingsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-settings")
	api.HandleFunc("/settings", settingsHandler.HandleUpdate).Methods("POST", "OPTIONS").Name("update-settings")

	syncHandler := syncer.NewHandler(s.orchestrator)
	syncRateLimit := middleware.RateLimit(s.rateLimiter, s.metricsManager, "sync", s.config.SyncRateLimitAllowedPerMin)
	api.Handle("/settings/refresh", syncRateLimit(http.HandlerFunc(syncHandler.HandleSync))).
		Methods("POST", "OPTIONS").Name("sync")
	api.Handle("/sync/recompute", syncRateLimit(http.HandlerFunc(syncHandler.HandleRecompute))).
		Methods("POST", "OPTIONS").Name("recompute")

	dashboardHandler := dashboard.NewHandler(s.dashboardService)
	api.HandleFunc("/dashboard", dashboardHandler.HandleGet).Methods("GET", "OPTIONS").Name("dashboard")

	recordsRepo := records.NewRepo(s.dbPool)
	recordsHandler := records.NewHandler(recordsRepo)
	api.HandleFunc("/records", recordsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-records")
	api.HandleFunc("/records/recent", recordsHandler.HandleRecent).Methods("GET", "OPTIONS").Name("recent-records")

	workoutsRepo := workouts.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(workoutsRepo)
	api.HandleFunc("/workouts/top", workoutsHandler.HandleTop).Methods("GET", "OPTIONS").Name("top-workouts")

	weightLogHandler := weightlog.NewHandler(weightlog.NewRepo(s.dbPool), s.orchestrator)
	api.HandleFunc("/weight-log", weightLogHandler.HandleList).Methods("GET", "OPTIONS").Name("list-weight-log")
	api.HandleFunc("/weight-log", weightLogHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-weight-log")
	api.HandleFunc("/weight-log/{id}", weightLogHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-weight-log")
	api.HandleFunc("/weight-log/{id}", weightLogHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-weight-log")

	exTypesHandler := exercisetypes.NewHandler(exercisetypes.NewRepo(s.dbPool), s.orchestrator)
	api.HandleFunc("/exercise-types", exTypesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercise-types")
	api.HandleFunc("/exercise-types/{templateId}", exTypesHandler.HandleSet).Methods("PUT", "OPTIONS").Name("set-exercise-type")
	api.HandleFunc("/exercise-types/{templateId}", exTypesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise-type")

	mcpService := liftmcp.NewContextService(
		liftmcp.NewPoolSchemaRepo(s.dbPool),
		s.dashboardService,
		recordsRepo,
		workoutsRepo,
		s.orchestrator,
	)
	mcpHandler := mcp.NewStreamableHTTPHandler(func(req *http.Request) *mcp.Server {
		userID, ok := auth.UserIDFromContext(req.Context())
		if !ok {
			return nil
		}
		return liftmcp.NewServer(mcpService, userID)
	}, &mcp.StreamableHTTPOptions{Stateless: true})
	r.Handle("/mcp", mcpHandler).Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteJSONError(w, "not found", http.StatusNotFound)
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.checker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsAllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:     router,
		Addr:        ipAndPort,
		ReadTimeout: time.Minute,
		// a full sync may run for the configured sync timeout
		WriteTimeout: time.Duration(s.config.SyncTimeoutSeconds+30) * time.Second,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}

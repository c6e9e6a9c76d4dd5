// Package main runs the liftstats MCP server over stdio for one user.
// The backend mounts the same tools at /mcp over HTTP for the logged in user.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/liftstats/internal/auth"
	"github.com/2beens/liftstats/internal/config"
	"github.com/2beens/liftstats/internal/db"
	"github.com/2beens/liftstats/internal/logging"
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

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	username := flag.String("user", "", "liftstats username whose data is exposed")
	readOnly := flag.Bool("read-only", false, "serve stored data only; sync_workouts returns an error")
	flag.Parse()

	if *username == "" {
		log.Fatal("-user is required")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	// stdout is the MCP transport
	logging.SetupCLI(cfg.LogLevel, os.Stderr)

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	user, err := auth.NewUsersRepo(dbPool).GetUserByUsername(ctx, *username)
	if err != nil {
		log.Fatalf("get user %s: %v", *username, err)
	}

	connectionsRepo := settings.NewRepo(dbPool)
	workoutsRepo := workouts.NewRepo(dbPool)
	recordsRepo := records.NewRepo(dbPool)
	aggregatesRepo := aggregates.NewRepo(dbPool)

	dashboardService := dashboard.NewService(dashboard.ServiceParams{
		Connections:    connectionsRepo,
		Aggregates:     aggregatesRepo,
		Records:        recordsRepo,
		RecentPRsLimit: cfg.RecentPRsLimit,
	})

	var runner *syncer.Orchestrator
	if !*readOnly {
		runner = syncer.NewOrchestrator(syncer.Params{
			Remote: hevy.NewClient(hevy.ClientParams{
				BaseURL:  cfg.HevyApiBaseURL,
				PageSize: cfg.HevyPageSize,
			}),
			Connections:          connectionsRepo,
			Workouts:             workoutsRepo,
			Records:              recordsRepo,
			Aggregates:           aggregatesRepo,
			WeightLog:            weightlog.NewRepo(dbPool),
			Templates:            exercisetypes.NewRepo(dbPool),
			Listener:             dashboardService,
			FullPageLimit:        cfg.FullSyncPageLimit,
			IncrementalPageLimit: cfg.IncrementalSyncPageLimit,
			Timeout:              time.Duration(cfg.SyncTimeoutSeconds) * time.Second,
			DefaultBodyweightLb:  cfg.DefaultBodyweightLb,
		})
	}

	service := liftmcp.NewContextService(
		liftmcp.NewPoolSchemaRepo(dbPool),
		dashboardService,
		recordsRepo,
		workoutsRepo,
		syncRunnerOrNil(runner),
	)
	server := liftmcp.NewServer(service, user.ID)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}

// syncRunnerOrNil keeps a nil orchestrator from turning into a non-nil interface.
func syncRunnerOrNil(o *syncer.Orchestrator) interface {
	Sync(ctx context.Context, userID string) (syncer.Result, error)
} {
	if o == nil {
		return nil
	}
	return o
}

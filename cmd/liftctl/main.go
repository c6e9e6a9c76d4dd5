// Command liftctl runs admin tasks against the liftstats database.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/2beens/liftstats/internal/auth"
	"github.com/2beens/liftstats/internal/config"
	"github.com/2beens/liftstats/internal/db"
	"github.com/2beens/liftstats/internal/gymstats/aggregates"
	"github.com/2beens/liftstats/internal/gymstats/exercisetypes"
	"github.com/2beens/liftstats/internal/gymstats/hevy"
	"github.com/2beens/liftstats/internal/gymstats/records"
	"github.com/2beens/liftstats/internal/gymstats/settings"
	"github.com/2beens/liftstats/internal/gymstats/syncer"
	"github.com/2beens/liftstats/internal/gymstats/weightlog"
	"github.com/2beens/liftstats/internal/gymstats/workouts"
	"github.com/2beens/liftstats/internal/logging"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagEnv        string
	flagConfigPath string

	cfg    *config.Config
	dbPool *pgxpool.Pool
)

var rootCmd = &cobra.Command{
	Use:           "liftctl",
	Short:         "liftstats admin CLI",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(flagEnv, flagConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logging.SetupCLI(cfg.LogLevel, os.Stderr)

		dbPool, err = db.NewDBPool(cmd.Context(), db.NewDBPoolParams{
			DBHost:   cfg.PostgresHost,
			DBPort:   cfg.PostgresPort,
			DBName:   cfg.PostgresDBName,
			MaxConns: 4,
		})
		if err != nil {
			return fmt.Errorf("db pool: %w", err)
		}
		return db.Ping(cmd.Context(), dbPool)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if dbPool != nil {
			dbPool.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "./config.toml", "path to TOML config file")

	rootCmd.AddCommand(migrateCmd, userCmd, syncCmd, recomputeCmd, exportCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func lookupUser(ctx context.Context, username string) (auth.User, error) {
	user, err := auth.NewUsersRepo(dbPool).GetUserByUsername(ctx, username)
	if err != nil {
		return auth.User{}, fmt.Errorf("get user %s: %w", username, err)
	}
	return user, nil
}

// newOrchestrator shares the backend's redis sync lock when redis is reachable.
func newOrchestrator(ctx context.Context) (*syncer.Orchestrator, func()) {
	var locker syncer.Locker = syncer.NewMemoryLocker()
	cleanup := func() {}
	syncTimeout := time.Duration(cfg.SyncTimeoutSeconds) * time.Second

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("LIFTSTATS_REDIS_PASS"),
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warnf("redis not reachable, sync lock is process local: %s", err)
		_ = rdb.Close()
	} else {
		locker = syncer.NewRedisLocker(rdb, syncer.LockTTL(syncTimeout))
		cleanup = func() { _ = rdb.Close() }
	}

	o := syncer.NewOrchestrator(syncer.Params{
		Remote: hevy.NewClient(hevy.ClientParams{
			BaseURL:  cfg.HevyApiBaseURL,
			PageSize: cfg.HevyPageSize,
		}),
		Connections:          settings.NewRepo(dbPool),
		Workouts:             workouts.NewRepo(dbPool),
		Records:              records.NewRepo(dbPool),
		Aggregates:           aggregates.NewRepo(dbPool),
		WeightLog:            weightlog.NewRepo(dbPool),
		Templates:            exercisetypes.NewRepo(dbPool),
		Locker:               locker,
		FullPageLimit:        cfg.FullSyncPageLimit,
		IncrementalPageLimit: cfg.IncrementalSyncPageLimit,
		Timeout:              syncTimeout,
		DefaultBodyweightLb:  cfg.DefaultBodyweightLb,
	})
	return o, cleanup
}

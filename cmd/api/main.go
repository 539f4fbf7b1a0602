package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-dashboard-api/infrastructure/integrator/recordfeed"
	"github.com/vfg2006/seller-dashboard-api/infrastructure/recordfile"
	"github.com/vfg2006/seller-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/seller-dashboard-api/internal/analytics"
	"github.com/vfg2006/seller-dashboard-api/internal/api"
	"github.com/vfg2006/seller-dashboard-api/internal/config"
	"github.com/vfg2006/seller-dashboard-api/internal/scheduler"
	"github.com/vfg2006/seller-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/seller-dashboard-api/internal/usecases/insighting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore := recordStore(ctx, cfg)
	defer closeStore()

	dashboardService := dashboarding.NewService(store, returnsEstimator(cfg.Returns), cfg.RecordStore)
	insightService := insighting.NewService(cfg.Insight)

	snapshotSyncService := scheduler.NewSnapshotSyncService(dashboardService, cfg)
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start snapshot sync scheduler")
	} else {
		logrus.Info("snapshot sync scheduler started")
	}

	// warm the snapshot cache before the first request
	snapshotSyncService.TriggerManualSync()

	server, err := api.New(cfg, dashboardService, insightService, snapshotSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// recordStore builds the driver selected by RECORD_STORE_DRIVER. The returned
// func releases whatever the driver holds open.
func recordStore(ctx context.Context, cfg *config.Config) (dashboarding.RecordStore, func()) {
	logger := logrus.WithField("driver", cfg.RecordStore.Driver)

	switch cfg.RecordStore.Driver {
	case config.DriverPostgres:
		conn := pgconn(ctx, cfg.Database)
		logger.Info("record store: reading from postgres")
		return repository.NewRecordRepository(conn), func() { _ = conn.Close() }

	case config.DriverHTTP:
		logger.WithField("feed_url", cfg.RecordStore.FeedURL).Info("record store: reading from http feed")
		return recordfeed.NewClient(cfg.RecordStore), func() {}

	default:
		logger.WithField("path", cfg.RecordStore.FilePath).Info("record store: reading from json file")
		return recordfile.NewStore(cfg.RecordStore.FilePath), func() {}
	}
}

func returnsEstimator(cfg config.Returns) analytics.ReturnsEstimator {
	if cfg.Estimator != config.EstimatorRandom {
		return analytics.FixedRateEstimator{Rate: cfg.FixedRate}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return analytics.NewRandomRateEstimator(rand.New(rand.NewSource(seed)), cfg.MinRate, cfg.MaxRate)
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to postgres")
	}

	logrus.Info("postgres connection established")
	return conn
}

// Package scheduler runs background jobs that keep the dashboard snapshot fresh.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-dashboard-api/internal/config"
	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

var ErrSyncInProgress = errors.New("snapshot sync already running")

// SnapshotRefresher reloads the record snapshot.
type SnapshotRefresher interface {
	Refresh(ctx context.Context) (domain.SnapshotMeta, error)
}

// Syncer is what the HTTP layer needs from a sync job.
type Syncer interface {
	RunSync(ctx context.Context) (domain.SnapshotMeta, error)
	GetStatus() map[string]any
}

type SnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	// Timeout bounds each scheduled refresh.
	Timeout time.Duration
}

type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	refresher           SnapshotRefresher
	config              SnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDegraded        []string
	lastError           string
}

func NewSnapshotSyncService(refresher SnapshotRefresher, cfg *config.Config) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: cfg.SnapshotSync.CronSchedule,
		SyncEnabled:  cfg.SnapshotSync.Enabled,
		Timeout:      cfg.RecordStore.FetchTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.SyncEnabled,
	}).Info("scheduler: snapshot sync configuration loaded")

	return &SnapshotSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		refresher: refresher,
		config:    syncConfig,
	}
}

func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: snapshot sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting snapshot sync")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		syncCtx, cancel := s.syncContext(ctx)
		defer cancel()

		if _, err := s.RunSync(syncCtx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("scheduler: scheduled snapshot sync failed")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule snapshot sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping snapshot sync")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSync refreshes the snapshot now. Overlapping calls get ErrSyncInProgress.
func (s *SnapshotSyncService) RunSync(ctx context.Context) (domain.SnapshotMeta, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return domain.SnapshotMeta{}, ErrSyncInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	meta, err := s.refresher.Refresh(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastDegraded = meta.Degraded
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
		return domain.SnapshotMeta{}, err
	}

	if meta.IsDegraded() {
		logrus.WithField("degraded", meta.Degraded).Warn("scheduler: snapshot sync finished degraded")
	} else {
		logrus.Info("scheduler: snapshot sync finished")
	}

	return meta, nil
}

// TriggerManualSync runs a sync in the background unless one is already running.
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("scheduler: snapshot sync already running, ignoring manual trigger")
		return
	}

	go func() {
		ctx, cancel := s.syncContext(context.Background())
		defer cancel()

		if _, err := s.RunSync(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("scheduler: manual snapshot sync failed")
		}
	}()
}

func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_degraded":     s.lastDegraded,
		"last_sync_error":        s.lastError,
	}
}

func (s *SnapshotSyncService) syncContext(parent context.Context) (context.Context, context.CancelFunc) {
	if s.config.Timeout > 0 {
		return context.WithTimeout(parent, s.config.Timeout)
	}

	return context.WithCancel(parent)
}

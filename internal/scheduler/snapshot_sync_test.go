package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/seller-dashboard-api/internal/config"
	"github.com/vfg2006/seller-dashboard-api/internal/domain"
	"github.com/vfg2006/seller-dashboard-api/internal/scheduler/mocks"
)

func newTestConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		SnapshotSync: config.SnapshotSync{CronSchedule: cron, Enabled: enabled},
		RecordStore:  config.RecordStore{FetchTimeout: time.Second},
	}
}

func TestSnapshotSyncService_RunSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mocks.NewMockSnapshotRefresher(ctrl)
	service := NewSnapshotSyncService(refresher, newTestConfig(true, "*/5 * * * *"))

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, meta domain.SnapshotMeta, err error)
	}{
		{
			name: "healthy refresh",
			setup: func() {
				refresher.EXPECT().Refresh(gomock.Any()).Return(domain.SnapshotMeta{FetchedAt: time.Now()}, nil)
			},
			validate: func(t *testing.T, meta domain.SnapshotMeta, err error) {
				require.NoError(t, err)
				assert.False(t, meta.IsDegraded())

				status := service.GetStatus()
				assert.Equal(t, false, status["sync_running"])
				assert.Equal(t, "", status["last_sync_error"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
		{
			name: "degraded refresh",
			setup: func() {
				refresher.EXPECT().Refresh(gomock.Any()).Return(domain.SnapshotMeta{Degraded: []string{"sales"}}, nil)
			},
			validate: func(t *testing.T, meta domain.SnapshotMeta, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"sales"}, meta.Degraded)
				assert.Equal(t, []string{"sales"}, service.GetStatus()["last_sync_degraded"])
			},
		},
		{
			name: "refresh error",
			setup: func() {
				refresher.EXPECT().Refresh(gomock.Any()).Return(domain.SnapshotMeta{}, context.DeadlineExceeded)
			},
			validate: func(t *testing.T, meta domain.SnapshotMeta, err error) {
				assert.ErrorIs(t, err, context.DeadlineExceeded)
				assert.Equal(t, context.DeadlineExceeded.Error(), service.GetStatus()["last_sync_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			meta, err := service.RunSync(context.Background())
			tt.validate(t, meta, err)
		})
	}
}

func TestSnapshotSyncService_RunSync_Overlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mocks.NewMockSnapshotRefresher(ctrl)
	service := NewSnapshotSyncService(refresher, newTestConfig(true, "*/5 * * * *"))

	started := make(chan struct{})
	release := make(chan struct{})
	refresher.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(ctx context.Context) (domain.SnapshotMeta, error) {
		close(started)
		<-release
		return domain.SnapshotMeta{}, nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := service.RunSync(context.Background())
		done <- err
	}()

	<-started
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	_, err := service.RunSync(context.Background())
	assert.True(t, errors.Is(err, ErrSyncInProgress))

	close(release)
	assert.NoError(t, <-done)
}

func TestSnapshotSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mocks.NewMockSnapshotRefresher(ctrl)
	service := NewSnapshotSyncService(refresher, newTestConfig(false, ""))

	done := make(chan struct{})
	refresher.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(ctx context.Context) (domain.SnapshotMeta, error) {
		defer close(done)
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return domain.SnapshotMeta{}, nil
	})

	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("manual sync did not run")
	}
}

func TestSnapshotSyncService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := mocks.NewMockSnapshotRefresher(ctrl)

	t.Run("disabled", func(t *testing.T) {
		service := NewSnapshotSyncService(refresher, newTestConfig(false, "not a cron"))
		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("invalid cron", func(t *testing.T) {
		service := NewSnapshotSyncService(refresher, newTestConfig(true, "not a cron"))
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("valid cron stops with context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		service := NewSnapshotSyncService(refresher, newTestConfig(true, "0 3 1 1 *"))

		require.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}

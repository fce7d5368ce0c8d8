package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/apotek-report-api/internal/config"
	"github.com/vfg2006/apotek-report-api/internal/domain"
	"github.com/vfg2006/apotek-report-api/internal/usecases/reporting/mocks"
)

func newTestSyncService(service *mocks.MockService, enabled bool, cron string) *ReportSyncService {
	return NewReportSyncService(service, &config.Config{
		ReportSync: config.ReportSync{CronSchedule: cron, Enabled: enabled},
	})
}

func TestReportSyncService_syncReport(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(service *mocks.MockService)
		wantRefreshID string
		wantError     bool
	}{
		{
			name: "Atualização concluída",
			setup: func(service *mocks.MockService) {
				service.EXPECT().Refresh(gomock.Any()).Return(&domain.RefreshResult{RefreshID: "abc123", LineItems: 4}, nil)
			},
			wantRefreshID: "abc123",
		},
		{
			name: "Falha na atualização",
			setup: func(service *mocks.MockService) {
				service.EXPECT().Refresh(gomock.Any()).Return(nil, errors.New("falha ao buscar dados"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockService(ctrl)
			tt.setup(service)

			syncService := newTestSyncService(service, false, "0 * * * *")
			syncService.syncReport()

			status := syncService.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.wantRefreshID, status["last_refresh_id"])
			if tt.wantError {
				assert.NotEmpty(t, status["last_error"])
			} else {
				assert.Empty(t, status["last_error"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			}
		})
	}
}

func TestReportSyncService_IgnoresOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)
	syncService := newTestSyncService(service, false, "0 * * * *")

	// Nenhuma chamada a Refresh é esperada
	syncService.syncRunning = true

	syncService.syncReport()
	assert.False(t, syncService.TriggerManualSync())
}

func TestReportSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)
	done := make(chan struct{})
	service.EXPECT().Refresh(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*domain.RefreshResult, error) {
			defer close(done)
			return &domain.RefreshResult{RefreshID: "manual"}, nil
		})

	syncService := newTestSyncService(service, false, "0 * * * *")

	require.True(t, syncService.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sincronização manual não executada")
	}
}

func TestReportSyncService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)

	t.Run("Desabilitado", func(t *testing.T) {
		assert.NoError(t, newTestSyncService(service, false, "").Start(context.Background()))
	})

	t.Run("Cron inválido", func(t *testing.T) {
		assert.Error(t, newTestSyncService(service, true, "não é cron").Start(context.Background()))
	})

	t.Run("Habilitado", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		syncService := newTestSyncService(service, true, "0 0 1 1 *")
		require.NoError(t, syncService.Start(ctx))
		assert.Equal(t, true, syncService.GetStatus()["sync_enabled"])
	})
}

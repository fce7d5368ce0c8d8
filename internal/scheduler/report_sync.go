package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/apotek-report-api/internal/config"
	"github.com/vfg2006/apotek-report-api/internal/usecases/reporting"
	"github.com/vfg2006/apotek-report-api/pkg/log"
)

// ReportSyncConfig representa a configuração do agendador do relatório de vendas
type ReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReportSyncService agenda a atualização periódica do relatório de vendas.
// Não é um mecanismo de retentativa: uma falha espera o próximo disparo.
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	reportService       reporting.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRefreshID       string
	lastError           string
}

// NewReportSyncService cria uma nova instância do serviço de sincronização do relatório
func NewReportSyncService(reportService reporting.Service, appConfig *config.Config) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: appConfig.ReportSync.CronSchedule,
		SyncEnabled:  appConfig.ReportSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do relatório de vendas carregada")

	return &ReportSyncService{
		scheduler:     gocron.NewScheduler(time.UTC),
		config:        syncConfig,
		reportService: reportService,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do relatório de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncReport()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do relatório de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncReport executa uma atualização completa, ignorando disparos sobrepostos
func (s *ReportSyncService) syncReport() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do relatório de vendas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	ctx, _ := log.WithCorrelationID(context.Background())
	logger := log.ForContext(ctx)

	result, err := s.reportService.Refresh(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	if err != nil {
		s.lastError = err.Error()
		logger.WithError(err).Error("Erro na sincronização do relatório de vendas")
		return
	}

	s.lastError = ""
	s.lastRefreshID = result.RefreshID
	s.lastSyncCompletedAt = time.Now()

	logger.WithFields(log.Fields{
		"refresh_id": result.RefreshID,
		"line_items": result.LineItems,
	}).Info("Sincronização do relatório de vendas concluída")
}

// TriggerManualSync inicia manualmente uma sincronização. Retorna false se já houver uma em andamento.
func (s *ReportSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do relatório de vendas já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do relatório de vendas")
	go s.syncReport()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_refresh_id":        s.lastRefreshID,
		"last_error":             s.lastError,
	}
}

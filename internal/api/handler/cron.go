package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/apotek-report-api/pkg/apiErrors"
	"github.com/vfg2006/apotek-report-api/pkg/log"
)

const (
	CronJobTypeReportSync = "report-sync"
)

// Syncer é um job agendado que também pode ser disparado manualmente
type Syncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ReportSyncService Syncer
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		log.ForContext(r.Context()).WithField("type", cronType).Info("INIT - RunCronJob")

		switch cronType {
		case "":
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return

		case CronJobTypeReportSync:
			if services.ReportSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Serviço de sincronização do relatório não disponível", nil)
				return
			}

			if !services.ReportSyncService.TriggerManualSync() {
				writeJSON(w, r, http.StatusConflict, map[string]any{
					"message": "Sincronização já está em andamento",
					"type":    cronType,
				})
				return
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: report-sync", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ReportSyncService != nil {
			status[CronJobTypeReportSync] = services.ReportSyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}

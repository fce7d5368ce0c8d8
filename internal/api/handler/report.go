package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/apotek-report-api/internal/domain"
	"github.com/vfg2006/apotek-report-api/internal/usecases/reporting"
	"github.com/vfg2006/apotek-report-api/pkg/apiErrors"
	"github.com/vfg2006/apotek-report-api/pkg/log"
)

type SalesReportQuery struct {
	Mode  string `validate:"omitempty,oneof=monthly yearly"`
	Month string `validate:"omitempty,month_label"`
}

type ExportQuery struct {
	Format string `validate:"required,oneof=xlsx pdf"`
	Month  string `validate:"omitempty,month_label"`
}

type HistoryQuery struct {
	From string `validate:"omitempty,period"`
	To   string `validate:"omitempty,period"`
}

// RefreshReport recarrega pedidos, itens e produtos da API do Apotek
func RefreshReport(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RefreshReport")

		result, err := service.Refresh(r.Context())
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func GetAvailableMonths(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		months, err := service.AvailableMonths(r.Context())
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, months)
	}
}

// GetSalesReport devolve a visão mensal (por produto) ou anual (por mês)
func GetSalesReport(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := SalesReportQuery{
			Mode:  r.URL.Query().Get("mode"),
			Month: r.URL.Query().Get("month"),
		}
		if err := validate.Struct(query); err != nil {
			writeValidationError(w, err)
			return
		}

		mode := domain.ReportModeMonthly
		if query.Mode != "" {
			mode = domain.ReportMode(query.Mode)
		}

		report, err := service.Report(r.Context(), mode, query.Month)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

// ExportReport gera o arquivo da visão mensal para download
func ExportReport(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := ExportQuery{
			Format: httprouter.ParamsFromContext(r.Context()).ByName("format"),
			Month:  r.URL.Query().Get("month"),
		}
		if err := validate.Struct(query); err != nil {
			writeValidationError(w, err)
			return
		}

		file, err := service.Export(r.Context(), query.Format, query.Month)
		if err != nil {
			writeReportError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
		w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(file.Content); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar arquivo exportado")
		}
	}
}

// GetSalesHistory lê os totais mensais salvos no banco
func GetSalesHistory(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := HistoryQuery{
			From: r.URL.Query().Get("from"),
			To:   r.URL.Query().Get("to"),
		}
		if err := validate.Struct(query); err != nil {
			writeValidationError(w, err)
			return
		}

		snapshots, err := service.History(r.Context(), query.From, query.To)
		if err != nil {
			writeReportError(w, r, err)
			return
		}
		if snapshots == nil {
			snapshots = []*domain.MonthlySalesSnapshot{}
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"history": snapshots,
		})
	}
}

func GetHistoryPeriods(service reporting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		periods, err := service.HistoryPeriods(r.Context())
		if err != nil {
			writeReportError(w, r, err)
			return
		}
		if periods == nil {
			periods = []string{}
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"periods": periods,
		})
	}
}

// writeReportError traduz erros do relatório para o código da API
func writeReportError(w http.ResponseWriter, r *http.Request, err error) {
	code := reporting.ErrorCode(err)

	logger := log.ForContext(r.Context()).WithError(err).WithField("code", code)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("Erro ao processar relatório de vendas")
	} else {
		logger.Warn("Requisição de relatório rejeitada")
	}

	var message string
	switch code {
	case apiErrors.ErrExternalService:
		message = "Não foi possível carregar os dados da API do Apotek"
	case apiErrors.ErrInvalidRequest, apiErrors.ErrInvalidFormat:
		message = "Parâmetros do relatório inválidos"
	case apiErrors.ErrUnavailable:
		message = "Histórico de vendas não habilitado nesta instalação"
	case apiErrors.ErrDatabaseOperation:
		message = "Erro ao consultar o histórico de vendas"
	default:
		message = "Erro interno ao gerar o relatório"
	}

	apiErrors.WriteError(w, code, message, map[string]any{
		"reason": err.Error(),
	})
}

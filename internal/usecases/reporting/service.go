package reporting

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/apotek-report-api/infrastructure/integrator/apotek"
	"github.com/vfg2006/apotek-report-api/infrastructure/repository"
	"github.com/vfg2006/apotek-report-api/internal/config"
	"github.com/vfg2006/apotek-report-api/internal/domain"
	"github.com/vfg2006/apotek-report-api/internal/export"
	"github.com/vfg2006/apotek-report-api/pkg/apiErrors"
	"github.com/vfg2006/apotek-report-api/pkg/log"
	"github.com/vfg2006/apotek-report-api/pkg/utils"
)

const defaultMaxConcurrentFetches = 8

type Service interface {
	// Refresh busca pedidos, itens e catálogo e substitui o corpus em memória
	Refresh(ctx context.Context) (*domain.RefreshResult, error)

	AvailableMonths(ctx context.Context) (*domain.AvailableMonths, error)
	Report(ctx context.Context, mode domain.ReportMode, month string) (*domain.SalesReport, error)

	// Export gera a visão mensal em "xlsx" ou "pdf"
	Export(ctx context.Context, format, month string) (*domain.ExportFile, error)

	// History lê os totais mensais persistidos; exige banco habilitado
	History(ctx context.Context, from, to string) ([]*domain.MonthlySalesSnapshot, error)
	HistoryPeriods(ctx context.Context) ([]string, error)
}

type ReportingService struct {
	integrator    apotek.Integrator
	snapshotRepo  repository.MonthlySalesSnapshotRepository
	maxConcurrent int
	now           func() time.Time

	mu          sync.RWMutex
	corpus      []domain.SalesLineItem
	loaded      bool
	refreshedAt time.Time
	refreshID   string

	// serializa apenas a carga preguiçosa inicial
	loadMu sync.Mutex
}

// NewService cria o serviço de relatório. snapshotRepo pode ser nil quando o banco está desabilitado.
func NewService(cfg *config.Config, integrator apotek.Integrator, snapshotRepo repository.MonthlySalesSnapshotRepository) Service {
	maxConcurrent := cfg.Report.MaxConcurrentFetches
	if maxConcurrent < 1 {
		maxConcurrent = defaultMaxConcurrentFetches
	}

	return &ReportingService{
		integrator:    integrator,
		snapshotRepo:  snapshotRepo,
		maxConcurrent: maxConcurrent,
		now:           time.Now,
	}
}

func (s *ReportingService) Refresh(ctx context.Context) (*domain.RefreshResult, error) {
	result := &domain.RefreshResult{
		RefreshID: utils.GenerateID(),
		StartedAt: s.now(),
	}

	logger := log.ForContext(ctx).WithField("refresh_id", result.RefreshID)
	logger.Info("Iniciando atualização do relatório de vendas")

	orders, err := s.integrator.ListOrders(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar pedidos, mantendo dados anteriores")
		return nil, fetchError("pedidos", err)
	}

	var (
		products     []domain.Product
		linesByOrder map[string][]domain.OrderLine
		failedLines  int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.integrator.ListProducts(gctx)
		if err != nil {
			return err
		}
		products = p
		return nil
	})

	g.Go(func() error {
		linesByOrder, failedLines = s.fetchOrderLines(gctx, orders)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("Erro ao buscar produtos, mantendo dados anteriores")
		return nil, fetchError("produtos", err)
	}

	if err := ctx.Err(); err != nil {
		logger.WithError(err).Warn("Atualização cancelada, mantendo dados anteriores")
		return nil, fetchError("cancelado", err)
	}

	corpus := BuildCorpus(orders, linesByOrder, NewProductLookup(products))

	result.Orders = len(orders)
	result.Products = len(products)
	result.LineItems = len(corpus)
	result.FailedLines = failedLines
	result.CompletedAt = s.now()

	s.mu.Lock()
	s.corpus = corpus
	s.loaded = true
	s.refreshedAt = result.CompletedAt
	s.refreshID = result.RefreshID
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"orders":       result.Orders,
		"products":     result.Products,
		"line_items":   result.LineItems,
		"failed_lines": result.FailedLines,
		"duration":     result.CompletedAt.Sub(result.StartedAt).String(),
	}).Info("Atualização do relatório de vendas concluída")

	s.saveSnapshots(ctx, corpus, result.RefreshID)

	return result, nil
}

// fetchOrderLines busca os itens de cada pedido em paralelo, limitado por maxConcurrent.
// Falha em um pedido resulta em zero itens para ele, sem abortar os demais.
// Pedidos sem id ficam sem itens e não geram requisição.
func (s *ReportingService) fetchOrderLines(ctx context.Context, orders []domain.Order) (map[string][]domain.OrderLine, int) {
	var (
		mu     sync.Mutex
		failed int
	)

	linesByOrder := make(map[string][]domain.OrderLine, len(orders))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for _, order := range orders {
		orderID := strings.TrimSpace(order.ID)

		// pedido sem pesanan_id não tem itens a buscar
		if orderID == "" {
			continue
		}

		mu.Lock()
		_, seen := linesByOrder[orderID]
		if !seen {
			linesByOrder[orderID] = nil
		}
		mu.Unlock()
		if seen {
			continue
		}

		g.Go(func() error {
			lines, err := s.integrator.ListOrderLines(gctx, orderID)
			if err != nil {
				log.ForContext(ctx).WithError(err).WithField("order_id", orderID).
					Warn("Erro ao buscar itens do pedido, considerando sem itens")
				lines = nil
			}

			mu.Lock()
			linesByOrder[orderID] = lines
			if err != nil {
				failed++
			}
			mu.Unlock()

			return nil
		})
	}

	_ = g.Wait()

	return linesByOrder, failed
}

// saveSnapshots persiste a visão anual. Falhas são apenas registradas.
func (s *ReportingService) saveSnapshots(ctx context.Context, corpus []domain.SalesLineItem, refreshID string) {
	if s.snapshotRepo == nil {
		return
	}

	months := AggregateByMonth(corpus)
	snapshots := make([]*domain.MonthlySalesSnapshot, 0, len(months))
	for _, m := range months {
		snapshots = append(snapshots, &domain.MonthlySalesSnapshot{
			ID:                utils.GenerateID(),
			Period:            m.Month,
			TotalQuantitySold: m.TotalQuantitySold,
			TotalRevenue:      m.TotalRevenue,
			RefreshID:         refreshID,
		})
	}

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshots); err != nil {
		log.ForContext(ctx).WithError(err).WithField("refresh_id", refreshID).
			Error("Erro ao salvar histórico mensal de vendas")
		return
	}

	log.ForContext(ctx).WithField("periods", len(snapshots)).Debug("Histórico mensal de vendas salvo")
}

// current devolve o corpus em cache, carregando-o na primeira chamada
func (s *ReportingService) current(ctx context.Context) ([]domain.SalesLineItem, time.Time, error) {
	s.mu.RLock()
	if s.loaded {
		corpus, at := s.corpus, s.refreshedAt
		s.mu.RUnlock()
		return corpus, at, nil
	}
	s.mu.RUnlock()

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		log.ForContext(ctx).Info("Relatório ainda não carregado, executando primeira atualização")
		if _, err := s.Refresh(ctx); err != nil {
			return nil, time.Time{}, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.corpus, s.refreshedAt, nil
}

func (s *ReportingService) AvailableMonths(ctx context.Context) (*domain.AvailableMonths, error) {
	corpus, _, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.AvailableMonths{Months: AvailableMonths(corpus)}, nil
}

func (s *ReportingService) Report(ctx context.Context, mode domain.ReportMode, month string) (*domain.SalesReport, error) {
	// valida antes de qualquer busca na API
	if _, err := Aggregate(nil, mode, month); err != nil {
		return nil, err
	}

	corpus, refreshedAt, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	report, err := Aggregate(corpus, mode, month)
	if err != nil {
		return nil, err
	}
	report.RefreshedAt = refreshedAt

	return report, nil
}

func (s *ReportingService) Export(ctx context.Context, format, month string) (*domain.ExportFile, error) {
	month, err := normalizeMonth(month)
	if err != nil {
		return nil, err
	}

	corpus, _, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	file, err := export.Export(format, AggregateByProduct(corpus, month), month)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("format", format).Error("Erro ao exportar relatório")
		return nil, NewReportError(ErrExportFailed, apiErrors.ErrInternalServer, err.Error())
	}

	return file, nil
}

func (s *ReportingService) History(ctx context.Context, from, to string) ([]*domain.MonthlySalesSnapshot, error) {
	if s.snapshotRepo == nil {
		return nil, NewReportError(ErrHistoryUnavailable, apiErrors.ErrUnavailable, "DATABASE_ENABLED=false")
	}

	for _, period := range []string{from, to} {
		if period != "" && !utils.IsMonthLabel(period) {
			return nil, NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, period)
		}
	}
	if from != "" && to != "" && from > to {
		return nil, NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidRequest, "from maior que to")
	}

	snapshots, err := s.snapshotRepo.GetByPeriodRange(ctx, from, to)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar histórico mensal de vendas")
		return nil, NewReportError(ErrHistoryStorage, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return snapshots, nil
}

func (s *ReportingService) HistoryPeriods(ctx context.Context) ([]string, error) {
	if s.snapshotRepo == nil {
		return nil, NewReportError(ErrHistoryUnavailable, apiErrors.ErrUnavailable, "DATABASE_ENABLED=false")
	}

	periods, err := s.snapshotRepo.GetAllPeriods(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar períodos do histórico")
		return nil, NewReportError(ErrHistoryStorage, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return periods, nil
}

// IsValidationError indica erros causados pela entrada do cliente
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidMode) || errors.Is(err, ErrInvalidMonth)
}

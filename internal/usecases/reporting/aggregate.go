package reporting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/apotek-report-api/internal/domain"
	"github.com/vfg2006/apotek-report-api/pkg/apiErrors"
	"github.com/vfg2006/apotek-report-api/pkg/utils"
)

// AvailableMonths retorna "semua" seguido dos meses com vendas, do mais recente ao mais antigo.
// Itens com data inválida não geram mês.
func AvailableMonths(corpus []domain.SalesLineItem) []string {
	seen := make(map[string]struct{})
	months := make([]string, 0)

	for _, item := range corpus {
		label, ok := item.MonthLabel()
		if !ok {
			continue
		}
		if _, exists := seen[label]; exists {
			continue
		}
		seen[label] = struct{}{}
		months = append(months, label)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	return append([]string{domain.AllMonths}, months...)
}

// AggregateByProduct soma quantidade e receita por produto no mês escolhido.
// A ordem de saída é a da primeira aparição do produto no corpus.
func AggregateByProduct(corpus []domain.SalesLineItem, month string) []domain.ProductAggregate {
	index := make(map[string]int)
	result := make([]domain.ProductAggregate, 0)

	for _, item := range corpus {
		if !inMonth(item, month) {
			continue
		}

		i, exists := index[item.ProductID]
		if !exists {
			i = len(result)
			index[item.ProductID] = i
			result = append(result, domain.ProductAggregate{
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				TotalRevenue: decimal.Zero,
			})
		}

		result[i].TotalQuantitySold += item.Quantity
		result[i].TotalRevenue = result[i].TotalRevenue.Add(item.Revenue())
	}

	return result
}

// AggregateByMonth agrupa o corpus inteiro por mês em ordem crescente e mantém os últimos 12
func AggregateByMonth(corpus []domain.SalesLineItem) []domain.MonthAggregate {
	buckets := make(map[string]*domain.MonthAggregate)

	for _, item := range corpus {
		label, ok := item.MonthLabel()
		if !ok {
			continue
		}

		bucket, exists := buckets[label]
		if !exists {
			bucket = &domain.MonthAggregate{Month: label, TotalRevenue: decimal.Zero}
			buckets[label] = bucket
		}

		bucket.TotalQuantitySold += item.Quantity
		bucket.TotalRevenue = bucket.TotalRevenue.Add(item.Revenue())
	}

	result := make([]domain.MonthAggregate, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, *bucket)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})

	if len(result) > domain.YearlyWindow {
		result = result[len(result)-domain.YearlyWindow:]
	}

	return result
}

// Aggregate monta a visão pedida. month vazio equivale a "semua".
func Aggregate(corpus []domain.SalesLineItem, mode domain.ReportMode, month string) (*domain.SalesReport, error) {
	switch mode {
	case domain.ReportModeMonthly:
		month, err := normalizeMonth(month)
		if err != nil {
			return nil, err
		}
		return &domain.SalesReport{
			Mode:          mode,
			SelectedMonth: month,
			Products:      AggregateByProduct(corpus, month),
		}, nil
	case domain.ReportModeYearly:
		return &domain.SalesReport{
			Mode:   mode,
			Months: AggregateByMonth(corpus),
		}, nil
	default:
		return nil, NewReportError(ErrInvalidMode, apiErrors.ErrInvalidRequest, string(mode))
	}
}

func inMonth(item domain.SalesLineItem, month string) bool {
	if month == domain.AllMonths {
		return true
	}
	label, ok := item.MonthLabel()
	return ok && label == month
}

func normalizeMonth(month string) (string, error) {
	if month == "" {
		return domain.AllMonths, nil
	}
	if month != domain.AllMonths && !utils.IsMonthLabel(month) {
		return "", NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, month)
	}
	return month, nil
}

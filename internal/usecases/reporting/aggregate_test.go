package reporting

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/apotek-report-api/internal/domain"
)

func item(productID, name string, price int64, qty int64, date string) domain.SalesLineItem {
	return domain.SalesLineItem{
		ProductID:   productID,
		ProductName: name,
		UnitPrice:   decimal.NewFromInt(price),
		Quantity:    qty,
		OrderDate:   date,
	}
}

func mixedCorpus() []domain.SalesLineItem {
	return []domain.SalesLineItem{
		item("A", "Paracetamol", 1000, 2, "2025-01-05"),
		item("B", "Amoxicillin", 2500, 1, "2025-01-20T08:00:00Z"),
		item("A", "Paracetamol", 1000, 3, "2025-02-01"),
		item("X", domain.UnknownProductName, 0, 4, "2025-02-10"),
		item("B", "Amoxicillin", 2500, 5, "bukan tanggal"),
	}
}

func sumProducts(rows []domain.ProductAggregate) (int64, decimal.Decimal) {
	qty, revenue := int64(0), decimal.Zero
	for _, r := range rows {
		qty += r.TotalQuantitySold
		revenue = revenue.Add(r.TotalRevenue)
	}
	return qty, revenue
}

func sumCorpus(corpus []domain.SalesLineItem, month string) (int64, decimal.Decimal) {
	qty, revenue := int64(0), decimal.Zero
	for _, it := range corpus {
		if !inMonth(it, month) {
			continue
		}
		qty += it.Quantity
		revenue = revenue.Add(it.Revenue())
	}
	return qty, revenue
}

func TestBuildCorpus(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", OrderDate: "2025-01-05"},
		{ID: "2", OrderDate: "2025-02-01"},
	}
	lines := map[string][]domain.OrderLine{
		"1": {{ProductID: " A ", Quantity: 2}},
	}

	t.Run("Produto conhecido", func(t *testing.T) {
		lookup := NewProductLookup([]domain.Product{{ID: "A", Name: "Paracetamol", UnitPrice: decimal.NewFromInt(1000)}})

		corpus := BuildCorpus(orders, lines, lookup)

		require.Len(t, corpus, 1)
		assert.Equal(t, "Paracetamol", corpus[0].ProductName)
		assert.Equal(t, "A", corpus[0].ProductID)
		assert.Equal(t, "1", corpus[0].OrderID)
		assert.Equal(t, "2025-01-05", corpus[0].OrderDate)
		assert.Equal(t, "1#0", corpus[0].OrderLineRef)
		assert.True(t, decimal.NewFromInt(2000).Equal(corpus[0].Revenue()))
	})

	t.Run("Produto desconhecido usa sentinela", func(t *testing.T) {
		corpus := BuildCorpus(orders, lines, NewProductLookup(nil))

		require.Len(t, corpus, 1)
		assert.Equal(t, domain.UnknownProductName, corpus[0].ProductName)
		assert.True(t, corpus[0].UnitPrice.IsZero())
		assert.Equal(t, int64(2), corpus[0].Quantity)
	})

	t.Run("Sem pedidos", func(t *testing.T) {
		corpus := BuildCorpus(nil, nil, NewProductLookup(nil))
		assert.NotNil(t, corpus)
		assert.Empty(t, corpus)
	})
}

func TestNewProductLookup_FirstIDWins(t *testing.T) {
	lookup := NewProductLookup([]domain.Product{
		{ID: " 7", Name: "Primeiro", UnitPrice: decimal.NewFromInt(10)},
		{ID: "7 ", Name: "Segundo", UnitPrice: decimal.NewFromInt(20)},
	})

	name, price := lookup.Resolve("7")
	assert.Equal(t, "Primeiro", name)
	assert.True(t, decimal.NewFromInt(10).Equal(price))
}

func TestProductLookup_BlankNameUsesUnknown(t *testing.T) {
	lookup := NewProductLookup([]domain.Product{
		{ID: "9", Name: "   ", UnitPrice: decimal.NewFromInt(500)},
	})

	name, price := lookup.Resolve("9")
	assert.Equal(t, domain.UnknownProductName, name)
	assert.True(t, decimal.NewFromInt(500).Equal(price))
}

func TestAvailableMonths(t *testing.T) {
	tests := []struct {
		name   string
		corpus []domain.SalesLineItem
		want   []string
	}{
		{
			name:   "Corpus vazio",
			corpus: nil,
			want:   []string{domain.AllMonths},
		},
		{
			name:   "Meses distintos do mais recente ao mais antigo, sem datas inválidas",
			corpus: mixedCorpus(),
			want:   []string{domain.AllMonths, "2025-02", "2025-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvailableMonths(tt.corpus))
		})
	}
}

func TestAggregateByProduct(t *testing.T) {
	corpus := mixedCorpus()

	t.Run("Mês específico", func(t *testing.T) {
		rows := AggregateByProduct(corpus, "2025-01")

		require.Len(t, rows, 2)
		assert.Equal(t, "Paracetamol", rows[0].ProductName)
		assert.Equal(t, int64(2), rows[0].TotalQuantitySold)
		assert.True(t, decimal.NewFromInt(2000).Equal(rows[0].TotalRevenue))
		assert.Equal(t, "Amoxicillin", rows[1].ProductName)
	})

	t.Run("Produto desconhecido soma quantidade com receita zero", func(t *testing.T) {
		rows := AggregateByProduct(corpus, "2025-02")

		require.Len(t, rows, 2)
		assert.Equal(t, domain.UnknownProductName, rows[1].ProductName)
		assert.Equal(t, int64(4), rows[1].TotalQuantitySold)
		assert.True(t, rows[1].TotalRevenue.IsZero())
	})

	t.Run("Todos os meses inclui datas inválidas", func(t *testing.T) {
		rows := AggregateByProduct(corpus, domain.AllMonths)

		require.Len(t, rows, 3)
		assert.Equal(t, []string{"A", "B", "X"}, []string{rows[0].ProductID, rows[1].ProductID, rows[2].ProductID})
		assert.Equal(t, int64(6), rows[1].TotalQuantitySold)
	})

	t.Run("Mês sem vendas", func(t *testing.T) {
		assert.Empty(t, AggregateByProduct(corpus, "2024-12"))
	})
}

func TestAggregateByProduct_TotalsMatchCorpus(t *testing.T) {
	corpus := mixedCorpus()

	for _, month := range AvailableMonths(corpus) {
		t.Run(month, func(t *testing.T) {
			gotQty, gotRevenue := sumProducts(AggregateByProduct(corpus, month))
			wantQty, wantRevenue := sumCorpus(corpus, month)

			assert.Equal(t, wantQty, gotQty)
			assert.True(t, wantRevenue.Equal(gotRevenue), "receita %s != %s", gotRevenue, wantRevenue)
		})
	}

	qty, _ := sumProducts(AggregateByProduct(corpus, domain.AllMonths))
	assert.Equal(t, int64(15), qty)
}

func TestAggregateByMonth(t *testing.T) {
	t.Run("Dois pedidos em meses diferentes", func(t *testing.T) {
		corpus := []domain.SalesLineItem{
			item("A", "Paracetamol", 1000, 3, "2025-02-01"),
			item("A", "Paracetamol", 1000, 2, "2025-01-05"),
		}

		months := AggregateByMonth(corpus)

		require.Len(t, months, 2)
		assert.Equal(t, "2025-01", months[0].Month)
		assert.Equal(t, int64(2), months[0].TotalQuantitySold)
		assert.True(t, decimal.NewFromInt(2000).Equal(months[0].TotalRevenue))
		assert.Equal(t, "2025-02", months[1].Month)
		assert.True(t, decimal.NewFromInt(3000).Equal(months[1].TotalRevenue))
	})

	t.Run("Ignora datas inválidas", func(t *testing.T) {
		months := AggregateByMonth(mixedCorpus())

		var qty int64
		for _, m := range months {
			qty += m.TotalQuantitySold
		}
		assert.Equal(t, int64(10), qty)
	})

	t.Run("Mantém os últimos 12 meses em ordem crescente", func(t *testing.T) {
		corpus := make([]domain.SalesLineItem, 0)
		for i := 0; i < 18; i++ {
			year, month := 2024+(i/12), (i%12)+1
			corpus = append(corpus, item("A", "Paracetamol", 100, 1, fmt.Sprintf("%d-%02d-15", year, month)))
		}

		months := AggregateByMonth(corpus)

		require.Len(t, months, domain.YearlyWindow)
		assert.Equal(t, "2024-07", months[0].Month)
		assert.Equal(t, "2025-06", months[len(months)-1].Month)
		for i := 1; i < len(months); i++ {
			assert.Less(t, months[i-1].Month, months[i].Month)
		}
	})
}

func TestAggregate(t *testing.T) {
	corpus := mixedCorpus()

	tests := []struct {
		name      string
		mode      domain.ReportMode
		month     string
		wantErr   error
		wantMonth string
	}{
		{name: "Mensal com mês", mode: domain.ReportModeMonthly, month: "2025-01", wantMonth: "2025-01"},
		{name: "Mensal sem mês usa semua", mode: domain.ReportModeMonthly, wantMonth: domain.AllMonths},
		{name: "Mensal com mês inválido", mode: domain.ReportModeMonthly, month: "Januari", wantErr: ErrInvalidMonth},
		{name: "Anual", mode: domain.ReportModeYearly},
		{name: "Modo desconhecido", mode: "weekly", wantErr: ErrInvalidMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Aggregate(corpus, tt.mode, tt.month)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, report)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.mode, report.Mode)
			assert.Equal(t, tt.wantMonth, report.SelectedMonth)
			if tt.mode == domain.ReportModeYearly {
				assert.Len(t, report.Months, 2)
				assert.Nil(t, report.Products)
			} else {
				assert.NotEmpty(t, report.Products)
				assert.Nil(t, report.Months)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "SRV_003", ErrorCode(fetchError("pedidos", errors.New("x"))))
	assert.Equal(t, "VAL_001", ErrorCode(ErrInvalidMode))
	assert.Equal(t, "VAL_003", ErrorCode(ErrInvalidMonth))
	assert.Equal(t, "SRV_005", ErrorCode(ErrHistoryUnavailable))
	assert.Equal(t, "SRV_001", ErrorCode(errors.New("outro")))
}

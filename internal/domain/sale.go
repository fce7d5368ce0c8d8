package domain

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/apotek-report-api/pkg/utils"
)

const (
	// AllMonths é a opção sentinela "todos os meses" do seletor de mês
	AllMonths = "semua"

	// UnknownProductName é usado quando o obat_id do item não existe no catálogo
	UnknownProductName = "Obat Tidak Dikenal"

	// YearlyWindow é a quantidade máxima de meses na visão anual
	YearlyWindow = 12
)

// SalesLineItem é a junção de OrderLine + Product + data do pedido pai.
// É reconstruído a cada atualização e nunca é persistido.
type SalesLineItem struct {
	OrderLineRef string          `json:"order_line_ref"`
	OrderID      string          `json:"order_id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int64           `json:"quantity"`
	OrderDate    string          `json:"order_date"`
}

// Revenue retorna quantidade x preço unitário
func (s SalesLineItem) Revenue() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(s.Quantity))
}

// MonthLabel retorna o mês (YYYY-MM) da data do pedido; false quando a data é inválida
func (s SalesLineItem) MonthLabel() (string, bool) {
	return utils.MonthLabel(s.OrderDate)
}

type ProductAggregate struct {
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	TotalQuantitySold int64           `json:"total_quantity_sold"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
}

type MonthAggregate struct {
	Month             string          `json:"month"` // YYYY-MM
	TotalQuantitySold int64           `json:"total_quantity_sold"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
}

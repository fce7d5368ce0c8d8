package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySalesSnapshot representa o total mensal de vendas armazenado no banco
type MonthlySalesSnapshot struct {
	ID                string          `json:"id"`
	Period            string          `json:"period"` // Período no formato YYYY-MM
	TotalQuantitySold int64           `json:"total_quantity_sold"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	RefreshID         string          `json:"refresh_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

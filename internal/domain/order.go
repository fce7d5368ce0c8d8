package domain

import (
	"github.com/shopspring/decimal"
)

// Order é o cabeçalho de um pedido lido da API da farmácia
type Order struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	OrderDate   string          `json:"order_date"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// OrderLine representa um item (obat + quantidade) de um pedido
type OrderLine struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// Product é um item do catálogo (obat) usado apenas como tabela de consulta
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	Stock          int64           `json:"stock"`
}

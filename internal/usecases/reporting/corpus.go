package reporting

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/apotek-report-api/internal/domain"
)

// ProductLookup indexa o catálogo pelo obat_id normalizado
type ProductLookup map[string]domain.Product

// NewProductLookup monta o índice do catálogo. Com ids repetidos vale o primeiro.
func NewProductLookup(products []domain.Product) ProductLookup {
	lookup := make(ProductLookup, len(products))
	for _, p := range products {
		id := strings.TrimSpace(p.ID)
		if _, exists := lookup[id]; exists {
			continue
		}
		lookup[id] = p
	}
	return lookup
}

// Resolve retorna nome e preço do produto, ou o sentinela com preço zero.
// Produto do catálogo sem nama_obat usa o sentinela com o preço do catálogo.
func (l ProductLookup) Resolve(productID string) (string, decimal.Decimal) {
	if p, ok := l[strings.TrimSpace(productID)]; ok {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			name = domain.UnknownProductName
		}
		return name, p.UnitPrice
	}
	return domain.UnknownProductName, decimal.Zero
}

// BuildCorpus junta pedidos, itens e catálogo em itens de venda.
// Pedidos sem itens não geram nada.
func BuildCorpus(orders []domain.Order, linesByOrder map[string][]domain.OrderLine, lookup ProductLookup) []domain.SalesLineItem {
	corpus := make([]domain.SalesLineItem, 0)

	for _, order := range orders {
		orderID := strings.TrimSpace(order.ID)

		for i, line := range linesByOrder[orderID] {
			name, price := lookup.Resolve(line.ProductID)

			ref := line.ID
			if ref == "" {
				ref = fmt.Sprintf("%s#%d", orderID, i)
			}

			corpus = append(corpus, domain.SalesLineItem{
				OrderLineRef: ref,
				OrderID:      orderID,
				ProductID:    strings.TrimSpace(line.ProductID),
				ProductName:  name,
				UnitPrice:    price,
				Quantity:     line.Quantity,
				OrderDate:    order.OrderDate,
			})
		}
	}

	return corpus
}

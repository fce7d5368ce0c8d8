package apotek

import (
	"context"
	"strings"

	"github.com/vfg2006/apotek-report-api/infrastructure/integrator/apotek/apotekclient"
	apotekdomain "github.com/vfg2006/apotek-report-api/infrastructure/integrator/apotek/domain"
	"github.com/vfg2006/apotek-report-api/internal/domain"
)

// Integrator expõe os dados da API do Apotek já convertidos para o domínio
type Integrator interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListOrderLines(ctx context.Context, orderID string) ([]domain.OrderLine, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type ApotekService struct {
	Client apotekclient.Client
}

func New(client apotekclient.Client) Integrator {
	return &ApotekService{
		Client: client,
	}
}

func (s *ApotekService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	resp, err := s.Client.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(resp))
	for _, o := range resp {
		orders = append(orders, toOrder(o))
	}

	return orders, nil
}

func (s *ApotekService) ListOrderLines(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	resp, err := s.Client.GetOrderLines(ctx, orderID)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.OrderLine, 0, len(resp))
	for _, l := range resp {
		lines = append(lines, toOrderLine(l, orderID))
	}

	return lines, nil
}

func (s *ApotekService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	resp, err := s.Client.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(resp))
	for _, p := range resp {
		products = append(products, toProduct(p))
	}

	return products, nil
}

func toOrder(o apotekdomain.Order) domain.Order {
	return domain.Order{
		ID:          strings.TrimSpace(o.PesananID),
		CustomerID:  strings.TrimSpace(o.PelangganID),
		OrderDate:   o.TanggalPesan,
		Status:      o.StatusPesanan,
		TotalAmount: o.TotalHarga,
	}
}

// toOrderLine usa o pedido consultado quando a linha não traz pesanan_id
func toOrderLine(l apotekdomain.OrderLine, orderID string) domain.OrderLine {
	parent := strings.TrimSpace(l.PesananID)
	if parent == "" {
		parent = strings.TrimSpace(orderID)
	}

	return domain.OrderLine{
		ID:        strings.TrimSpace(l.DetailPesananID),
		OrderID:   parent,
		ProductID: strings.TrimSpace(l.ObatID),
		Quantity:  l.Jumlah,
	}
}

func toProduct(p apotekdomain.Product) domain.Product {
	return domain.Product{
		ID:             strings.TrimSpace(p.ObatID),
		Name:           p.NamaObat,
		UnitPrice:      p.HargaSatuan,
		WholesalePrice: p.HargaGrosir,
		Stock:          p.Stok,
	}
}

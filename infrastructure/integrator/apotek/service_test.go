package apotek

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apotekdomain "github.com/vfg2006/apotek-report-api/infrastructure/integrator/apotek/domain"
	"github.com/vfg2006/apotek-report-api/infrastructure/integrator/apotek/mocks"
)

func TestApotekService_ListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(client)

	client.EXPECT().GetOrders(gomock.Any()).Return([]apotekdomain.Order{
		{PesananID: " 10 ", PelangganID: "7", TanggalPesan: "2025-01-05", StatusPesanan: "selesai", TotalHarga: decimal.NewFromInt(4000)},
	}, nil)

	orders, err := service.ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "10", orders[0].ID)
	assert.Equal(t, "7", orders[0].CustomerID)
	assert.Equal(t, "2025-01-05", orders[0].OrderDate)
	assert.True(t, decimal.NewFromInt(4000).Equal(orders[0].TotalAmount))
}

func TestApotekService_ListOrderLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(client)

	client.EXPECT().GetOrderLines(gomock.Any(), "10").Return([]apotekdomain.OrderLine{
		{ObatID: " 1 ", Jumlah: 3},
		{DetailPesananID: "5", PesananID: "10", ObatID: "2", Jumlah: 1},
	}, nil)

	lines, err := service.ListOrderLines(context.Background(), "10")

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0].ProductID)
	assert.Equal(t, "10", lines[0].OrderID)
	assert.Equal(t, int64(3), lines[0].Quantity)
	assert.Equal(t, "5", lines[1].ID)
}

func TestApotekService_PropagatesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	service := New(client)

	client.EXPECT().GetProducts(gomock.Any()).Return(nil, errors.New("timeout"))

	products, err := service.ListProducts(context.Background())

	assert.Error(t, err)
	assert.Nil(t, products)
}

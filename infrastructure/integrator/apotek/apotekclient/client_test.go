package apotekclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/apotek-report-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.Config{
		Apotek: config.Apotek{
			BaseURL:        server.URL + "/api/",
			OrdersPath:     "/pesanan",
			OrderLinesPath: "/detail-pesanan/pesanan/{id}",
			ProductsPath:   "/obat",
		},
	})
}

func TestApotekClient_GetOrders(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLen   int
		wantErr   bool
		wantFirst string
	}{
		{
			name:      "Array puro",
			status:    http.StatusOK,
			body:      `[{"pesanan_id": 1, "tanggal_pesan": "2025-01-05", "total_harga": "5000"}]`,
			wantLen:   1,
			wantFirst: "1",
		},
		{
			name:      "Envelope data",
			status:    http.StatusOK,
			body:      `{"data": [{"pesanan_id": "A1"}, {"pesanan_id": "A2"}]}`,
			wantLen:   2,
			wantFirst: "A1",
		},
		{
			name:    "Objeto sem data vira lista vazia",
			status:  http.StatusOK,
			body:    `{"message": "ok"}`,
			wantLen: 0,
		},
		{
			name:      "Linhas que não são objetos são ignoradas",
			status:    http.StatusOK,
			body:      `[1, "x", {"pesanan_id": 7}]`,
			wantLen:   1,
			wantFirst: "7",
		},
		{
			name:    "Status de erro falha",
			status:  http.StatusInternalServerError,
			body:    `{"error": "boom"}`,
			wantErr: true,
		},
		{
			name:    "JSON inválido falha",
			status:  http.StatusOK,
			body:    `[{`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/pesanan", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			orders, err := client.GetOrders(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, orders, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, orders[0].PesananID)
			}
		})
	}
}

func TestApotekClient_GetOrderLines(t *testing.T) {
	t.Run("Substitui o id no caminho e converte quantidade textual", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/detail-pesanan/pesanan/42", r.URL.Path)
			_, _ = w.Write([]byte(`[{"obat_id": 3, "jumlah": "4"}, {"obat_id": "5", "jumlah": 2}]`))
		})

		lines, err := client.GetOrderLines(context.Background(), " 42 ")

		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, "3", lines[0].ObatID)
		assert.Equal(t, int64(4), lines[0].Jumlah)
		assert.Equal(t, "5", lines[1].ObatID)
		assert.Equal(t, int64(2), lines[1].Jumlah)
	})

	t.Run("Quantidade inteira escrita com casas decimais", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[
				{"obat_id": 1, "jumlah": 2.0},
				{"obat_id": 2, "jumlah": "2.00"},
				{"obat_id": 3, "jumlah": "1.5"},
				{"obat_id": 4, "jumlah": "banyak"}
			]`))
		})

		lines, err := client.GetOrderLines(context.Background(), "3")

		require.NoError(t, err)
		require.Len(t, lines, 4)
		assert.Equal(t, int64(2), lines[0].Jumlah)
		assert.Equal(t, int64(2), lines[1].Jumlah)
		assert.Equal(t, int64(0), lines[2].Jumlah)
		assert.Equal(t, "4", lines[3].ObatID)
		assert.Equal(t, int64(0), lines[3].Jumlah)
	})

	t.Run("Status de erro vira lista vazia", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		lines, err := client.GetOrderLines(context.Background(), "99")

		require.NoError(t, err)
		assert.NotNil(t, lines)
		assert.Empty(t, lines)
	})
}

func TestApotekClient_GetProducts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/obat", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": [
			{"obat_id": 1, "nama_obat": "Paracetamol", "harga_satuan": "2000", "stok": 10},
			{"obat_id": "2", "nama_obat": "Amoxicillin", "harga_satuan": 3500.5},
			{"obat_id": "3", "nama_obat": "Vitamin C", "harga_satuan": "abc"}
		]}`))
	})

	products, err := client.GetProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "1", products[0].ObatID)
	assert.True(t, decimal.NewFromInt(2000).Equal(products[0].HargaSatuan))
	assert.Equal(t, int64(10), products[0].Stok)
	assert.True(t, decimal.RequireFromString("3500.5").Equal(products[1].HargaSatuan))
	assert.True(t, products[2].HargaSatuan.IsZero())
}

func TestApotekClient_ProductsStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetProducts(context.Background())

	assert.Error(t, err)
}

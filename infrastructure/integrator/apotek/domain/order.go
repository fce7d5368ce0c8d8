package apotekdomain

import "github.com/shopspring/decimal"

// Order é a linha crua de GET /pesanan
type Order struct {
	PesananID     string          `json:"pesanan_id"`
	PelangganID   string          `json:"pelanggan_id"`
	TanggalPesan  string          `json:"tanggal_pesan"`
	StatusPesanan string          `json:"status_pesanan"`
	TotalHarga    decimal.Decimal `json:"total_harga"`
}

// OrderLine é a linha crua de GET /detail-pesanan/pesanan/{id}
type OrderLine struct {
	DetailPesananID string `json:"detail_pesanan_id"`
	PesananID       string `json:"pesanan_id"`
	ObatID          string `json:"obat_id"`
	Jumlah          int64  `json:"jumlah"`
}

package apotekdomain

import "github.com/shopspring/decimal"

// Product é a linha crua de GET /obat. harga_satuan chega como texto ou número.
type Product struct {
	ObatID      string          `json:"obat_id"`
	NamaObat    string          `json:"nama_obat"`
	HargaSatuan decimal.Decimal `json:"harga_satuan"`
	HargaGrosir decimal.Decimal `json:"harga_grosir"`
	Stok        int64           `json:"stok"`
}

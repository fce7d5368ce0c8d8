package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/apotek-report-api/internal/domain"
)

func sampleRows() []domain.ProductAggregate {
	return []domain.ProductAggregate{
		{ProductID: "1", ProductName: "Paracetamol", TotalQuantitySold: 3, TotalRevenue: decimal.NewFromInt(6000)},
		{ProductID: "2", ProductName: "Amoxicillin", TotalQuantitySold: 1, TotalRevenue: decimal.RequireFromString("5000.4")},
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Laporan_Penjualan_2025-01.xlsx", FileName("2025-01", "xlsx"))
	assert.Equal(t, "Laporan_Penjualan_semua.pdf", FileName("semua", ".pdf"))
}

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		name  string
		value decimal.Decimal
		want  string
	}{
		{name: "Zero", value: decimal.Zero, want: "Rp 0"},
		{name: "Milhar", value: decimal.NewFromInt(2000), want: "Rp 2.000"},
		{name: "Milhões", value: decimal.NewFromInt(1234567), want: "Rp 1.234.567"},
		{name: "Fração", value: decimal.RequireFromString("1500.5"), want: "Rp 1.500,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRupiah(tt.value))
		})
	}
}

func TestProductsXLSX(t *testing.T) {
	content, err := ProductsXLSX(sampleRows(), "2025-01")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"No", "Nama Obat", "Jumlah Terjual", "Total Penjualan"}, rows[0])
	assert.Equal(t, []string{"1", "Paracetamol", "3", "6000"}, rows[1])
	assert.Equal(t, []string{"2", "Amoxicillin", "1", "5000"}, rows[2])
}

func TestProductsXLSX_Empty(t *testing.T) {
	content, err := ProductsXLSX(nil, "semua")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestProductsPDF(t *testing.T) {
	content, err := ProductsPDF(sampleRows(), "2025-01")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))

	raw, err := renderPDF(sampleRows(), "2025-01", false)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Laporan Penjualan - 2025-01")
	assert.Contains(t, string(raw), "Paracetamol")
	assert.Contains(t, string(raw), "Rp 6.000")
}

func TestExport(t *testing.T) {
	file, err := Export(FormatXLSX, sampleRows(), "2025-01")
	require.NoError(t, err)
	assert.Equal(t, "Laporan_Penjualan_2025-01.xlsx", file.Name)
	assert.Equal(t, ContentTypeXLSX, file.ContentType)
	assert.NotEmpty(t, file.Content)

	file, err = Export(FormatPDF, sampleRows(), "2025-01")
	require.NoError(t, err)
	assert.Equal(t, "Laporan_Penjualan_2025-01.pdf", file.Name)
	assert.Equal(t, ContentTypePDF, file.ContentType)

	_, err = Export("csv", sampleRows(), "2025-01")
	assert.Error(t, err)
}

package export

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"

	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"

	filePrefix = "Laporan_Penjualan_"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FileName monta Laporan_Penjualan_<mês>.<ext>
func FileName(month, ext string) string {
	return fmt.Sprintf("%s%s.%s", filePrefix, month, strings.TrimPrefix(ext, "."))
}

// Title é o título do relatório exportado
func Title(month string) string {
	return "Laporan Penjualan - " + month
}

// FormatRupiah formata o valor com separador de milhar "." e até três casas decimais após ",".
func FormatRupiah(v decimal.Decimal) string {
	v = v.Round(3)
	whole := v.Truncate(0)

	s := idPrinter.Sprintf("%d", whole.IntPart())
	if v.IsNegative() && whole.IsZero() {
		s = "-" + s
	}

	frac := v.Sub(whole).Abs()
	if !frac.IsZero() {
		s += "," + strings.TrimPrefix(frac.String(), "0.")
	}

	return "Rp " + s
}

// wholeRupiah arredonda a receita para inteiro, como na planilha
func wholeRupiah(v decimal.Decimal) int64 {
	return v.Round(0).IntPart()
}
